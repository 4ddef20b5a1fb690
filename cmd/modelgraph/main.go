// Package main provides the modelgraph CLI.
package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/viant/modelgraph/builder"
	"github.com/viant/modelgraph/config"
	"github.com/viant/modelgraph/diag"
	"github.com/viant/modelgraph/source/yml"
	"gopkg.in/yaml.v3"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "modelgraph",
		Short:         "Build and inspect application schema models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(loadCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func loadCmd() *cobra.Command {
	var (
		configFiles []string
		verbose     bool
		classes     bool
		strict      bool
	)
	cmd := &cobra.Command{
		Use:   "load <model.yaml>",
		Short: "Build a model and print its summary and diagnostics",
		Long: `Build a model from a YAML interchange document and print a YAML report.

Examples:
  modelgraph load model.yaml
  modelgraph load model.yaml --config build.yaml --classes
  modelgraph load s3://bucket/model.yaml --strict
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return load(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], configFiles, verbose, classes, strict)
		},
	}
	cmd.Flags().StringSliceVar(&configFiles, "config", nil, "Configuration file, may be repeated")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log debug output")
	cmd.Flags().BoolVar(&classes, "classes", false, "Include every class with its resolved properties")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when a warning or error diagnostic is reported")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func load(ctx context.Context, out, logOutput io.Writer, URL string, configFiles []string, verbose, classes, strict bool) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: level}))

	cfg, err := config.NewLoader(logger).Load(ctx, configFiles...)
	if err != nil {
		return err
	}
	src, err := yml.Load(ctx, URL)
	if err != nil {
		return err
	}
	model, err := builder.New(builder.WithConfig(cfg), builder.WithLogger(logger)).Build(ctx, src)
	if err != nil {
		return err
	}

	result := newReport(model, classes)
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err = encoder.Encode(result); err != nil {
		return err
	}
	if err = encoder.Close(); err != nil {
		return err
	}
	if diagnostics := model.Diagnostics(); strict && diagnostics.MaxSeverity() >= diag.Warning {
		return diagnostics
	}
	return nil
}
