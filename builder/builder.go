// Package builder constructs a cross-referenced model graph from a source.Source and
// resolves derived facts of the graph on demand.
package builder

import (
	"context"
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/modelgraph/config"
	"github.com/viant/modelgraph/diag"
	"github.com/viant/modelgraph/graph"
	"github.com/viant/modelgraph/source"
	"log/slog"
	"time"
)

// ErrNoSource is returned by Build when no source is given
var ErrNoSource = errors.New("no model source")

// Named is implemented by sources that know the name of their model
type Named interface {
	ModelName() string
}

// Builder builds models; one Builder may run any number of independent builds
type Builder struct {
	name       string
	config     *config.Config
	logger     *slog.Logger
	reporters  []diag.Reporter
	registerer prometheus.Registerer
	oclParser  ConstraintParser
	metrics    *metrics
}

// New creates a builder
func New(options ...Option) *Builder {
	result := &Builder{
		config: config.DefaultConfig(),
		logger: slog.Default(),
	}
	for _, option := range options {
		option(result)
	}
	result.metrics = newMetrics(result.registerer)
	return result
}

// session is the state of one build. Nothing in it outlives Build except what the Model keeps.
type session struct {
	ctx      context.Context
	src      source.Source
	config   *config.Config
	logger   *slog.Logger
	reporter diag.Reporter
	metrics  *metrics
	graph    *graph.Model

	relationships map[string][]*source.Relationship // class id -> relationships, read once
	processed     map[string]bool                   // association ids already handled
}

// Build reads the source and constructs the model. Source errors abort the build and no
// model is returned; structural anomalies are reported as diagnostics.
func (b *Builder) Build(ctx context.Context, src source.Source) (*Model, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}
	ocl, fol, err := b.config.ConstraintPatterns()
	if err != nil {
		return nil, err
	}
	name := b.name
	if named, ok := src.(Named); ok && name == "" {
		name = named.ModelName()
	}

	started := time.Now()
	collector := diag.NewCollector(b.logger)
	sess := &session{
		ctx:           ctx,
		src:           src,
		config:        b.config,
		logger:        b.logger,
		reporter:      b.metrics.reporter(fanout(collector, b.reporters)),
		metrics:       b.metrics,
		graph:         graph.NewModel(name),
		relationships: make(map[string][]*source.Relationship),
		processed:     make(map[string]bool),
	}
	if err = sess.run(); err != nil {
		b.metrics.builds.WithLabelValues("failed").Inc()
		return nil, err
	}
	b.metrics.builds.WithLabelValues("succeeded").Inc()
	b.metrics.duration.Observe(time.Since(started).Seconds())

	result := newModel(sess.graph, b.config, sess.reporter, collector, b.metrics)
	result.oclPattern, result.folPattern = ocl, fol
	result.oclParser = b.oclParser
	summary := result.Summary()
	b.logger.Info("Model built",
		slog.String("model", name),
		slog.Int("packages", summary.Packages),
		slog.Int("classes", summary.Classes),
		slog.Int("associations", summary.Associations),
		slog.Duration("elapsed", time.Since(started)))
	return result, nil
}

func (s *session) run() error {
	if err := s.buildPackages(); err != nil {
		return err
	}
	s.resolveParameterTypes()
	if err := s.resolveDerivations(); err != nil {
		return err
	}
	return s.buildAssociations()
}

// relationshipsOf reads the relationships of a class once per build
func (s *session) relationshipsOf(classID string) ([]*source.Relationship, error) {
	if cached, ok := s.relationships[classID]; ok {
		return cached, nil
	}
	if err := s.ctx.Err(); err != nil {
		return nil, err
	}
	relationships, err := s.src.Relationships(s.ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to read relationships of %s: %w", classID, err)
	}
	if relationships == nil {
		relationships = []*source.Relationship{}
	}
	s.relationships[classID] = relationships
	return relationships, nil
}

func (s *session) report(severity diag.Severity, code diag.Code, path string, params ...string) {
	s.reporter.Report(diag.New(severity, code, path, params...))
}

func fanout(primary diag.Reporter, others []diag.Reporter) diag.Reporter {
	if len(others) == 0 {
		return primary
	}
	return diag.ReporterFunc(func(d diag.Diagnostic) {
		primary.Report(d)
		for _, reporter := range others {
			reporter.Report(d)
		}
	})
}

func tagValues(tags []source.Tag) graph.TaggedValues {
	result := graph.TaggedValues{}
	for _, tag := range tags {
		if tag.Name == "" {
			continue
		}
		result.Add(tag.Name, tag.Value)
	}
	return result
}

func newElement(id, name, stereotypes, notes, alias string, tags []source.Tag) graph.Element {
	return graph.Element{
		ID:           id,
		Name:         name,
		Stereotypes:  graph.ParseStereotypes(stereotypes),
		TaggedValues: tagValues(tags),
		Notes:        notes,
		AliasText:    alias,
	}
}
