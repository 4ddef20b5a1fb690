// Package config provides configuration loading for model graph builds.
package config

import (
	"context"
	"errors"
	"fmt"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
	"regexp"
	"slices"
)

// ErrInvalid is returned when a configuration fails validation
var ErrInvalid = errors.New("invalid configuration")

// Config represents the complete build configuration
type Config struct {
	// ExcludedPackages are package names or glob patterns whose subtrees are skipped
	ExcludedPackages []string `yaml:"excludedPackages,omitempty"`
	// ProhibitedStatuses are element status values that keep a class out of the model
	ProhibitedStatuses []string `yaml:"prohibitedStatuses,omitempty"`
	// Schemas selects the packages in processing scope by name; empty selects all
	Schemas []string `yaml:"schemas,omitempty"`

	Inheritance InheritanceConfig `yaml:"inheritance"`
	Constraints ConstraintConfig  `yaml:"constraints"`
	Descriptors DescriptorConfig  `yaml:"descriptors"`
	Sequence    SequenceConfig    `yaml:"sequence"`
}

// InheritanceConfig configures supertype handling; a nil flag is unset and reads as false
type InheritanceConfig struct {
	// DisableRealization stops realizations of mixins from counting as generalizations
	DisableRealization *bool `yaml:"disableRealization,omitempty"`
	// AllowNonMixinSupertypesForMixin permits mixins to specialize non-mixin classes
	AllowNonMixinSupertypesForMixin *bool `yaml:"allowNonMixinSupertypesForMixin,omitempty"`
}

// RealizationDisabled reports whether realizations are kept out of the supertype graph
func (c InheritanceConfig) RealizationDisabled() bool {
	return c.DisableRealization != nil && *c.DisableRealization
}

// MixinsExtendNonMixins reports whether a mixin may specialize a non-mixin class
func (c InheritanceConfig) MixinsExtendNonMixins() bool {
	return c.AllowNonMixinSupertypesForMixin != nil && *c.AllowNonMixinSupertypesForMixin
}

// Bool returns a pointer to value
func Bool(value bool) *bool {
	return &value
}

// ConstraintConfig configures constraint classification
type ConstraintConfig struct {
	// OCLTypePattern matches declared constraint types of the OCL dialect
	OCLTypePattern string `yaml:"oclTypePattern"`
	// FOLTypePattern matches declared constraint types of the first-order-logic dialect
	FOLTypePattern string `yaml:"folTypePattern"`
}

// DescriptorConfig lists the tagged values consulted first for each descriptor
type DescriptorConfig struct {
	Documentation    []string `yaml:"documentation"`
	Alias            []string `yaml:"alias"`
	GlobalIdentifier []string `yaml:"globalIdentifier"`
}

// SequenceConfig configures property ordering
type SequenceConfig struct {
	// Tag names the tagged value holding an explicit sequence number
	Tag string `yaml:"tag"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		ProhibitedStatuses: []string{"notValid", "retired", "superseded"},
		Constraints: ConstraintConfig{
			OCLTypePattern: "(?i)^(ocl|invariant)$",
			FOLTypePattern: "(?i)^(fol|sbvr)$",
		},
		Descriptors: DescriptorConfig{
			Documentation:    []string{"documentation", "definition", "description"},
			Alias:            []string{"alias", "designation"},
			GlobalIdentifier: []string{"globalIdentifier"},
		},
		Sequence: SequenceConfig{Tag: "sequenceNumber"},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	for _, pattern := range c.ExcludedPackages {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: excludedPackages pattern %q", ErrInvalid, pattern)
		}
	}
	if _, _, err := c.ConstraintPatterns(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Sequence.Tag == "" {
		return fmt.Errorf("%w: sequence.tag is required", ErrInvalid)
	}
	return nil
}

// ConstraintPatterns compiles the OCL and FOL type patterns; an empty pattern matches nothing
func (c *Config) ConstraintPatterns() (*regexp.Regexp, *regexp.Regexp, error) {
	ocl, err := compile("constraints.oclTypePattern", c.Constraints.OCLTypePattern)
	if err != nil {
		return nil, nil, err
	}
	fol, err := compile("constraints.folTypePattern", c.Constraints.FOLTypePattern)
	if err != nil {
		return nil, nil, err
	}
	return ocl, fol, nil
}

func compile(name, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	result, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return result, nil
}

// IsExcluded returns true if the package name matches an excluded name or pattern
func (c *Config) IsExcluded(packageName string) bool {
	for _, pattern := range c.ExcludedPackages {
		if pattern == packageName {
			return true
		}
		if matched, err := doublestar.Match(pattern, packageName); err == nil && matched {
			return true
		}
	}
	return false
}

// Merge overlays non-empty values of other onto c. Inheritance flags set in other,
// true or false, replace those of c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	c.ExcludedPackages = appendUnique(c.ExcludedPackages, other.ExcludedPackages...)
	if len(other.ProhibitedStatuses) > 0 {
		c.ProhibitedStatuses = slices.Clone(other.ProhibitedStatuses)
	}
	if len(other.Schemas) > 0 {
		c.Schemas = slices.Clone(other.Schemas)
	}
	if other.Inheritance.DisableRealization != nil {
		c.Inheritance.DisableRealization = Bool(*other.Inheritance.DisableRealization)
	}
	if other.Inheritance.AllowNonMixinSupertypesForMixin != nil {
		c.Inheritance.AllowNonMixinSupertypesForMixin = Bool(*other.Inheritance.AllowNonMixinSupertypesForMixin)
	}
	if other.Constraints.OCLTypePattern != "" {
		c.Constraints.OCLTypePattern = other.Constraints.OCLTypePattern
	}
	if other.Constraints.FOLTypePattern != "" {
		c.Constraints.FOLTypePattern = other.Constraints.FOLTypePattern
	}
	if len(other.Descriptors.Documentation) > 0 {
		c.Descriptors.Documentation = slices.Clone(other.Descriptors.Documentation)
	}
	if len(other.Descriptors.Alias) > 0 {
		c.Descriptors.Alias = slices.Clone(other.Descriptors.Alias)
	}
	if len(other.Descriptors.GlobalIdentifier) > 0 {
		c.Descriptors.GlobalIdentifier = slices.Clone(other.Descriptors.GlobalIdentifier)
	}
	if other.Sequence.Tag != "" {
		c.Sequence.Tag = other.Sequence.Tag
	}
}

func appendUnique(target []string, values ...string) []string {
	for _, value := range values {
		if !slices.Contains(target, value) {
			target = append(target, value)
		}
	}
	return target
}

// Parse decodes YAML over the defaults
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// LoadFromFile loads configuration from a YAML file or afs supported URL
func LoadFromFile(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}
