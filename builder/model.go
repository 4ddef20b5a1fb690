package builder

import (
	"github.com/viant/modelgraph/config"
	"github.com/viant/modelgraph/diag"
	"github.com/viant/modelgraph/graph"
	"regexp"
	"sync"
)

// Model is the read-only result of a build. Derived facts (property order, descriptors,
// constraints and base classes) are computed on first access and cached; every
// accessor is safe for concurrent use.
type Model struct {
	mux       sync.Mutex
	graph     *graph.Model
	config    *config.Config
	reporter  diag.Reporter
	collector *diag.Collector
	metrics   *metrics

	oclPattern *regexp.Regexp
	folPattern *regexp.Regexp
	oclParser  ConstraintParser

	resolution  graph.Resolution
	inherited   map[inheritance]bool
	sequences   map[string]*sequenceState
	declared    map[string][]*graph.Constraint
	constraints map[*graph.Element][]*graph.Constraint
	baseClasses map[string]string
	scope       map[string]bool // selected package ids, nil selects everything
}

func newModel(g *graph.Model, cfg *config.Config, reporter diag.Reporter, collector *diag.Collector, m *metrics) *Model {
	result := &Model{
		graph:       g,
		config:      cfg,
		reporter:    reporter,
		collector:   collector,
		metrics:     m,
		inherited:   make(map[inheritance]bool),
		sequences:   make(map[string]*sequenceState),
		declared:    make(map[string][]*graph.Constraint),
		constraints: make(map[*graph.Element][]*graph.Constraint),
		baseClasses: make(map[string]string),
	}
	if len(cfg.Schemas) > 0 {
		result.scope = make(map[string]bool)
		for _, pkg := range g.Packages() {
			for _, name := range cfg.Schemas {
				if pkg.Name == name {
					result.scope[pkg.ID] = true
				}
			}
		}
	}
	return result
}

// Name returns the model name
func (m *Model) Name() string {
	return m.graph.Name
}

// Graph returns the underlying entity registry
func (m *Model) Graph() *graph.Model {
	return m.graph
}

// Packages returns all packages in traversal order
func (m *Model) Packages() []*graph.Package {
	return m.graph.Packages()
}

// RootPackages returns the top-level packages
func (m *Model) RootPackages() []*graph.Package {
	return m.graph.RootPackages()
}

// Package returns a package by id
func (m *Model) Package(id string) *graph.Package {
	return m.graph.Package(id)
}

// Class returns a class by id
func (m *Model) Class(id string) *graph.Class {
	return m.graph.Class(id)
}

// ClassByName returns the class registered last under the name
func (m *Model) ClassByName(name string) *graph.Class {
	return m.graph.ClassByName(name)
}

// Classes returns all classes in registration order
func (m *Model) Classes() []*graph.Class {
	return m.graph.Classes()
}

// PackageClasses returns the classes of a package in registration order
func (m *Model) PackageClasses(packageID string) []*graph.Class {
	pkg := m.graph.Package(packageID)
	if pkg == nil {
		return nil
	}
	result := make([]*graph.Class, 0, len(pkg.ClassIDs))
	for _, id := range pkg.ClassIDs {
		if class := m.graph.Class(id); class != nil {
			result = append(result, class)
		}
	}
	return result
}

// Operations returns the operations of a class
func (m *Model) Operations(classID string) []*graph.Operation {
	if class := m.graph.Class(classID); class != nil {
		return class.Operations()
	}
	return nil
}

// Associations returns all associations in registration order
func (m *Model) Associations() []*graph.Association {
	return m.graph.Associations()
}

// Association returns an association by id
func (m *Model) Association(id string) *graph.Association {
	return m.graph.Association(id)
}

// Supertypes returns the supertypes of a class in edge creation order
func (m *Model) Supertypes(classID string) []*graph.Class {
	class := m.graph.Class(classID)
	if class == nil {
		return nil
	}
	return m.resolveClasses(class.Supertypes())
}

// Subtypes returns the subtypes of a class in edge creation order
func (m *Model) Subtypes(classID string) []*graph.Class {
	class := m.graph.Class(classID)
	if class == nil {
		return nil
	}
	return m.resolveClasses(class.Subtypes())
}

func (m *Model) resolveClasses(ids []string) []*graph.Class {
	result := make([]*graph.Class, 0, len(ids))
	for _, id := range ids {
		if class := m.graph.Class(id); class != nil {
			result = append(result, class)
		}
	}
	return result
}

// PropertyType returns the class typing a property, resolved by id then by name
func (m *Model) PropertyType(property *graph.Property) *graph.Class {
	return m.graph.ResolveType(property)
}

// Path returns the qualified name of an entity
func (m *Model) Path(entity graph.Entity) string {
	return m.graph.Path(entity)
}

// Diagnostics returns diagnostics reported so far, including those of lazy resolution
func (m *Model) Diagnostics() diag.List {
	return m.collector.Diagnostics()
}

// InScope returns true if the class belongs to the selected schemas
func (m *Model) InScope(class *graph.Class) bool {
	if m.scope == nil {
		return true
	}
	return m.graph.InPackageTree(class, m.scope)
}

func (m *Model) report(severity diag.Severity, code diag.Code, path string, params ...string) {
	m.reporter.Report(diag.New(severity, code, path, params...))
}

// Summary is a count of model entities and diagnostics
type Summary struct {
	Name         string         `yaml:"name,omitempty"`
	Packages     int            `yaml:"packages"`
	Classes      int            `yaml:"classes"`
	Properties   int            `yaml:"properties"`
	Operations   int            `yaml:"operations"`
	Associations int            `yaml:"associations"`
	Constraints  int            `yaml:"constraints"`
	Diagnostics  map[string]int `yaml:"diagnostics,omitempty"`
}

// Summary counts entities without triggering lazy resolution
func (m *Model) Summary() *Summary {
	result := &Summary{
		Name:         m.graph.Name,
		Packages:     len(m.graph.Packages()),
		Associations: len(m.graph.Associations()),
	}
	for _, class := range m.graph.Classes() {
		result.Classes++
		result.Properties += len(class.Attached())
		result.Operations += len(class.Operations())
		result.Constraints += len(class.ConstraintSpecs)
		for _, property := range class.Attached() {
			result.Constraints += len(property.ConstraintSpecs)
		}
	}
	for _, d := range m.collector.Diagnostics() {
		if result.Diagnostics == nil {
			result.Diagnostics = make(map[string]int)
		}
		result.Diagnostics[d.Severity.String()]++
	}
	return result
}
