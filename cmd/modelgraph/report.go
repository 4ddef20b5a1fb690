package main

import (
	"github.com/viant/modelgraph/builder"
	"github.com/viant/modelgraph/graph"
)

type report struct {
	Summary     *builder.Summary `yaml:"summary"`
	Classes     []*classReport   `yaml:"classes,omitempty"`
	Diagnostics []string         `yaml:"diagnostics,omitempty"`
}

type classReport struct {
	Name          string            `yaml:"name"`
	Category      graph.Category    `yaml:"category"`
	Base          string            `yaml:"base,omitempty"`
	Supertypes    []string          `yaml:"supertypes,omitempty"`
	Documentation string            `yaml:"documentation,omitempty"`
	Properties    []*propertyReport `yaml:"properties,omitempty"`
	Constraints   []string          `yaml:"constraints,omitempty"`
}

type propertyReport struct {
	Name         string             `yaml:"name"`
	Type         string             `yaml:"type,omitempty"`
	Multiplicity graph.Multiplicity `yaml:"multiplicity"`
	Sequence     graph.OrderKey     `yaml:"sequence"`
	Role         bool               `yaml:"role,omitempty"`
}

func newReport(model *builder.Model, classes bool) *report {
	result := &report{}
	if classes {
		for _, class := range model.Classes() {
			result.Classes = append(result.Classes, newClassReport(model, class))
		}
	}
	for _, d := range model.Diagnostics() {
		result.Diagnostics = append(result.Diagnostics, d.Error())
	}
	result.Summary = model.Summary()
	return result
}

func newClassReport(model *builder.Model, class *graph.Class) *classReport {
	result := &classReport{
		Name:          model.Path(class),
		Category:      class.Category,
		Documentation: model.Documentation(class),
	}
	if base := model.BaseClass(class.ID); base != nil {
		result.Base = model.Path(base)
	}
	for _, supertype := range model.Supertypes(class.ID) {
		result.Supertypes = append(result.Supertypes, model.Path(supertype))
	}
	for _, property := range model.Properties(class.ID) {
		item := &propertyReport{
			Name:         property.Name,
			Type:         property.TypeName,
			Multiplicity: property.Multiplicity,
			Sequence:     property.Key,
			Role:         property.IsRole(),
		}
		if valueType := model.PropertyType(property); valueType != nil {
			item.Type = model.Path(valueType)
		}
		result.Properties = append(result.Properties, item)
	}
	for _, constraint := range model.Constraints(class) {
		result.Constraints = append(result.Constraints, constraint.Kind.String()+" "+constraint.Name)
	}
	return result
}
