package builder

import (
	"fmt"
	"github.com/viant/modelgraph/diag"
	"github.com/viant/modelgraph/graph"
	"github.com/viant/modelgraph/source"
	"strconv"
	"strings"
)

var classifierKinds = map[source.ElementKind]bool{
	source.KindClass:       true,
	source.KindInterface:   true,
	source.KindDataType:    true,
	source.KindEnumeration: true,
}

// registerClasses registers the classifiers contained in a package
func (s *session) registerClasses(pkg *graph.Package) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	elements, err := s.src.Elements(s.ctx, pkg.ID)
	if err != nil {
		return fmt.Errorf("failed to read elements of package %s: %w", pkg.ID, err)
	}
	for _, element := range elements {
		if element == nil || !classifierKinds[element.Kind] || s.isProhibited(element.Status) {
			continue
		}
		if element.ID == "" || element.Name == "" {
			s.report(diag.Warning, diag.MalformedRecord, s.graph.PackagePath(pkg.ID), "element", fmt.Sprintf("id=%q name=%q", element.ID, element.Name))
			continue
		}
		if err = s.registerClass(pkg, element); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) isProhibited(status string) bool {
	status = strings.TrimSpace(status)
	if status == "" {
		return false
	}
	for _, candidate := range s.config.ProhibitedStatuses {
		if strings.EqualFold(candidate, status) {
			return true
		}
	}
	return false
}

func (s *session) registerClass(pkg *graph.Package, element *source.Element) error {
	class := &graph.Class{
		Element:   newElement(element.ID, element.Name, element.Stereotypes, element.Notes, element.Alias, element.Tags),
		Abstract:  element.Abstract,
		Leaf:      element.Leaf,
		PackageID: pkg.ID,
		Status:    element.Status,
	}
	class.Category = categoryOf(element.Kind, class.Stereotypes)

	previous, ok := s.graph.AddClass(class)
	if !ok {
		s.report(diag.Warning, diag.MalformedRecord, s.graph.ClassPath(class), "element", "duplicate id "+class.ID)
		return nil
	}
	s.metrics.entities.WithLabelValues("class").Inc()
	if previous != "" {
		s.report(diag.Info, diag.DuplicateClassName, s.graph.ClassPath(class), class.Name, previous, class.ID)
	}

	specs, err := s.constraintSpecs(class.ID)
	if err != nil {
		return err
	}
	class.ConstraintSpecs = specs

	for _, attribute := range element.Attributes {
		if err = s.addAttribute(class, attribute); err != nil {
			return err
		}
	}
	for _, operation := range element.Operations {
		s.addOperation(class, operation)
	}
	return nil
}

// categoryOf derives the category of a classifier. An enumeration kind always wins,
// then a recognized class stereotype, then the kind itself.
func categoryOf(kind source.ElementKind, stereotypes graph.Stereotypes) graph.Category {
	if kind == source.KindEnumeration {
		return graph.Enumeration
	}
	if category, ok := stereotypes.CategoryOf(); ok {
		return category
	}
	switch kind {
	case source.KindInterface:
		return graph.Mixin
	case source.KindDataType:
		return graph.Datatype
	}
	if len(stereotypes) == 0 {
		return graph.Object
	}
	return graph.Unknown
}

func (s *session) addAttribute(class *graph.Class, record *source.Attribute) error {
	if record == nil {
		return nil
	}
	if record.ID == "" || record.Name == "" {
		s.report(diag.Warning, diag.MalformedRecord, s.graph.ClassPath(class), "attribute", fmt.Sprintf("id=%q name=%q", record.ID, record.Name))
		return nil
	}
	property := &graph.Property{
		Element:      newElement(record.ID, record.Name, record.Stereotypes, record.Notes, record.Alias, record.Tags),
		ClassID:      class.ID,
		TypeID:       record.TypeID,
		TypeName:     record.TypeName,
		Derived:      record.Derived,
		Ordered:      record.Ordered,
		Unique:       !record.NonUnique,
		ReadOnly:     record.ReadOnly,
		Navigable:    true,
		Owned:        true,
		InitialValue: record.InitialValue,
	}
	property.Multiplicity = s.multiplicity(record.Cardinality, s.graph.PropertyPath(property))
	specs, err := s.constraintSpecs(record.ID)
	if err != nil {
		return err
	}
	property.ConstraintSpecs = specs
	class.Attach(property)
	s.metrics.entities.WithLabelValues("property").Inc()
	return nil
}

func (s *session) multiplicity(text, path string) graph.Multiplicity {
	result, err := graph.ParseMultiplicity(text)
	if err != nil {
		s.report(diag.Warning, diag.InvalidMultiplicity, path, text, path, result.String())
	}
	return result
}

func (s *session) addOperation(class *graph.Class, record *source.Operation) {
	if record == nil {
		return
	}
	if record.ID == "" || record.Name == "" {
		s.report(diag.Warning, diag.MalformedRecord, s.graph.ClassPath(class), "operation", fmt.Sprintf("id=%q name=%q", record.ID, record.Name))
		return
	}
	operation := &graph.Operation{
		Element: newElement(record.ID, record.Name, record.Stereotypes, record.Notes, record.Alias, record.Tags),
		ClassID: class.ID,
	}
	for i, param := range record.Parameters {
		if param == nil {
			continue
		}
		id := param.ID
		if id == "" {
			id = graph.ParameterID(operation.ID, param.Name, i)
		}
		parameter := &graph.Parameter{
			ID:        id,
			Name:      param.Name,
			TypeName:  param.TypeName,
			Direction: direction(param.Direction),
		}
		path := s.graph.Path(operation) + "(" + strconv.Itoa(i) + ")"
		parameter.Multiplicity = s.multiplicity(param.Cardinality, path)
		operation.Parameters = append(operation.Parameters, parameter)
	}
	result := &graph.Parameter{
		ID:           graph.ParameterID(operation.ID, graph.ReturnParameterName, len(operation.Parameters)),
		Name:         graph.ReturnParameterName,
		TypeName:     record.ReturnType,
		Direction:    graph.DirectionReturn,
		Multiplicity: graph.DefaultMultiplicity,
	}
	operation.Parameters = append(operation.Parameters, result)
	class.AddOperation(operation)
	s.metrics.entities.WithLabelValues("operation").Inc()
}

// resolveParameterTypes links operation parameters to the classes named as their types
func (s *session) resolveParameterTypes() {
	for _, class := range s.graph.Classes() {
		for _, operation := range class.Operations() {
			for _, parameter := range operation.Parameters {
				if parameter.TypeName == "" {
					continue
				}
				if target := s.graph.ClassByName(parameter.TypeName); target != nil {
					parameter.TypeID = target.ID
				}
			}
		}
	}
}

func direction(text string) graph.Direction {
	switch graph.Direction(strings.ToLower(strings.TrimSpace(text))) {
	case graph.DirectionOut:
		return graph.DirectionOut
	case graph.DirectionInOut:
		return graph.DirectionInOut
	}
	return graph.DirectionIn
}

func (s *session) constraintSpecs(ownerID string) ([]graph.ConstraintSpec, error) {
	if err := s.ctx.Err(); err != nil {
		return nil, err
	}
	records, err := s.src.Constraints(s.ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read constraints of %s: %w", ownerID, err)
	}
	var result []graph.ConstraintSpec
	for _, record := range records {
		if record == nil {
			continue
		}
		result = append(result, graph.ConstraintSpec{
			Name:   record.Name,
			Type:   record.Type,
			Status: record.Status,
			Text:   record.Text,
		})
	}
	return result, nil
}
