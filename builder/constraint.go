package builder

import (
	"github.com/viant/modelgraph/diag"
	"github.com/viant/modelgraph/graph"
)

// ConstraintParser builds the syntax tree of a constraint expression. Returning a nil
// tree or an error means the expression could not be parsed.
type ConstraintParser interface {
	Parse(constraint *graph.Constraint) (interface{}, error)
}

// ConstraintParserFunc adapts a function to ConstraintParser
type ConstraintParserFunc func(constraint *graph.Constraint) (interface{}, error)

func (f ConstraintParserFunc) Parse(constraint *graph.Constraint) (interface{}, error) {
	return f(constraint)
}

// Constraints returns the classified constraints of a class or property. Class
// constraints are followed by constraints inherited from supertypes; an inherited
// constraint is dropped when a constraint with its name is already present.
func (m *Model) Constraints(entity graph.Entity) []*graph.Constraint {
	if entity == nil {
		return nil
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	switch actual := entity.(type) {
	case *graph.Class:
		return clone(m.classConstraints(actual))
	case *graph.Property:
		return clone(m.propertyConstraints(actual))
	}
	return nil
}

func clone(constraints []*graph.Constraint) []*graph.Constraint {
	return append([]*graph.Constraint(nil), constraints...)
}

func (m *Model) classConstraints(class *graph.Class) []*graph.Constraint {
	if cached, ok := m.constraints[class.Base()]; ok {
		return cached
	}
	result := clone(m.ownConstraints(class))
	names := map[string]bool{}
	for _, constraint := range result {
		names[constraint.Name] = true
	}
	visited := map[string]bool{class.ID: true}
	queue := class.Supertypes()
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		supertype := m.graph.Class(id)
		if supertype == nil {
			continue
		}
		for _, own := range m.ownConstraints(supertype) {
			if names[own.Name] {
				continue
			}
			names[own.Name] = true
			inherited := *own
			inherited.ContextID = class.ID
			inherited.Inherited = true
			result = append(result, &inherited)
		}
		queue = append(queue, supertype.Supertypes()...)
	}
	m.constraints[class.Base()] = result
	return result
}

// ownConstraints returns the declared constraints of a class, classified once
func (m *Model) ownConstraints(class *graph.Class) []*graph.Constraint {
	if cached, ok := m.declared[class.ID]; ok {
		return cached
	}
	result := m.classify(class.ConstraintSpecs, class.ID, graph.ClassContext, class.ID, m.graph.ClassPath(class))
	m.declared[class.ID] = result
	return result
}

func (m *Model) propertyConstraints(property *graph.Property) []*graph.Constraint {
	if cached, ok := m.constraints[property.Base()]; ok {
		return cached
	}
	result := m.classify(property.ConstraintSpecs, property.ID, graph.PropertyContext, property.ClassID, m.graph.PropertyPath(property))
	m.constraints[property.Base()] = result
	return result
}

func (m *Model) classify(specs []graph.ConstraintSpec, contextID string, contextKind graph.ContextKind, ownerID, path string) []*graph.Constraint {
	result := make([]*graph.Constraint, 0, len(specs))
	for _, spec := range specs {
		constraint := &graph.Constraint{
			Kind:        m.constraintKind(spec.Type),
			ContextID:   contextID,
			ContextKind: contextKind,
			Name:        spec.Name,
			Status:      spec.Status,
			Text:        spec.Text,
			OwnerID:     ownerID,
		}
		if constraint.Kind == graph.ConstraintOCL && m.oclParser != nil {
			syntax, err := m.oclParser.Parse(constraint)
			if err != nil || syntax == nil {
				constraint.Kind = graph.ConstraintText
				constraint.Downgraded = true
				m.report(diag.Warning, diag.ConstraintDowngraded, path, constraint.Name)
			} else {
				constraint.Syntax = syntax
			}
		}
		result = append(result, constraint)
	}
	return result
}

// constraintKind matches the declared type against the OCL pattern first and the FOL pattern second
func (m *Model) constraintKind(declared string) graph.ConstraintKind {
	switch {
	case m.oclPattern != nil && m.oclPattern.MatchString(declared):
		return graph.ConstraintOCL
	case m.folPattern != nil && m.folPattern.MatchString(declared):
		return graph.ConstraintFOL
	}
	return graph.ConstraintText
}
