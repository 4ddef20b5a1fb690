package builder

import (
	"github.com/viant/modelgraph/diag"
	"github.com/viant/modelgraph/graph"
)

var inheritingCategories = map[graph.Category]bool{
	graph.Feature:  true,
	graph.Object:   true,
	graph.Datatype: true,
	graph.Mixin:    true,
	graph.Union:    true,
}

// BaseClass selects the single supertype used by single inheritance consumers. Mixin
// supertypes are ignored; a supertype is compatible when it has the category of the
// class or an unknown category. With several compatible supertypes the last one in
// edge order is returned and an ambiguity is reported. The result and its
// diagnostics are computed once per class.
func (m *Model) BaseClass(classID string) *graph.Class {
	m.mux.Lock()
	defer m.mux.Unlock()
	class := m.graph.Class(classID)
	if class == nil {
		return nil
	}
	if id, ok := m.baseClasses[classID]; ok {
		return m.graph.Class(id)
	}
	var id string
	if base := m.selectBaseClass(class); base != nil {
		id = base.ID
	}
	m.baseClasses[classID] = id
	return m.graph.Class(id)
}

func (m *Model) selectBaseClass(class *graph.Class) *graph.Class {
	if !inheritingCategories[class.Category] {
		return nil
	}
	var chosen *graph.Class
	compatible := 0
	for _, id := range class.Supertypes() {
		supertype := m.graph.Class(id)
		if supertype == nil || supertype.Category == graph.Mixin {
			continue
		}
		if supertype.Category == class.Category || supertype.Category == graph.Unknown {
			compatible++
			chosen = supertype
			continue
		}
		if class.Category == graph.Mixin && m.config.Inheritance.MixinsExtendNonMixins() {
			continue
		}
		m.report(diag.Warning, diag.IncompatibleSupertype, m.graph.ClassPath(class),
			class.Name, supertype.Name, supertype.Category.String(), class.Category.String())
	}
	if compatible > 1 {
		severity := diag.Info
		if m.InScope(class) {
			severity = diag.Warning
		}
		m.report(severity, diag.AmbiguousBaseClass, m.graph.ClassPath(class),
			class.Name, class.Category.String(), chosen.Name)
	}
	return chosen
}
