package builder

import (
	"github.com/viant/modelgraph/diag"
	"github.com/viant/modelgraph/graph"
	"html"
	"regexp"
	"strings"
)

var markupTag = regexp.MustCompile(`(?i)</?(b|i|u|font|a|ul|ol|li|p|br|span)\b[^>]*>`)

// inheritance identifies a reported descriptor fallback
type inheritance struct {
	element *graph.Element
	kind    graph.Descriptor
}

// Documentation returns the documentation of an entity
func (m *Model) Documentation(entity graph.Entity) string {
	return m.Descriptor(entity, graph.Documentation)
}

// Alias returns the alias of an entity
func (m *Model) Alias(entity graph.Entity) string {
	return m.Descriptor(entity, graph.Alias)
}

// GlobalIdentifier returns the global identifier of an entity
func (m *Model) GlobalIdentifier(entity graph.Entity) string {
	return m.Descriptor(entity, graph.GlobalIdentifier)
}

// Descriptor resolves a descriptor of an entity once and returns the cached value on
// every later call, including an empty value
func (m *Model) Descriptor(entity graph.Entity, kind graph.Descriptor) string {
	if entity == nil {
		return ""
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.descriptor(entity, kind)
}

func (m *Model) descriptor(entity graph.Entity, kind graph.Descriptor) string {
	element := entity.Base()
	return m.resolution.Resolve(element.Descriptors(), kind, func() string {
		m.metrics.descriptors.WithLabelValues(kind.String()).Inc()
		if value := m.taggedDescriptor(element, kind); value != "" {
			return value
		}
		if value := nativeDescriptor(element, kind); value != "" {
			return value
		}
		var from *graph.Class
		var value string
		switch actual := entity.(type) {
		case *graph.Class:
			from, value = m.classFallback(actual, kind)
		case *graph.Property:
			from, value = m.propertyFallback(actual, kind)
		}
		if key := (inheritance{element: element, kind: kind}); from != nil && !m.inherited[key] {
			m.inherited[key] = true
			m.report(diag.Info, diag.DescriptorInherited, m.graph.Path(entity), kind.String(), m.graph.Path(entity), m.graph.ClassPath(from))
		}
		return value
	})
}

func (m *Model) taggedDescriptor(element *graph.Element, kind graph.Descriptor) string {
	var names []string
	switch kind {
	case graph.Documentation:
		names = m.config.Descriptors.Documentation
	case graph.Alias:
		names = m.config.Descriptors.Alias
	case graph.GlobalIdentifier:
		names = m.config.Descriptors.GlobalIdentifier
	}
	for _, name := range names {
		if value := element.Tag(name); value != "" {
			return value
		}
	}
	return ""
}

func nativeDescriptor(element *graph.Element, kind graph.Descriptor) string {
	switch kind {
	case graph.Documentation:
		return cleanNotes(element.Notes)
	case graph.Alias:
		return strings.TrimSpace(element.AliasText)
	}
	return ""
}

// cleanNotes removes comment markers and formatting markup from native notes
func cleanNotes(notes string) string {
	if strings.TrimSpace(notes) == "" {
		return ""
	}
	notes = strings.ReplaceAll(notes, "\r\n", "\n")
	notes = markupTag.ReplaceAllString(notes, "")
	notes = html.UnescapeString(notes)
	notes = strings.TrimSpace(notes)
	if strings.HasPrefix(notes, "/*") && strings.HasSuffix(notes, "*/") {
		notes = notes[2 : len(notes)-2]
	}
	if strings.HasPrefix(notes, "//") {
		notes = notes[2:]
	}
	lines := strings.Split(notes, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "*") {
			lines[i] = strings.TrimSpace(line[1:])
		} else {
			lines[i] = line
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// classFallback looks for the descriptor on concept classes the class depends on and
// then on a supertype with the same name
func (m *Model) classFallback(class *graph.Class, kind graph.Descriptor) (*graph.Class, string) {
	for _, id := range class.Dependencies {
		supplier := m.graph.Class(id)
		if supplier == nil || !supplier.Category.IsConcept() || !strings.EqualFold(supplier.Name, class.Name) {
			continue
		}
		if value := m.descriptor(supplier, kind); value != "" {
			return supplier, value
		}
	}
	for _, id := range class.Supertypes() {
		supertype := m.graph.Class(id)
		if supertype == nil || supertype.Name != class.Name {
			continue
		}
		if value := m.descriptor(supertype, kind); value != "" {
			return supertype, value
		}
	}
	return nil, ""
}

// propertyFallback looks for the descriptor on concept classes next to the owning class.
// Properties valued by an enumeration or code list match value or attribute concepts by
// property or type name, other properties match attribute or role concepts by name.
func (m *Model) propertyFallback(property *graph.Property, kind graph.Descriptor) (*graph.Class, string) {
	owner := m.graph.Class(property.ClassID)
	if owner == nil {
		return nil, ""
	}
	enumerated := false
	typeName := property.TypeName
	if valueType := m.graph.ResolveType(property); valueType != nil {
		enumerated = valueType.Category.IsEnumerated()
		typeName = valueType.Name
	}
	for _, candidate := range m.conceptCandidates(owner) {
		if !matchesConcept(candidate, property.Name, typeName, enumerated) {
			continue
		}
		if value := m.descriptor(candidate, kind); value != "" {
			return candidate, value
		}
	}
	return nil, ""
}

func matchesConcept(candidate *graph.Class, propertyName, typeName string, enumerated bool) bool {
	if enumerated {
		switch candidate.Category {
		case graph.ValueConcept, graph.AttributeConcept:
			return strings.EqualFold(candidate.Name, propertyName) || (typeName != "" && strings.EqualFold(candidate.Name, typeName))
		}
		return false
	}
	switch candidate.Category {
	case graph.AttributeConcept, graph.RoleConcept:
		return strings.EqualFold(candidate.Name, propertyName)
	}
	return false
}

// conceptCandidates lists concept classes of the owner's package followed by the
// owner's concept dependencies, each once
func (m *Model) conceptCandidates(owner *graph.Class) []*graph.Class {
	var result []*graph.Class
	seen := map[string]bool{}
	add := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		if class := m.graph.Class(id); class != nil && class.Category.IsConcept() {
			result = append(result, class)
		}
	}
	if pkg := m.graph.Package(owner.PackageID); pkg != nil {
		for _, id := range pkg.ClassIDs {
			add(id)
		}
	}
	for _, id := range owner.Dependencies {
		add(id)
	}
	return result
}
