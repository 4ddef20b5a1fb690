package builder

import (
	"github.com/viant/modelgraph/diag"
	"github.com/viant/modelgraph/graph"
)

const (
	// AttributeSequenceBase is the first component of synthesized attribute order keys.
	// Explicit keys at or above it are rejected.
	AttributeSequenceBase = 1_000_000
	// RoleSequenceBase is the first component of synthesized role order keys
	RoleSequenceBase = 2_000_000
)

// sequenceState holds the synthetic key counters of one class
type sequenceState struct {
	attributes int
	roles      int
}

// Properties returns the property table of a class ordered by order key. Keys are
// assigned on first access; properties attached later are sequenced on the next
// access and keys once assigned never change.
func (m *Model) Properties(classID string) []*graph.Property {
	m.mux.Lock()
	defer m.mux.Unlock()
	class := m.graph.Class(classID)
	if class == nil {
		return nil
	}
	m.sequence(class)
	return class.Properties()
}

// Property returns the first property of a class with the name
func (m *Model) Property(classID, name string) *graph.Property {
	m.mux.Lock()
	defer m.mux.Unlock()
	class := m.graph.Class(classID)
	if class == nil {
		return nil
	}
	m.sequence(class)
	return class.GetProperty(name)
}

func (m *Model) sequence(class *graph.Class) {
	if !class.HasPending() {
		return
	}
	for _, property := range class.TakePending() {
		if property.Key == nil {
			property.Key = m.orderKey(class, property)
		}
		collision := class.Insert(property)
		if collision == nil || class.Category.IsEnumerated() || property.Key.IsNoSequence() {
			continue
		}
		m.report(diag.Warning, diag.DuplicateSequenceNumber, m.graph.ClassPath(class),
			class.Name, collision.Name, property.Name, property.Key.String())
	}
}

// orderKey reads the explicit key of a property or synthesizes one from the counter of its kind
func (m *Model) orderKey(class *graph.Class, property *graph.Property) graph.OrderKey {
	if text := property.Tag(m.config.Sequence.Tag); text != "" {
		key, err := graph.ParseOrderKey(text)
		if err == nil && key[0] < AttributeSequenceBase {
			return key
		}
		m.report(diag.Warning, diag.InvalidSequenceNumber, m.graph.PropertyPath(property), text, m.graph.PropertyPath(property))
	}
	state, ok := m.sequences[class.ID]
	if !ok {
		state = &sequenceState{}
		m.sequences[class.ID] = state
	}
	if property.IsRole() {
		state.roles++
		return graph.OrderKey{RoleSequenceBase + state.roles}
	}
	state.attributes++
	return graph.OrderKey{AttributeSequenceBase + state.attributes}
}
