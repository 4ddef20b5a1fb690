package graph

// Element carries identity and descriptive source metadata shared by all entities
type Element struct {
	ID           string
	Name         string
	Stereotypes  Stereotypes
	TaggedValues TaggedValues
	Notes        string // native free text
	AliasText    string // native alias

	descriptors Descriptors
}

// Base returns the element itself
func (e *Element) Base() *Element { return e }

// Descriptors returns the descriptor cache
func (e *Element) Descriptors() *Descriptors { return &e.descriptors }

// Tag returns the first value of a tagged value
func (e *Element) Tag(name string) string {
	if e.TaggedValues == nil {
		return ""
	}
	return e.TaggedValues.Get(name)
}

// HasStereotype reports whether the element carries the stereotype in any spelling
func (e *Element) HasStereotype(name string) bool {
	return e.Stereotypes.Has(name)
}

// Entity is any model element with descriptors
type Entity interface {
	Base() *Element
}

// ConstraintSpec is a constraint as recorded by the source, before classification
type ConstraintSpec struct {
	Name   string
	Type   string
	Status string
	Text   string
}
