package graph

// Aggregation is the UML aggregation kind of an association end
type Aggregation int

const (
	AggregationNone Aggregation = iota
	AggregationShared
	AggregationComposite
)

func (a Aggregation) String() string {
	switch a {
	case AggregationShared:
		return "shared"
	case AggregationComposite:
		return "composite"
	}
	return "none"
}

// Qualifier is an association end qualifier
type Qualifier struct {
	Name     string
	TypeName string // optional
}

// Property is an attribute of a class or an association end
type Property struct {
	Element
	ClassID      string // class the property belongs to (the opposite class for association ends)
	TypeID       string
	TypeName     string
	Multiplicity Multiplicity
	Key          OrderKey // nil until sequenced
	Derived      bool
	Ordered      bool
	Unique       bool
	ReadOnly     bool
	Navigable    bool
	Owned        bool
	Aggregation  Aggregation
	Qualifiers   []Qualifier
	InitialValue string

	AssociationID string // set for association ends
	End           int    // 0 source end, 1 target end

	ConstraintSpecs []ConstraintSpec
}

// IsAttribute returns true if the property is not an association end
func (p *Property) IsAttribute() bool { return p.AssociationID == "" }

// IsRole returns true if the property is an association end
func (p *Property) IsRole() bool { return p.AssociationID != "" }

// IsSequenced returns true once an order key was assigned
func (p *Property) IsSequenced() bool { return p.Key != nil }
