package graph

// ConstraintKind is the dialect of a constraint
type ConstraintKind int

const (
	ConstraintText ConstraintKind = iota
	ConstraintOCL
	ConstraintFOL
)

func (k ConstraintKind) String() string {
	switch k {
	case ConstraintOCL:
		return "OCL"
	case ConstraintFOL:
		return "FOL"
	}
	return "Text"
}

// MarshalText renders the kind by name
func (k ConstraintKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ContextKind tells whether a constraint belongs to a class or a property
type ContextKind int

const (
	ClassContext ContextKind = iota
	PropertyContext
)

// Constraint is a classified constraint
type Constraint struct {
	Kind        ConstraintKind
	ContextID   string
	ContextKind ContextKind
	Name        string
	Status      string
	Text        string
	Syntax      interface{} // parsed form supplied by an external parser
	Downgraded  bool        // OCL text that could not be parsed
	Inherited   bool
	OwnerID     string // class the constraint was declared on
}
