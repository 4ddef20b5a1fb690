package source

// ElementKind is the raw kind of a model element
type ElementKind string

const (
	KindClass       ElementKind = "Class"
	KindInterface   ElementKind = "Interface"
	KindDataType    ElementKind = "DataType"
	KindEnumeration ElementKind = "Enumeration"
	KindNote        ElementKind = "Note"
	KindComponent   ElementKind = "Component"
)

// RelationshipKind is the raw kind of a relationship
type RelationshipKind string

const (
	Generalization RelationshipKind = "Generalization"
	Realization    RelationshipKind = "Realization"
	Association    RelationshipKind = "Association"
	Aggregation    RelationshipKind = "Aggregation"
	Composition    RelationshipKind = "Composition"
	Dependency     RelationshipKind = "Dependency"
	NoteLink       RelationshipKind = "NoteLink"
)

// Tag is a raw tagged value
type Tag struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Package is a raw package record
type Package struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Stereotypes string `yaml:"stereotypes,omitempty"`
	Notes       string `yaml:"notes,omitempty"`
	Alias       string `yaml:"alias,omitempty"`
	Tags        []Tag  `yaml:"tags,omitempty"`
}

// Element is a raw classifier record
type Element struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Kind        ElementKind  `yaml:"kind"`
	Status      string       `yaml:"status,omitempty"`
	Abstract    bool         `yaml:"abstract,omitempty"`
	Leaf        bool         `yaml:"leaf,omitempty"`
	Notes       string       `yaml:"notes,omitempty"`
	Alias       string       `yaml:"alias,omitempty"`
	Stereotypes string       `yaml:"stereotypes,omitempty"` // comma separated
	Tags        []Tag        `yaml:"tags,omitempty"`
	Attributes  []*Attribute `yaml:"attributes,omitempty"`
	Operations  []*Operation `yaml:"operations,omitempty"`
}

// Attribute is a raw attribute record
type Attribute struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	TypeID       string `yaml:"typeId,omitempty"`
	TypeName     string `yaml:"type,omitempty"`
	Cardinality  string `yaml:"cardinality,omitempty"`
	Derived      bool   `yaml:"derived,omitempty"`
	Ordered      bool   `yaml:"ordered,omitempty"`
	NonUnique    bool   `yaml:"nonUnique,omitempty"`
	ReadOnly     bool   `yaml:"readOnly,omitempty"`
	InitialValue string `yaml:"initialValue,omitempty"`
	Notes        string `yaml:"notes,omitempty"`
	Alias        string `yaml:"alias,omitempty"`
	Stereotypes  string `yaml:"stereotypes,omitempty"`
	Tags         []Tag  `yaml:"tags,omitempty"`
}

// Operation is a raw operation record
type Operation struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	ReturnType  string       `yaml:"returnType,omitempty"`
	Notes       string       `yaml:"notes,omitempty"`
	Alias       string       `yaml:"alias,omitempty"`
	Stereotypes string       `yaml:"stereotypes,omitempty"`
	Tags        []Tag        `yaml:"tags,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty"`
}

// Parameter is a raw operation parameter
type Parameter struct {
	ID          string `yaml:"id,omitempty"`
	Name        string `yaml:"name"`
	TypeName    string `yaml:"type,omitempty"`
	Direction   string `yaml:"direction,omitempty"`
	Cardinality string `yaml:"cardinality,omitempty"`
}

// End is the raw data of one relationship end
type End struct {
	Role        string `yaml:"role,omitempty"`
	Navigable   string `yaml:"navigable,omitempty"` // Navigable, Non-Navigable or Unspecified
	Cardinality string `yaml:"cardinality,omitempty"`
	Qualifiers  string `yaml:"qualifiers,omitempty"` // name[:type], comma separated
	Ordered     bool   `yaml:"ordered,omitempty"`
	NonUnique   bool   `yaml:"nonUnique,omitempty"`
	Derived     bool   `yaml:"derived,omitempty"`
	ReadOnly    bool   `yaml:"readOnly,omitempty"`
	Owned       bool   `yaml:"owned,omitempty"`
	Aggregation string `yaml:"aggregation,omitempty"` // none, shared, composite
	Notes       string `yaml:"notes,omitempty"`
	Alias       string `yaml:"alias,omitempty"`
	Stereotypes string `yaml:"stereotypes,omitempty"`
	Tags        []Tag  `yaml:"tags,omitempty"`
}

// Relationship is a raw relationship record. The client end is the source, the supplier the target.
type Relationship struct {
	ID                 string           `yaml:"id"`
	Kind               RelationshipKind `yaml:"kind"`
	Name               string           `yaml:"name,omitempty"`
	Direction          string           `yaml:"direction,omitempty"`
	ClientID           string           `yaml:"clientId"`
	Client             End              `yaml:"client,omitempty"`
	SupplierID         string           `yaml:"supplierId"`
	Supplier           End              `yaml:"supplier,omitempty"`
	AssociationClassID string           `yaml:"associationClassId,omitempty"`
	Notes              string           `yaml:"notes,omitempty"`
	Stereotypes        string           `yaml:"stereotypes,omitempty"`
	Tags               []Tag            `yaml:"tags,omitempty"`
}

// Constraint is a raw constraint record
type Constraint struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type,omitempty"`
	Status  string `yaml:"status,omitempty"`
	Text    string `yaml:"text"`
	OwnerID string `yaml:"ownerId"`
}
