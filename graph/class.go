package graph

import (
	"slices"
	"sort"
)

// Class is a classifier of the application schema
type Class struct {
	Element
	Category  Category
	Abstract  bool
	Leaf      bool
	PackageID string
	Status    string

	// Dependencies holds supplier ids of dependency relationships in source order
	Dependencies    []string
	ConstraintSpecs []ConstraintSpec

	supertypes []string
	subtypes   []string

	properties  []*Property    // ordered by key, equal keys in insertion order
	pending     []*Property    // attached but not yet sequenced
	attached    []*Property    // attach order
	propertyMap map[string]int // name -> first position in attached

	operations   []*Operation
	operationMap map[string]int
}

// Supertypes returns supertype ids in the order the edges were created
func (c *Class) Supertypes() []string {
	return append([]string(nil), c.supertypes...)
}

// Subtypes returns subtype ids in the order the edges were created
func (c *Class) Subtypes() []string {
	return append([]string(nil), c.subtypes...)
}

// HasSupertype returns true if id is a recorded supertype
func (c *Class) HasSupertype(id string) bool {
	return slices.Contains(c.supertypes, id)
}

// HasSubtype returns true if id is a recorded subtype
func (c *Class) HasSubtype(id string) bool {
	return slices.Contains(c.subtypes, id)
}

// Attach adds a property to the class; it becomes visible in the ordered table once sequenced
func (c *Class) Attach(property *Property) {
	if c.propertyMap == nil {
		c.propertyMap = make(map[string]int)
	}
	c.attached = append(c.attached, property)
	if _, ok := c.propertyMap[property.Name]; !ok {
		c.propertyMap[property.Name] = len(c.attached) - 1
	}
	c.pending = append(c.pending, property)
}

// TakePending returns properties attached since the last call, in attach order
func (c *Class) TakePending() []*Property {
	result := c.pending
	c.pending = nil
	return result
}

// HasPending returns true if some attached property was not sequenced yet
func (c *Class) HasPending() bool {
	return len(c.pending) > 0
}

// Insert places a sequenced property into the ordered table after any property with an
// equal key and returns the first such property, or nil when the key is new.
func (c *Class) Insert(property *Property) *Property {
	key := property.Key
	position := sort.Search(len(c.properties), func(i int) bool {
		return c.properties[i].Key.Compare(key) > 0
	})
	var collision *Property
	for i := position - 1; i >= 0 && c.properties[i].Key.Equal(key); i-- {
		collision = c.properties[i]
	}
	c.properties = append(c.properties, nil)
	copy(c.properties[position+1:], c.properties[position:])
	c.properties[position] = property
	return collision
}

// Properties returns the ordered property table
func (c *Class) Properties() []*Property {
	return append([]*Property(nil), c.properties...)
}

// Attached returns all properties in attach order, sequenced or not
func (c *Class) Attached() []*Property {
	return append([]*Property(nil), c.attached...)
}

// GetProperty retrieves the first attached property with the name
func (c *Class) GetProperty(name string) *Property {
	if idx, ok := c.propertyMap[name]; ok && idx < len(c.attached) {
		return c.attached[idx]
	}
	return nil
}

// AddOperation adds an operation to the class
func (c *Class) AddOperation(operation *Operation) {
	if c.operationMap == nil {
		c.operationMap = make(map[string]int)
	}
	c.operations = append(c.operations, operation)
	if _, ok := c.operationMap[operation.Name]; !ok {
		c.operationMap[operation.Name] = len(c.operations) - 1
	}
}

// Operations returns operations in declaration order
func (c *Class) Operations() []*Operation {
	return append([]*Operation(nil), c.operations...)
}

// GetOperation retrieves the first operation with the name
func (c *Class) GetOperation(name string) *Operation {
	if idx, ok := c.operationMap[name]; ok && idx < len(c.operations) {
		return c.operations[idx]
	}
	return nil
}
