package source

import (
	"context"
	"fmt"
)

// Document is a whole model in nested form
type Document struct {
	Name          string          `yaml:"name,omitempty"`
	Packages      []*PackageNode  `yaml:"packages"`
	Relationships []*Relationship `yaml:"relationships,omitempty"`
	Constraints   []*Constraint   `yaml:"constraints,omitempty"`
}

// PackageNode is a package with its elements and child packages
type PackageNode struct {
	Package  `yaml:",inline"`
	Elements []*Element     `yaml:"elements,omitempty"`
	Packages []*PackageNode `yaml:"packages,omitempty"`
}

// Memory serves a Document
type Memory struct {
	roots         []*Package
	children      map[string][]*Package
	elements      map[string][]*Element
	relationships map[string][]*Relationship
	constraints   map[string][]*Constraint
}

// NewMemory indexes the document; relationships are listed under both of their ends
// in document order
func NewMemory(document *Document) *Memory {
	result := &Memory{
		children:      make(map[string][]*Package),
		elements:      make(map[string][]*Element),
		relationships: make(map[string][]*Relationship),
		constraints:   make(map[string][]*Constraint),
	}
	if document == nil {
		return result
	}
	for _, node := range document.Packages {
		if node == nil {
			continue
		}
		result.roots = append(result.roots, &node.Package)
		result.index(node)
	}
	for _, relationship := range document.Relationships {
		if relationship == nil {
			continue
		}
		result.relationships[relationship.ClientID] = append(result.relationships[relationship.ClientID], relationship)
		if relationship.SupplierID != relationship.ClientID {
			result.relationships[relationship.SupplierID] = append(result.relationships[relationship.SupplierID], relationship)
		}
	}
	for _, constraint := range document.Constraints {
		if constraint == nil {
			continue
		}
		result.constraints[constraint.OwnerID] = append(result.constraints[constraint.OwnerID], constraint)
	}
	return result
}

func (m *Memory) index(node *PackageNode) {
	m.elements[node.ID] = append(m.elements[node.ID], node.Elements...)
	for _, child := range node.Packages {
		if child == nil {
			continue
		}
		m.children[node.ID] = append(m.children[node.ID], &child.Package)
		m.index(child)
	}
}

func (m *Memory) Roots(ctx context.Context) ([]*Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to read root packages: %w", err)
	}
	return m.roots, nil
}

func (m *Memory) Children(ctx context.Context, packageID string) ([]*Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to read packages of %s: %w", packageID, err)
	}
	return m.children[packageID], nil
}

func (m *Memory) Elements(ctx context.Context, packageID string) ([]*Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to read elements of %s: %w", packageID, err)
	}
	return m.elements[packageID], nil
}

func (m *Memory) Relationships(ctx context.Context, elementID string) ([]*Relationship, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to read relationships of %s: %w", elementID, err)
	}
	return m.relationships[elementID], nil
}

func (m *Memory) Constraints(ctx context.Context, ownerID string) ([]*Constraint, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to read constraints of %s: %w", ownerID, err)
	}
	return m.constraints[ownerID], nil
}
