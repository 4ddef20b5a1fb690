package source

import "context"

// Source yields raw records of one model. Errors are fatal for the build that reads them.
type Source interface {
	// Roots returns the top-level packages in source order
	Roots(ctx context.Context) ([]*Package, error)

	// Children returns the direct child packages of a package
	Children(ctx context.Context, packageID string) ([]*Package, error)

	// Elements returns the elements directly contained in a package
	Elements(ctx context.Context, packageID string) ([]*Element, error)

	// Relationships returns relationships attached to an element at either end
	Relationships(ctx context.Context, elementID string) ([]*Relationship, error)

	// Constraints returns constraints owned by an element or attribute
	Constraints(ctx context.Context, ownerID string) ([]*Constraint, error)
}
