package graph

// Package is a node of the package containment tree
type Package struct {
	Element
	ParentID string   // empty for a top-level package
	ChildIDs []string // child packages in traversal order
	ClassIDs []string // contained classes in registration order
}

// IsTopLevel returns true if the package has no parent
func (p *Package) IsTopLevel() bool { return p.ParentID == "" }

// IsAppSchema returns true if the package is stereotyped as an application schema
func (p *Package) IsAppSchema() bool {
	return p.Stereotypes.Has(StereotypeApplicationSchema)
}
