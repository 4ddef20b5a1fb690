package graph

import (
	"slices"
	"strings"
)

// PathSeparator joins names in entity paths
const PathSeparator = "::"

// Model is the id registry and arena of one build. All cross entity references are
// ids resolved through it.
type Model struct {
	Name string

	packages     []*Package
	packageMap   map[string]int
	roots        []string
	classes      []*Class
	classMap     map[string]int
	classNames   map[string]string // name -> id, later registration wins
	associations []*Association
	assocMap     map[string]int
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:       name,
		packageMap: make(map[string]int),
		classMap:   make(map[string]int),
		classNames: make(map[string]string),
		assocMap:   make(map[string]int),
	}
}

// AddPackage registers a package and links it to its parent. It returns false if the
// id is already registered.
func (m *Model) AddPackage(pkg *Package) bool {
	if _, ok := m.packageMap[pkg.ID]; ok {
		return false
	}
	m.packages = append(m.packages, pkg)
	m.packageMap[pkg.ID] = len(m.packages) - 1
	if pkg.ParentID == "" {
		m.roots = append(m.roots, pkg.ID)
		return true
	}
	if parent := m.Package(pkg.ParentID); parent != nil {
		parent.ChildIDs = append(parent.ChildIDs, pkg.ID)
	}
	return true
}

// Package retrieves a package by id
func (m *Model) Package(id string) *Package {
	if idx, ok := m.packageMap[id]; ok && idx < len(m.packages) {
		return m.packages[idx]
	}
	return nil
}

// Packages returns packages in traversal order
func (m *Model) Packages() []*Package {
	return append([]*Package(nil), m.packages...)
}

// RootPackages returns top-level packages
func (m *Model) RootPackages() []*Package {
	result := make([]*Package, 0, len(m.roots))
	for _, id := range m.roots {
		result = append(result, m.Package(id))
	}
	return result
}

// AddClass registers a class by id and name and appends it to its package. It returns
// the id of the class that previously owned the name, if any, and false when the id
// is already registered.
func (m *Model) AddClass(class *Class) (string, bool) {
	if _, ok := m.classMap[class.ID]; ok {
		return "", false
	}
	m.classes = append(m.classes, class)
	m.classMap[class.ID] = len(m.classes) - 1
	previous := m.classNames[class.Name]
	m.classNames[class.Name] = class.ID
	if pkg := m.Package(class.PackageID); pkg != nil {
		pkg.ClassIDs = append(pkg.ClassIDs, class.ID)
	}
	return previous, true
}

// Class retrieves a class by id
func (m *Model) Class(id string) *Class {
	if id == "" {
		return nil
	}
	if idx, ok := m.classMap[id]; ok && idx < len(m.classes) {
		return m.classes[idx]
	}
	return nil
}

// ClassByName retrieves the class last registered under the name
func (m *Model) ClassByName(name string) *Class {
	if id, ok := m.classNames[name]; ok {
		return m.Class(id)
	}
	return nil
}

// Classes returns classes in registration order
func (m *Model) Classes() []*Class {
	return append([]*Class(nil), m.classes...)
}

// AddAssociation registers an association; it returns false if the id is taken
func (m *Model) AddAssociation(association *Association) bool {
	if _, ok := m.assocMap[association.ID]; ok {
		return false
	}
	m.associations = append(m.associations, association)
	m.assocMap[association.ID] = len(m.associations) - 1
	return true
}

// Association retrieves an association by id
func (m *Model) Association(id string) *Association {
	if idx, ok := m.assocMap[id]; ok && idx < len(m.associations) {
		return m.associations[idx]
	}
	return nil
}

// HasAssociation returns true if the id is registered
func (m *Model) HasAssociation(id string) bool {
	_, ok := m.assocMap[id]
	return ok
}

// Associations returns associations in registration order
func (m *Model) Associations() []*Association {
	return append([]*Association(nil), m.associations...)
}

// AddGeneralization records sub as subtype of super and super as supertype of sub in
// one step. It returns false if either class is unknown, the edge exists, or sub == super.
func (m *Model) AddGeneralization(subID, superID string) bool {
	if subID == superID {
		return false
	}
	sub, super := m.Class(subID), m.Class(superID)
	if sub == nil || super == nil {
		return false
	}
	if slices.Contains(sub.supertypes, superID) {
		return false
	}
	sub.supertypes = append(sub.supertypes, superID)
	super.subtypes = append(super.subtypes, subID)
	return true
}

// ResolveType resolves the type of a property by id, falling back to the name index
func (m *Model) ResolveType(property *Property) *Class {
	if class := m.Class(property.TypeID); class != nil {
		return class
	}
	if property.TypeName == "" {
		return nil
	}
	return m.ClassByName(property.TypeName)
}

// PackagePath returns the names from the root package down to the package
func (m *Model) PackagePath(id string) string {
	var names []string
	seen := map[string]bool{}
	for pkg := m.Package(id); pkg != nil && !seen[pkg.ID]; pkg = m.Package(pkg.ParentID) {
		seen[pkg.ID] = true
		names = append(names, pkg.Name)
	}
	slices.Reverse(names)
	return strings.Join(names, PathSeparator)
}

// ClassPath returns the qualified name of a class
func (m *Model) ClassPath(class *Class) string {
	if prefix := m.PackagePath(class.PackageID); prefix != "" {
		return prefix + PathSeparator + class.Name
	}
	return class.Name
}

// PropertyPath returns the qualified name of a property
func (m *Model) PropertyPath(property *Property) string {
	if class := m.Class(property.ClassID); class != nil {
		return m.ClassPath(class) + PathSeparator + property.Name
	}
	return property.Name
}

// Path returns the qualified name of any entity
func (m *Model) Path(entity Entity) string {
	switch actual := entity.(type) {
	case *Package:
		return m.PackagePath(actual.ID)
	case *Class:
		return m.ClassPath(actual)
	case *Property:
		return m.PropertyPath(actual)
	case *Operation:
		if class := m.Class(actual.ClassID); class != nil {
			return m.ClassPath(class) + PathSeparator + actual.Name
		}
	}
	return entity.Base().Name
}

// InPackageTree returns true if the class is inside one of the packages or their descendants
func (m *Model) InPackageTree(class *Class, packageIDs map[string]bool) bool {
	seen := map[string]bool{}
	for pkg := m.Package(class.PackageID); pkg != nil && !seen[pkg.ID]; pkg = m.Package(pkg.ParentID) {
		if packageIDs[pkg.ID] {
			return true
		}
		seen[pkg.ID] = true
	}
	return false
}
