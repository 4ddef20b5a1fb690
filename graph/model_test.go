package graph

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	model := NewModel("test")
	require.True(t, model.AddPackage(&Package{Element: Element{ID: "p1", Name: "Base"}}))
	require.True(t, model.AddPackage(&Package{Element: Element{ID: "p2", Name: "Transport"}, ParentID: "p1"}))
	for _, class := range []*Class{
		{Element: Element{ID: "c1", Name: "Road"}, PackageID: "p2"},
		{Element: Element{ID: "c2", Name: "Way"}, PackageID: "p2"},
		{Element: Element{ID: "c3", Name: "Thing"}, PackageID: "p1"},
	} {
		_, ok := model.AddClass(class)
		require.True(t, ok)
	}
	return model
}

func TestModel_Packages(t *testing.T) {
	model := newTestModel(t)
	assert.False(t, model.AddPackage(&Package{Element: Element{ID: "p1", Name: "Again"}}))
	require.Len(t, model.RootPackages(), 1)
	assert.Equal(t, "p1", model.RootPackages()[0].ID)
	assert.True(t, model.RootPackages()[0].IsTopLevel())
	assert.Equal(t, []string{"p2"}, model.Package("p1").ChildIDs)
	assert.Equal(t, []string{"c1", "c2"}, model.Package("p2").ClassIDs)
	assert.Nil(t, model.Package("missing"))
	assert.Len(t, model.Packages(), 2)
}

func TestModel_AddClass(t *testing.T) {
	model := newTestModel(t)
	_, ok := model.AddClass(&Class{Element: Element{ID: "c1", Name: "Other"}})
	assert.False(t, ok)

	previous, ok := model.AddClass(&Class{Element: Element{ID: "c9", Name: "Road"}, PackageID: "p1"})
	assert.True(t, ok)
	assert.Equal(t, "c1", previous)
	assert.Equal(t, "c9", model.ClassByName("Road").ID)
	assert.Equal(t, "c1", model.Class("c1").ID)
	assert.Nil(t, model.Class(""))
	assert.Nil(t, model.ClassByName("missing"))
}

func TestModel_AddGeneralization(t *testing.T) {
	model := newTestModel(t)
	tests := []struct {
		description string
		sub         string
		super       string
		expect      bool
	}{
		{description: "new edge", sub: "c1", super: "c2", expect: true},
		{description: "duplicate edge", sub: "c1", super: "c2", expect: false},
		{description: "self", sub: "c1", super: "c1", expect: false},
		{description: "unknown supertype", sub: "c1", super: "c7", expect: false},
		{description: "second supertype", sub: "c1", super: "c3", expect: true},
		{description: "cycle back", sub: "c2", super: "c1", expect: true},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, model.AddGeneralization(tc.sub, tc.super))
		})
	}
	assert.Equal(t, []string{"c2", "c3"}, model.Class("c1").Supertypes())
	for _, class := range model.Classes() {
		for _, id := range class.Supertypes() {
			assert.True(t, model.Class(id).HasSubtype(class.ID))
		}
		for _, id := range class.Subtypes() {
			assert.True(t, model.Class(id).HasSupertype(class.ID))
		}
	}
}

func TestModel_Path(t *testing.T) {
	model := newTestModel(t)
	road := model.Class("c1")
	width := &Property{Element: Element{ID: "a1", Name: "width"}, ClassID: "c1"}
	operation := &Operation{Element: Element{ID: "o1", Name: "length"}, ClassID: "c1"}

	assert.Equal(t, "Base::Transport", model.Path(model.Package("p2")))
	assert.Equal(t, "Base::Transport::Road", model.Path(road))
	assert.Equal(t, "Base::Transport::Road::width", model.Path(width))
	assert.Equal(t, "Base::Transport::Road::length", model.Path(operation))
	assert.Equal(t, "Loose", model.ClassPath(&Class{Element: Element{Name: "Loose"}}))
	assert.True(t, model.InPackageTree(road, map[string]bool{"p1": true}))
	assert.False(t, model.InPackageTree(model.Class("c3"), map[string]bool{"p2": true}))
}

func TestModel_ResolveType(t *testing.T) {
	model := newTestModel(t)
	assert.Equal(t, "c2", model.ResolveType(&Property{TypeID: "c2", TypeName: "Road"}).ID)
	assert.Equal(t, "c1", model.ResolveType(&Property{TypeID: "missing", TypeName: "Road"}).ID)
	assert.Nil(t, model.ResolveType(&Property{TypeName: "Integer"}))
	assert.Nil(t, model.ResolveType(&Property{}))
}

func TestModel_Associations(t *testing.T) {
	model := newTestModel(t)
	assert.True(t, model.AddAssociation(&Association{Element: Element{ID: "r1"}}))
	assert.False(t, model.AddAssociation(&Association{Element: Element{ID: "r1"}}))
	assert.True(t, model.HasAssociation("r1"))
	assert.NotNil(t, model.Association("r1"))
	assert.Nil(t, model.Association("r2"))
	assert.Len(t, model.Associations(), 1)
}
