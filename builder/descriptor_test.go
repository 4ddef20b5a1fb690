package builder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/modelgraph/diag"
	"github.com/viant/modelgraph/graph"
	"github.com/viant/modelgraph/source"
	"testing"
)

func TestCleanNotes(t *testing.T) {
	tests := []struct {
		description string
		notes       string
		expect      string
	}{
		{description: "blank", notes: "  \r\n ", expect: ""},
		{description: "markup", notes: "<b>Road</b> &amp; <i>path</i>", expect: "Road & path"},
		{description: "comment block", notes: "/*\n * line one\r\n * line two\n */", expect: "line one\nline two"},
		{description: "line comment", notes: "// a road", expect: "a road"},
		{description: "plain", notes: "A road.", expect: "A road."},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, cleanNotes(tc.notes))
		})
	}
}

func descriptorDocument() *source.Document {
	road := newClass("10", "Road", source.KindClass, "featureType",
		&source.Attribute{ID: "100", Name: "width"},
		&source.Attribute{ID: "101", Name: "surface", TypeName: "SurfaceKind"},
		&source.Attribute{ID: "102", Name: "label", Notes: "own <b>label</b>"},
	)
	road.Tags = []source.Tag{{Name: "globalIdentifier", Value: "urn:road"}}
	roadConcept := newClass("11", "road", source.KindClass, "FeatureConcept")
	roadConcept.Tags = []source.Tag{{Name: "definition", Value: "A way for vehicles."}}
	widthConcept := newClass("12", "Width", source.KindClass, "AttributeConcept")
	widthConcept.Notes = "Extent across the road."
	surfaceConcept := newClass("13", "SurfaceKind", source.KindClass, "ValueConcept")
	surfaceConcept.Alias = "Surface"
	aliased := newClass("14", "Street", source.KindClass, "")
	aliased.Alias = " Rue "
	return &source.Document{
		Packages: []*source.PackageNode{
			newPackage("1", "P", road, roadConcept, widthConcept, surfaceConcept, aliased,
				newClass("15", "SurfaceKind", source.KindEnumeration, "")),
			newPackage("2", "Q", newClass("20", "Road", source.KindClass, "featureType"), newClass("21", "Road", source.KindClass, "featureType")),
		},
		Relationships: []*source.Relationship{
			relation("d1", source.Dependency, "10", "11"),
			relation("g1", source.Generalization, "20", "21"),
		},
	}
}

func TestModel_Descriptor(t *testing.T) {
	document := descriptorDocument()
	document.Packages[1].Elements[1].Notes = "Base road."
	model := buildModel(t, document)
	road := model.Class("10")

	tests := []struct {
		description string
		entity      graph.Entity
		kind        graph.Descriptor
		expect      string
	}{
		{description: "tagged value", entity: road, kind: graph.GlobalIdentifier, expect: "urn:road"},
		{description: "native alias", entity: model.Class("14"), kind: graph.Alias, expect: "Rue"},
		{description: "dependency concept", entity: road, kind: graph.Documentation, expect: "A way for vehicles."},
		{description: "same name supertype", entity: model.Class("20"), kind: graph.Documentation, expect: "Base road."},
		{description: "attribute concept", entity: model.Property("10", "width"), kind: graph.Documentation, expect: "Extent across the road."},
		{description: "value concept by type name", entity: model.Property("10", "surface"), kind: graph.Alias, expect: "Surface"},
		{description: "native notes", entity: model.Property("10", "label"), kind: graph.Documentation, expect: "own label"},
		{description: "exhausted", entity: model.Class("14"), kind: graph.Documentation, expect: ""},
		{description: "package", entity: model.Package("1"), kind: graph.Documentation, expect: ""},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			require.NotNil(t, tc.entity)
			assert.Equal(t, tc.expect, model.Descriptor(tc.entity, tc.kind))
		})
	}
	assert.Equal(t, "A way for vehicles.", model.Documentation(road))
	assert.Equal(t, "Rue", model.Alias(model.Class("14")))
	assert.Equal(t, "urn:road", model.GlobalIdentifier(road))
	assert.Equal(t, "", model.Descriptor(nil, graph.Documentation))
}

func TestModel_DescriptorIdempotent(t *testing.T) {
	registry := prometheus.NewRegistry()
	model := buildModel(t, descriptorDocument(), WithRegisterer(registry))
	road := model.Class("10")
	resolutions := func() float64 {
		return counterValue(t, registry, "modelgraph_descriptor_resolutions_total", map[string]string{"descriptor": "documentation"})
	}

	first := model.Documentation(road)
	computed := resolutions()
	assert.Equal(t, float64(2), computed, "the class and the concept it falls back to")
	second := model.Documentation(road)
	assert.Equal(t, first, second)
	assert.Equal(t, computed, resolutions(), "the fallback chain runs once")

	inherited := model.Diagnostics().Filter(diag.DescriptorInherited)
	require.Len(t, inherited, 1)
	assert.Equal(t, []string{"documentation", "P::Road", "P::road"}, inherited[0].Params)

	value, ok := road.Descriptors().Cached(graph.Documentation)
	assert.True(t, ok)
	assert.Equal(t, first, value)

	empty := model.Class("14")
	assert.Equal(t, "", model.Documentation(empty))
	before := resolutions()
	assert.Equal(t, "", model.Documentation(empty))
	assert.Equal(t, before, resolutions(), "empty values are cached too")
}

func TestModel_DescriptorCycle(t *testing.T) {
	shared := newClass("32", "Road", source.KindClass, "featureType")
	shared.Notes = "Shared road."
	document := &source.Document{
		Packages: []*source.PackageNode{
			newPackage("1", "Q", newClass("30", "Road", source.KindClass, "featureType")),
			newPackage("2", "R", newClass("31", "Road", source.KindClass, "featureType")),
			newPackage("3", "S", shared),
		},
		Relationships: []*source.Relationship{
			relation("g1", source.Generalization, "30", "31"),
			relation("g2", source.Generalization, "30", "32"),
			relation("g3", source.Generalization, "31", "30"),
		},
	}
	tests := []struct {
		description string
		order       []string
	}{
		{description: "subtype first", order: []string{"30", "31"}},
		{description: "cyclic supertype first", order: []string{"31", "30"}},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			model := buildModel(t, document)
			for _, id := range tc.order {
				assert.Equal(t, "Shared road.", model.Documentation(model.Class(id)), id)
			}
			for _, id := range tc.order {
				value, ok := model.Class(id).Descriptors().Cached(graph.Documentation)
				assert.True(t, ok, id)
				assert.Equal(t, "Shared road.", value, id)
			}
			inherited := model.Diagnostics().Filter(diag.DescriptorInherited)
			assert.Len(t, inherited, 2, "one per class")
		})
	}
}
