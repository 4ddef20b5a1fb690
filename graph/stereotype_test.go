package graph

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNormalizeStereotype(t *testing.T) {
	tests := []struct {
		description string
		raw         string
		expect      string
	}{
		{description: "canonical", raw: "featureType", expect: StereotypeFeatureType},
		{description: "guillemets", raw: "«FeatureType»", expect: StereotypeFeatureType},
		{description: "angle brackets", raw: "<<dataType>>", expect: StereotypeDataType},
		{description: "separators", raw: " Code_List ", expect: StereotypeCodeList},
		{description: "alias", raw: "enum", expect: StereotypeEnumeration},
		{description: "mixin alias", raw: "Mixin", expect: StereotypeInterface},
		{description: "unrecognized", raw: "My-Custom", expect: "mycustom"},
		{description: "blank", raw: "  ", expect: ""},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, NormalizeStereotype(tc.raw))
		})
	}
}

func TestStereotypes_CategoryOf(t *testing.T) {
	tests := []struct {
		description string
		raw         string
		expect      Category
		found       bool
	}{
		{description: "feature", raw: "featureType", expect: Feature, found: true},
		{description: "codelist", raw: "codeList", expect: CodeList, found: true},
		{description: "concept", raw: "valueConcept", expect: ValueConcept, found: true},
		{description: "lowest category wins", raw: "dataType, featureType", expect: Feature, found: true},
		{description: "non class stereotype", raw: "voidable", expect: Unknown, found: false},
		{description: "empty", raw: "", expect: Unknown, found: false},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			actual, found := ParseStereotypes(tc.raw).CategoryOf()
			assert.Equal(t, tc.expect, actual)
			assert.Equal(t, tc.found, found)
		})
	}
}

func TestParseStereotypes(t *testing.T) {
	stereotypes := ParseStereotypes("FeatureType, voidable,,")
	assert.Equal(t, []string{StereotypeFeatureType, StereotypeVoidable}, stereotypes.Names())
	assert.True(t, stereotypes.Has("feature type"))
	assert.False(t, stereotypes.Has("union"))
}

func TestTaggedValues_Get(t *testing.T) {
	tags := TaggedValues{}
	tags.Add("definition", " ")
	tags.Add("definition", "A road")
	tags.Add("Alias", "Strasse")
	tags.Add("ALIAS", "Rue")

	assert.Equal(t, "A road", tags.Get("definition"))
	assert.Equal(t, "Rue", tags.Get("alias"))
	assert.Equal(t, "Strasse", tags.Get("Alias"))
	assert.Equal(t, "", tags.Get("missing"))

	element := &Element{}
	assert.Equal(t, "", element.Tag("definition"))
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "Feature", Feature.String())
	assert.Equal(t, "Unknown", Category(99).String())
	assert.Equal(t, CodeList, ParseCategory("codelist"))
	assert.Equal(t, Unknown, ParseCategory("nothing"))
	assert.True(t, RoleConcept.IsConcept())
	assert.False(t, Feature.IsConcept())
	assert.True(t, CodeList.IsEnumerated())
	assert.False(t, Union.IsEnumerated())
}
