package builder

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/modelgraph/diag"
	"github.com/viant/modelgraph/graph"
	"github.com/viant/modelgraph/source"
	"testing"
)

func sequenced(id, name, sequence string) *source.Attribute {
	result := &source.Attribute{ID: id, Name: name}
	if sequence != "" {
		result.Tags = []source.Tag{{Name: "sequenceNumber", Value: sequence}}
	}
	return result
}

func propertyNames(properties []*graph.Property) []string {
	var result []string
	for _, property := range properties {
		result = append(result, property.Name)
	}
	return result
}

func TestModel_Properties(t *testing.T) {
	document := &source.Document{
		Packages: []*source.PackageNode{
			newPackage("1", "P",
				newClass("10", "Road", source.KindClass, "",
					sequenced("100", "synthetic", ""),
					sequenced("101", "explicit", "1.2"),
					sequenced("102", "invalid", "one"),
					sequenced("103", "reserved", "1000001"),
					sequenced("104", "first", "1"),
					sequenced("105", "signed", "+1"),
				),
				newClass("20", "Lane", source.KindClass, ""),
			),
		},
		Relationships: []*source.Relationship{
			{ID: "500", Kind: source.Association, ClientID: "10", SupplierID: "20", Supplier: source.End{Role: "lanes", Navigable: "Navigable"}},
		},
	}
	model := buildModel(t, document)

	properties := model.Properties("10")
	assert.Equal(t, []string{"first", "explicit", "synthetic", "invalid", "reserved", "signed", "lanes"}, propertyNames(properties))

	keys := map[string]string{}
	for _, property := range properties {
		keys[property.Name] = property.Key.String()
	}
	assert.Equal(t, map[string]string{
		"first":     "1",
		"explicit":  "1.2",
		"synthetic": "1000001",
		"invalid":   "1000002",
		"reserved":  "1000003",
		"signed":    "1000004",
		"lanes":     "2000001",
	}, keys)
	assert.Len(t, model.Diagnostics().Filter(diag.InvalidSequenceNumber), 3)

	again := model.Properties("10")
	assert.Equal(t, properties, again, "keys are assigned once")
	assert.Equal(t, graph.OrderKey{1, 2}, model.Property("10", "explicit").Key)
	assert.Len(t, model.Diagnostics().Filter(diag.InvalidSequenceNumber), 3)
	assert.Empty(t, model.Diagnostics().Filter(diag.DuplicateSequenceNumber))
	assert.Nil(t, model.Properties("missing"))
}

func TestModel_PropertiesCollision(t *testing.T) {
	enumeration := newClass("20", "Kind", source.KindEnumeration, "",
		sequenced("200", "a", "1"),
		sequenced("201", "b", "1"),
	)
	document := &source.Document{
		Packages: []*source.PackageNode{
			newPackage("1", "P",
				newClass("10", "Road", source.KindClass, "",
					sequenced("100", "x", "2"),
					sequenced("101", "y", "1"),
					sequenced("102", "z", "2"),
				),
				enumeration,
			),
		},
	}
	model := buildModel(t, document)

	x := model.Property("10", "x")
	properties := model.Properties("10")
	require.Len(t, properties, 3)
	assert.Equal(t, []string{"y", "x", "z"}, propertyNames(properties), "equal keys keep insertion order")
	assert.Same(t, x, properties[1], "the earlier property is kept")
	assert.Equal(t, graph.OrderKey{2}, x.Key)

	duplicates := model.Diagnostics().Filter(diag.DuplicateSequenceNumber)
	require.Len(t, duplicates, 1)
	assert.Equal(t, []string{"Road", "x", "z", "2"}, duplicates[0].Params)
	assert.Equal(t, diag.Warning, duplicates[0].Severity)

	assert.Len(t, model.Properties("20"), 2)
	assert.Len(t, model.Diagnostics().Filter(diag.DuplicateSequenceNumber), 1, "enumerations collide silently")
}
