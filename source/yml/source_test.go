package yml

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/modelgraph/source"
	"os"
	"path/filepath"
	"testing"
)

const document = `
name: Transport
packages:
  - id: "1"
    name: Transport
    stereotypes: applicationSchema
    tags:
      - name: version
        value: "1.0"
    elements:
      - id: "10"
        name: Road
        kind: Class
        stereotypes: featureType
        attributes:
          - id: "100"
            name: width
            type: Real
            cardinality: "0..1"
    packages:
      - id: "2"
        name: Codes
        elements:
          - id: "20"
            name: RoadKind
            kind: Enumeration
relationships:
  - id: "500"
    kind: Association
    clientId: "10"
    supplierId: "20"
    supplier:
      role: kind
      navigable: Navigable
constraints:
  - name: positiveWidth
    type: OCL
    text: "inv: width > 0"
    ownerId: "10"
`

func TestParse(t *testing.T) {
	src, err := Parse([]byte(document))
	require.NoError(t, err)
	assert.Equal(t, "Transport", src.Name)

	ctx := context.Background()
	roots, err := src.Roots(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "applicationSchema", roots[0].Stereotypes)
	assert.Equal(t, []source.Tag{{Name: "version", Value: "1.0"}}, roots[0].Tags)

	elements, _ := src.Elements(ctx, "1")
	require.Len(t, elements, 1)
	require.Len(t, elements[0].Attributes, 1)
	assert.Equal(t, "0..1", elements[0].Attributes[0].Cardinality)

	children, _ := src.Children(ctx, "1")
	require.Len(t, children, 1)
	assert.Equal(t, "Codes", children[0].Name)

	relationships, _ := src.Relationships(ctx, "20")
	require.Len(t, relationships, 1)
	assert.Equal(t, "kind", relationships[0].Supplier.Role)

	constraints, _ := src.Constraints(ctx, "10")
	require.Len(t, constraints, 1)
	assert.Equal(t, "positiveWidth", constraints[0].Name)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		description string
		data        string
	}{
		{description: "not yaml", data: "packages: [\n"},
		{description: "no packages", data: "name: empty\n"},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	location := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(location, []byte(document), 0644))

	src, err := Load(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, location, src.URL)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
