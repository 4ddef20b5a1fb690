package graph

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	first, err := Hash([]byte("Road"))
	require.NoError(t, err)
	second, err := Hash([]byte("Road"))
	require.NoError(t, err)
	other, err := Hash([]byte("Way"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestRelationshipID(t *testing.T) {
	id := RelationshipID("Association", "10", "20", "", "route")
	assert.True(t, strings.HasPrefix(id, "rel-"))
	assert.Equal(t, id, RelationshipID("Association", "10", "20", "", "route"))
	assert.NotEqual(t, id, RelationshipID("Association", "20", "10", "", "route"))
	assert.NotEqual(t, RelationshipID("Association", "1", "02", "", ""), RelationshipID("Association", "10", "2", "", ""))
}

func TestParameterID(t *testing.T) {
	id := ParameterID("o1", "unit", 0)
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
	assert.Equal(t, id, ParameterID("o1", "unit", 0))
	assert.NotEqual(t, id, ParameterID("o1", "unit", 1))
	assert.NotEqual(t, id, ParameterID("o2", "unit", 0))
}
