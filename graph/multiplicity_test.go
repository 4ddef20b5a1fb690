package graph

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseMultiplicity(t *testing.T) {
	tests := []struct {
		description string
		text        string
		expect      Multiplicity
		hasError    bool
	}{
		{description: "blank", text: " ", expect: DefaultMultiplicity},
		{description: "exact", text: "1", expect: Multiplicity{Min: 1, Max: 1}},
		{description: "optional", text: "0..1", expect: Multiplicity{Min: 0, Max: 1}},
		{description: "many", text: "1..*", expect: Multiplicity{Min: 1, Max: Unbounded}},
		{description: "star", text: "*", expect: Multiplicity{Min: 0, Max: Unbounded}},
		{description: "n upper bound", text: "0..n", expect: Multiplicity{Min: 0, Max: Unbounded}},
		{description: "spaces", text: "2 .. 5", expect: Multiplicity{Min: 2, Max: 5}},
		{description: "inverted", text: "3..1", expect: DefaultMultiplicity, hasError: true},
		{description: "text", text: "many", expect: DefaultMultiplicity, hasError: true},
		{description: "negative", text: "-1..2", expect: DefaultMultiplicity, hasError: true},
		{description: "plus sign", text: "+1..2", expect: DefaultMultiplicity, hasError: true},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := ParseMultiplicity(tc.text)
			assert.Equal(t, tc.hasError, err != nil)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestMultiplicity_String(t *testing.T) {
	assert.Equal(t, "1", Multiplicity{Min: 1, Max: 1}.String())
	assert.Equal(t, "0..1", Multiplicity{Min: 0, Max: 1}.String())
	assert.Equal(t, "1..*", Multiplicity{Min: 1, Max: Unbounded}.String())
	assert.True(t, Multiplicity{Min: 0, Max: Unbounded}.IsMany())
	assert.True(t, Multiplicity{Min: 0, Max: 2}.IsMany())
	assert.False(t, DefaultMultiplicity.IsMany())
}
