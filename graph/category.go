package graph

import "strings"

// Category classifies a class by its modelling role
type Category int

const (
	Unknown Category = iota
	Feature
	Object
	Datatype
	Mixin
	Union
	Enumeration
	CodeList
	BasicType
	FeatureConcept
	AttributeConcept
	RoleConcept
	ValueConcept
)

var categoryNames = [...]string{
	Unknown:          "Unknown",
	Feature:          "Feature",
	Object:           "Object",
	Datatype:         "Datatype",
	Mixin:            "Mixin",
	Union:            "Union",
	Enumeration:      "Enumeration",
	CodeList:         "CodeList",
	BasicType:        "BasicType",
	FeatureConcept:   "FeatureConcept",
	AttributeConcept: "AttributeConcept",
	RoleConcept:      "RoleConcept",
	ValueConcept:     "ValueConcept",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[Unknown]
	}
	return categoryNames[c]
}

// MarshalText renders the category by name
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory resolves a category name case-insensitively, returning Unknown when not recognized
func ParseCategory(name string) Category {
	for i, candidate := range categoryNames {
		if strings.EqualFold(candidate, name) {
			return Category(i)
		}
	}
	return Unknown
}

// IsConcept reports whether the category denotes a concept proxy class
func (c Category) IsConcept() bool {
	switch c {
	case FeatureConcept, AttributeConcept, RoleConcept, ValueConcept:
		return true
	}
	return false
}

// IsEnumerated reports whether the category is Enumeration or CodeList
func (c Category) IsEnumerated() bool {
	return c == Enumeration || c == CodeList
}
