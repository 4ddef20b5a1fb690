package graph

import (
	"sort"
	"strings"
)

// Canonical stereotype names.
const (
	StereotypeApplicationSchema = "applicationschema"
	StereotypeSchema            = "schema"
	StereotypeFeatureType       = "featuretype"
	StereotypeType              = "type"
	StereotypeDataType          = "datatype"
	StereotypeUnion             = "union"
	StereotypeEnumeration       = "enumeration"
	StereotypeCodeList          = "codelist"
	StereotypeInterface         = "interface"
	StereotypeBasicType         = "basictype"
	StereotypeFeatureConcept    = "featureconcept"
	StereotypeAttributeConcept  = "attributeconcept"
	StereotypeRoleConcept       = "roleconcept"
	StereotypeValueConcept      = "valueconcept"
	StereotypeProperty          = "property"
	StereotypeVoidable          = "voidable"
)

// stereotypeAliases maps spellings found in modelling tools to canonical names; keys are
// lower-cased with blanks, dashes and underscores removed.
var stereotypeAliases = map[string]string{
	"applicationschema": StereotypeApplicationSchema,
	"schema":            StereotypeSchema,
	"featuretype":       StereotypeFeatureType,
	"feature":           StereotypeFeatureType,
	"type":              StereotypeType,
	"objecttype":        StereotypeType,
	"datatype":          StereotypeDataType,
	"union":             StereotypeUnion,
	"enumeration":       StereotypeEnumeration,
	"enum":              StereotypeEnumeration,
	"codelist":          StereotypeCodeList,
	"interface":         StereotypeInterface,
	"mixin":             StereotypeInterface,
	"basictype":         StereotypeBasicType,
	"featureconcept":    StereotypeFeatureConcept,
	"attributeconcept":  StereotypeAttributeConcept,
	"roleconcept":       StereotypeRoleConcept,
	"valueconcept":      StereotypeValueConcept,
	"property":          StereotypeProperty,
	"voidable":          StereotypeVoidable,
}

// stereotypeCategories maps canonical class stereotypes to a category.
var stereotypeCategories = map[string]Category{
	StereotypeFeatureType:      Feature,
	StereotypeType:             Object,
	StereotypeDataType:         Datatype,
	StereotypeUnion:            Union,
	StereotypeEnumeration:      Enumeration,
	StereotypeCodeList:         CodeList,
	StereotypeInterface:        Mixin,
	StereotypeBasicType:        BasicType,
	StereotypeFeatureConcept:   FeatureConcept,
	StereotypeAttributeConcept: AttributeConcept,
	StereotypeRoleConcept:      RoleConcept,
	StereotypeValueConcept:     ValueConcept,
}

var stereotypeReplacer = strings.NewReplacer(" ", "", "-", "", "_", "", "«", "", "»", "", "<<", "", ">>", "")

// NormalizeStereotype maps a raw stereotype to its canonical name. Unrecognized
// stereotypes are returned lower-cased and stripped, never empty unless raw is blank.
func NormalizeStereotype(raw string) string {
	key := strings.ToLower(stereotypeReplacer.Replace(strings.TrimSpace(raw)))
	if canonical, ok := stereotypeAliases[key]; ok {
		return canonical
	}
	return key
}

// Stereotypes is a set of canonical stereotype names
type Stereotypes map[string]bool

// ParseStereotypes splits a comma separated stereotype string into a normalized set
func ParseStereotypes(raw string) Stereotypes {
	result := Stereotypes{}
	for _, item := range strings.Split(raw, ",") {
		if name := NormalizeStereotype(item); name != "" {
			result[name] = true
		}
	}
	return result
}

// Has returns true if the set contains the stereotype in any spelling
func (s Stereotypes) Has(name string) bool {
	return s[NormalizeStereotype(name)]
}

// Names returns sorted stereotype names
func (s Stereotypes) Names() []string {
	result := make([]string, 0, len(s))
	for name := range s {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// CategoryOf returns the category denoted by the stereotypes and whether any
// stereotype was recognized as a class stereotype. When several apply the one
// with the lowest category value wins so the result does not depend on map order.
func (s Stereotypes) CategoryOf() (Category, bool) {
	found := false
	result := Unknown
	for name := range s {
		category, ok := stereotypeCategories[name]
		if !ok {
			continue
		}
		if !found || category < result {
			result = category
		}
		found = true
	}
	return result, found
}

// TaggedValues holds possibly multi-valued tags in source order
type TaggedValues map[string][]string

// Add appends a value to the tag
func (t TaggedValues) Add(name, value string) {
	t[name] = append(t[name], value)
}

// Get returns the first non-blank value of the tag; the name is matched exactly
// first and then case-insensitively.
func (t TaggedValues) Get(name string) string {
	if values, ok := t[name]; ok {
		return firstNonBlank(values)
	}
	keys := make([]string, 0, len(t))
	for key := range t {
		if strings.EqualFold(key, name) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		if value := firstNonBlank(t[key]); value != "" {
			return value
		}
	}
	return ""
}

func firstNonBlank(values []string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
