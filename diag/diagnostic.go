package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// Severity ranks a diagnostic.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "severity(" + strconv.Itoa(int(s)) + ")"
}

// MarshalText renders the severity by name
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Code is a stable numeric diagnostic identifier.
type Code int

const (
	// MalformedRecord indicates a raw record was missing its id or name and was skipped.
	MalformedRecord Code = 100
	// DuplicateClassName indicates two registered classes share a name; the later one wins the name index.
	DuplicateClassName Code = 101
	// EndpointOutOfScope indicates a relationship end could not be resolved in the loaded scope.
	EndpointOutOfScope Code = 102
	// InvalidMultiplicity indicates a cardinality text could not be parsed; the default was used.
	InvalidMultiplicity Code = 103
	// InvalidSequenceNumber indicates an explicit sequence number was rejected.
	InvalidSequenceNumber Code = 104
	// RepeatedRelationship indicates an id-less relationship identical to an earlier one; it was given a derived id.
	RepeatedRelationship Code = 105

	// DuplicateSequenceNumber indicates two properties of one class share an order key.
	DuplicateSequenceNumber Code = 200
	// AmbiguousBaseClass indicates more than one compatible supertype.
	AmbiguousBaseClass Code = 201
	// IncompatibleSupertype indicates a non-mixin supertype of another category.
	IncompatibleSupertype Code = 202

	// ConstraintDowngraded indicates an OCL constraint without syntax tree was kept as text.
	ConstraintDowngraded Code = 300

	// DescriptorInherited indicates a descriptor was taken from a related class.
	DescriptorInherited Code = 400
)

var templates = map[Code]string{
	MalformedRecord:         "malformed $1 record skipped: $2",
	DuplicateClassName:      "class name '$1' is used by '$2' and '$3'; name lookup resolves to '$3'",
	EndpointOutOfScope:      "relationship '$1' skipped: end '$2' is not in the loaded model",
	InvalidMultiplicity:     "multiplicity '$1' of '$2' is invalid, using '$3'",
	InvalidSequenceNumber:   "sequence number '$1' of '$2' is invalid, a synthetic one is used",
	RepeatedRelationship:    "relationship without id repeats '$1' and is registered as '$2'",
	DuplicateSequenceNumber: "properties '$2' and '$3' of class '$1' have the same sequence number '$4'",
	AmbiguousBaseClass:      "class '$1' has more than one supertype of category '$2'; '$3' is used as base class",
	IncompatibleSupertype:   "supertype '$2' of class '$1' has category '$3' which is not compatible with '$4'",
	ConstraintDowngraded:    "OCL constraint '$1' could not be parsed and is kept as text",
	DescriptorInherited:     "$1 of '$2' is taken from '$3'",
}

// String returns the code as a fixed-width number
func (c Code) String() string {
	return strconv.Itoa(int(c))
}

// Diagnostic is a structured non-fatal message about the model.
type Diagnostic struct {
	Severity Severity `yaml:"severity"`
	Code     Code     `yaml:"code"`
	Params   []string `yaml:"params,omitempty"`
	Path     string   `yaml:"path,omitempty"`
}

// New builds a diagnostic.
func New(severity Severity, code Code, path string, params ...string) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Path: path, Params: params}
}

// Message expands the code template with the diagnostic parameters.
func (d *Diagnostic) Message() string {
	template, ok := templates[d.Code]
	if !ok {
		return strings.Join(d.Params, ", ")
	}
	for i := len(d.Params); i > 0; i-- {
		template = strings.ReplaceAll(template, "$"+strconv.Itoa(i), d.Params[i-1])
	}
	return template
}

// Error formats the diagnostic for display, including severity, code and path.
func (d *Diagnostic) Error() string {
	if d == nil {
		return "diagnostic <nil>"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s %d] %s", d.Severity, d.Code, d.Message()))
	if d.Path != "" {
		b.WriteString(" at ")
		b.WriteString(d.Path)
	}
	return b.String()
}

// List is an error that wraps one or more diagnostics.
type List []Diagnostic

// Error returns a compact summary of the diagnostics.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// Filter returns diagnostics with the given code.
func (l List) Filter(code Code) List {
	var result List
	for _, d := range l {
		if d.Code == code {
			result = append(result, d)
		}
	}
	return result
}

// MaxSeverity returns the highest severity in the list, or Debug for an empty list.
func (l List) MaxSeverity() Severity {
	result := Debug
	for _, d := range l {
		if d.Severity > result {
			result = d.Severity
		}
	}
	return result
}
