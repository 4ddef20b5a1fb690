package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// Unbounded is the upper bound of "*"
const Unbounded = -1

// Multiplicity is a [Min..Max] cardinality range
type Multiplicity struct {
	Min int
	Max int
}

// DefaultMultiplicity is used when the source does not state one
var DefaultMultiplicity = Multiplicity{Min: 1, Max: 1}

// ParseMultiplicity parses UML cardinality text: "1", "0..1", "1..*", "*", "0..n".
// Blank text yields DefaultMultiplicity.
func ParseMultiplicity(text string) (Multiplicity, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return DefaultMultiplicity, nil
	}
	lower, upper, isRange := strings.Cut(text, "..")
	if !isRange {
		if isUnbounded(text) {
			return Multiplicity{Min: 0, Max: Unbounded}, nil
		}
		value, err := parseBound(text)
		if err != nil {
			return DefaultMultiplicity, err
		}
		return Multiplicity{Min: value, Max: value}, nil
	}
	minValue, err := parseBound(lower)
	if err != nil {
		return DefaultMultiplicity, err
	}
	result := Multiplicity{Min: minValue, Max: Unbounded}
	if !isUnbounded(upper) {
		if result.Max, err = parseBound(upper); err != nil {
			return DefaultMultiplicity, err
		}
		if result.Max < result.Min {
			return DefaultMultiplicity, fmt.Errorf("invalid multiplicity %q: upper bound below lower bound", text)
		}
	}
	return result, nil
}

func isUnbounded(text string) bool {
	text = strings.TrimSpace(text)
	return text == "*" || text == "n" || text == "N"
}

func parseBound(text string) (int, error) {
	text = strings.TrimSpace(text)
	if !isDigits(text) {
		return 0, fmt.Errorf("invalid multiplicity bound %q", text)
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid multiplicity bound %q: %w", text, err)
	}
	return value, nil
}

// IsMany returns true if more than one value is allowed
func (m Multiplicity) IsMany() bool {
	return m.Max == Unbounded || m.Max > 1
}

func (m Multiplicity) String() string {
	upper := "*"
	if m.Max != Unbounded {
		upper = strconv.Itoa(m.Max)
	}
	if m.Min == m.Max {
		return upper
	}
	return strconv.Itoa(m.Min) + ".." + upper
}

// MarshalText renders the UML form
func (m Multiplicity) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
