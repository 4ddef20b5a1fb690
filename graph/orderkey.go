package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// OrderKey is a structured sequence number such as 1.2.3; keys compare
// lexicographically by component.
type OrderKey []int

// NoSequence marks a property that takes no part in ordering. Parsing and
// synthesis never produce it.
var NoSequence = OrderKey{}

// ParseOrderKey parses a dot separated list of non-negative integers
func ParseOrderKey(text string) (OrderKey, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty sequence number")
	}
	parts := strings.Split(text, ".")
	result := make(OrderKey, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if !isDigits(part) {
			return nil, fmt.Errorf("invalid sequence number %q: component %q is not a numeral", text, part)
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid sequence number %q: %w", text, err)
		}
		result = append(result, value)
	}
	return result, nil
}

func isDigits(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// IsNoSequence returns true for the NoSequence sentinel
func (k OrderKey) IsNoSequence() bool {
	return k != nil && len(k) == 0
}

// Compare returns -1, 0 or 1; a key that is a prefix of another sorts first
func (k OrderKey) Compare(other OrderKey) int {
	for i := 0; i < len(k) && i < len(other); i++ {
		switch {
		case k[i] < other[i]:
			return -1
		case k[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(k) < len(other):
		return -1
	case len(k) > len(other):
		return 1
	}
	return 0
}

// Equal returns true if both keys have identical components
func (k OrderKey) Equal(other OrderKey) bool {
	return len(k) == len(other) && k.Compare(other) == 0
}

func (k OrderKey) String() string {
	if k.IsNoSequence() {
		return "-"
	}
	builder := strings.Builder{}
	for i, value := range k {
		if i > 0 {
			builder.WriteString(".")
		}
		builder.WriteString(strconv.Itoa(value))
	}
	return builder.String()
}

// MarshalText renders the dotted form
func (k OrderKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
