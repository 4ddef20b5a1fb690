package diag

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"log/slog"
	"testing"
)

func TestDiagnostic_Error(t *testing.T) {
	tests := []struct {
		description string
		diagnostic  Diagnostic
		expect      string
	}{
		{
			description: "template with path",
			diagnostic:  New(Warning, AmbiguousBaseClass, "Schema::Road", "Road", "Feature", "Way"),
			expect:      "[warning 201] class 'Road' has more than one supertype of category 'Feature'; 'Way' is used as base class at Schema::Road",
		},
		{
			description: "no path",
			diagnostic:  New(Info, EndpointOutOfScope, "", "500", "42"),
			expect:      "[info 102] relationship '500' skipped: end '42' is not in the loaded model",
		},
		{
			description: "unknown code",
			diagnostic:  New(Error, Code(999), "", "a", "b"),
			expect:      "[error 999] a, b",
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.diagnostic.Error())
		})
	}
}

func TestList(t *testing.T) {
	var list List
	assert.Equal(t, "no diagnostics", list.Error())
	assert.Equal(t, Debug, list.MaxSeverity())

	list = List{
		New(Info, DescriptorInherited, "", "documentation", "a", "b"),
		New(Warning, DuplicateSequenceNumber, "", "C", "x", "y", "1"),
		New(Info, DescriptorInherited, "", "alias", "a", "b"),
	}
	assert.Equal(t, Warning, list.MaxSeverity())
	assert.Len(t, list.Filter(DescriptorInherited), 2)
	assert.Contains(t, list.Error(), "(and 2 more)")
}

func TestCollector(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	collector := NewCollector(logger)

	collector.Report(New(Warning, IncompatibleSupertype, "P::A", "A", "B", "Datatype", "Feature"))
	collector.Report(New(Info, DuplicateClassName, "", "A", "1", "2"))

	assert.Equal(t, 1, collector.Count(IncompatibleSupertype))
	assert.Len(t, collector.Diagnostics(), 2)
	assert.Contains(t, buffer.String(), "level=WARN")
	assert.Contains(t, buffer.String(), "code=202")
	assert.Contains(t, buffer.String(), "path=P::A")
}
