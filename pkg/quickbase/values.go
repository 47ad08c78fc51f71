package quickbase

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// Layouts Quickbase accepts for date and date/time fields.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = time.RFC3339
)

// DateValue parses a human-written date ("March 3, 2024", "3/3/2024",
// "2024-03-03") into a date field value.
func DateValue(s string) (FieldValue, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return FieldValue{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Value(t.Format(DateLayout)), nil
}

// DateTimeValue parses a human-written timestamp into a date/time field
// value in UTC. Timestamps without a zone are read as UTC.
func DateTimeValue(s string) (FieldValue, error) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return FieldValue{}, fmt.Errorf("invalid date/time %q: %w", s, err)
	}
	return Value(t.UTC().Format(DateTimeLayout)), nil
}
