package domain

import (
	"fmt"
	"math"
	"time"

	"fortio.org/safecast"
)

// ReportInput describes a deprecation report as a document (YAML or JSON).
// Pointer fields distinguish a missing key from an empty value.
type ReportInput struct {
	ID                 *string `yaml:"id" json:"id"`
	AnticipatedRemoval *string `yaml:"anticipated_removal" json:"anticipated_removal"`
	Message            *string `yaml:"message" json:"message"`
	SourceFile         *string `yaml:"source_file,omitempty" json:"source_file,omitempty"`
	LineNumber         *int64  `yaml:"line_number,omitempty" json:"line_number,omitempty"`
	ColumnNumber       *int64  `yaml:"column_number,omitempty" json:"column_number,omitempty"`
}

// Accepted layouts for anticipated_removal, tried in order.
var removalLayouts = []string{time.RFC3339Nano, RemovalDateLayout}

// ParseRemoval parses an RFC 3339 timestamp or a bare YYYY-MM-DD date (UTC midnight).
func ParseRemoval(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range removalLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// Build converts the document into a body. All field problems are collected
// and returned together; the body is nil whenever errs is non-empty.
func (in ReportInput) Build() (*DeprecationReportBody, []FieldError) {
	errs := ValidateInput(&in)
	if len(errs) > 0 {
		return nil, errs
	}
	removal, _ := ParseRemoval(*in.AnticipatedRemoval)
	b := NewDeprecationReportBody(*in.ID, removal, *in.Message, in.SourceFile)
	if in.LineNumber != nil {
		line, _ := safecast.Conv[uint32](*in.LineNumber)
		b = b.WithLineNumber(line)
	}
	if in.ColumnNumber != nil {
		column, _ := safecast.Conv[uint32](*in.ColumnNumber)
		b = b.WithColumnNumber(column)
	}
	return b, nil
}

func positionError(field string, v *int64, hasFile bool) *FieldError {
	if v == nil {
		return nil
	}
	if !hasFile {
		return &FieldError{field, "requires source_file"}
	}
	if _, err := safecast.Conv[uint32](*v); err != nil {
		return &FieldError{field, fmt.Sprintf("must be between 0 and %d", uint32(math.MaxUint32))}
	}
	return nil
}
