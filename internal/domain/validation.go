package domain

import (
	"fmt"
	"strings"
)

// FieldError represents a single field's validation error.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"message"`
}

func (e FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Msg) }

// FieldErrors joins a list of field errors into one error, or nil if empty.
func FieldErrors(errs []FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fe.Error())
	}
	return fmt.Errorf("invalid report: %s", strings.Join(parts, "; "))
}

// ValidateInput checks a report document before it is turned into a body.
// Only presence and ranges are checked: empty id, message and source_file are valid.
func ValidateInput(in *ReportInput) []FieldError {
	var errs []FieldError

	// Required keys (may be empty, must not be missing)
	if in.ID == nil {
		errs = append(errs, FieldError{"id", "required"})
	}
	if in.AnticipatedRemoval == nil {
		errs = append(errs, FieldError{"anticipated_removal", "required"})
	} else if _, err := ParseRemoval(*in.AnticipatedRemoval); err != nil {
		errs = append(errs, FieldError{"anticipated_removal", "must be RFC 3339 or YYYY-MM-DD"})
	}
	if in.Message == nil {
		errs = append(errs, FieldError{"message", "required"})
	}

	// Position only makes sense with a source file
	hasFile := in.SourceFile != nil
	if fe := positionError("line_number", in.LineNumber, hasFile); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := positionError("column_number", in.ColumnNumber, hasFile); fe != nil {
		errs = append(errs, *fe)
	}

	return errs
}
