package domain

import "time"

// DeprecationReportBody describes use of a feature that is scheduled for removal.
// A body is never mutated after construction, so it may be shared freely between
// goroutines. Attaching a line or column produces a new body.
type DeprecationReportBody struct {
	id                 string
	anticipatedRemoval time.Time
	message            string
	location           *SourceLocation
}

// NewDeprecationReportBody builds a body from the facts captured at the trigger site.
// No validation is performed: empty strings and past removal dates are accepted.
// A nil sourceFile means the source is unknown, which is not the same as "".
func NewDeprecationReportBody(id string, anticipatedRemoval time.Time, message string, sourceFile *string) *DeprecationReportBody {
	b := &DeprecationReportBody{
		id:                 id,
		anticipatedRemoval: anticipatedRemoval,
		message:            message,
	}
	if sourceFile != nil {
		loc := NewSourceLocation(*sourceFile)
		b.location = &loc
	}
	return b
}

// NewLocatedDeprecationReportBody builds a body whose source location is already known.
func NewLocatedDeprecationReportBody(id string, anticipatedRemoval time.Time, message string, loc SourceLocation) *DeprecationReportBody {
	return &DeprecationReportBody{
		id:                 id,
		anticipatedRemoval: anticipatedRemoval,
		message:            message,
		location:           &loc,
	}
}

func (b *DeprecationReportBody) reportBody() {}

// Type always returns DeprecationReportType.
func (b *DeprecationReportBody) Type() ReportType { return DeprecationReportType }

func (b *DeprecationReportBody) ID() string { return b.id }

func (b *DeprecationReportBody) AnticipatedRemoval() time.Time { return b.anticipatedRemoval }

func (b *DeprecationReportBody) Message() string { return b.message }

// SourceFile reports false when the source is unknown.
func (b *DeprecationReportBody) SourceFile() (string, bool) {
	if b.location == nil {
		return "", false
	}
	return b.location.file, true
}

func (b *DeprecationReportBody) LineNumber() (uint32, bool) {
	if b.location == nil {
		return 0, false
	}
	return b.location.Line()
}

func (b *DeprecationReportBody) ColumnNumber() (uint32, bool) {
	if b.location == nil {
		return 0, false
	}
	return b.location.Column()
}

// Location returns a copy of the source location, if any.
func (b *DeprecationReportBody) Location() (SourceLocation, bool) {
	if b.location == nil {
		return SourceLocation{}, false
	}
	return *b.location, true
}

// WithLineNumber returns a copy of b with the line set.
// Without a source file there is nothing to attach to and b is returned as is.
func (b *DeprecationReportBody) WithLineNumber(line uint32) *DeprecationReportBody {
	if b.location == nil {
		return b
	}
	return b.withLocation(b.location.WithLine(line))
}

// WithColumnNumber returns a copy of b with the column set.
// Without a source file there is nothing to attach to and b is returned as is.
func (b *DeprecationReportBody) WithColumnNumber(column uint32) *DeprecationReportBody {
	if b.location == nil {
		return b
	}
	return b.withLocation(b.location.WithColumn(column))
}

// WithPosition sets line and column together.
func (b *DeprecationReportBody) WithPosition(line, column uint32) *DeprecationReportBody {
	if b.location == nil {
		return b
	}
	return b.withLocation(b.location.WithLine(line).WithColumn(column))
}

func (b *DeprecationReportBody) withLocation(loc SourceLocation) *DeprecationReportBody {
	cp := *b
	cp.location = &loc
	return &cp
}
