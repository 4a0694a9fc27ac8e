package domain

// SourceLocation is where a report was triggered.
// Line and column only exist as part of a location, never on their own.
type SourceLocation struct {
	file      string
	line      uint32
	column    uint32
	hasLine   bool
	hasColumn bool
}

// NewSourceLocation returns a location with no line or column.
func NewSourceLocation(file string) SourceLocation {
	return SourceLocation{file: file}
}

func (l SourceLocation) File() string { return l.file }

func (l SourceLocation) Line() (uint32, bool) { return l.line, l.hasLine }

func (l SourceLocation) Column() (uint32, bool) { return l.column, l.hasColumn }

// WithLine returns a copy of l with the line set.
func (l SourceLocation) WithLine(line uint32) SourceLocation {
	l.line, l.hasLine = line, true
	return l
}

// WithColumn returns a copy of l with the column set.
func (l SourceLocation) WithColumn(column uint32) SourceLocation {
	l.column, l.hasColumn = column, true
	return l
}
