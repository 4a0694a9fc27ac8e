package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// RemovalDateLayout is the calendar-date form of anticipatedRemoval in payloads.
const RemovalDateLayout = "2006-01-02"

type reportEnvelope struct {
	Type ReportType `json:"type"`
	URL  string     `json:"url"`
	Body any        `json:"body"`
}

type deprecationPayload struct {
	ID                 string  `json:"id"`
	AnticipatedRemoval string  `json:"anticipatedRemoval"`
	Message            string  `json:"message"`
	SourceFile         *string `json:"sourceFile,omitempty"`
	LineNumber         *uint32 `json:"lineNumber,omitempty"`
	ColumnNumber       *uint32 `json:"columnNumber,omitempty"`
}

// FormatRemovalDate truncates t to whole milliseconds since the epoch and
// returns its UTC calendar date. Time of day is dropped.
func FormatRemovalDate(t time.Time) string {
	return time.UnixMilli(t.UnixMilli()).UTC().Format(RemovalDateLayout)
}

// ReportFormData renders the body as
//
//	{"type":"deprecation","url":"","body":{"id":…,"anticipatedRemoval":"YYYY-MM-DD","message":…}}
//
// sourceFile, lineNumber and columnNumber are added to body only when the
// source file is known; an unset line or column is written as 0.
// url is left empty for the sender to fill in.
func (b *DeprecationReportBody) ReportFormData() []byte {
	p := deprecationPayload{
		ID:                 b.id,
		AnticipatedRemoval: FormatRemovalDate(b.anticipatedRemoval),
		Message:            b.message,
	}
	if b.location != nil {
		file := b.location.file
		line, _ := b.location.Line()
		column, _ := b.location.Column()
		p.SourceFile, p.LineNumber, p.ColumnNumber = &file, &line, &column
	}
	return encodeEnvelope(reportEnvelope{Type: b.Type(), Body: p})
}

// encodeEnvelope cannot fail for the envelope types in this package: they hold
// only strings, integers and pointers to them. Invalid UTF-8 in strings is
// replaced with U+FFFD by encoding/json.
func encodeEnvelope(env reportEnvelope) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(env)
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}
