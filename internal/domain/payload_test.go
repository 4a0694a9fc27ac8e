package domain_test

import (
	"encoding/json"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/deprecationreport/internal/domain"
)

func TestReportFormData_Located(t *testing.T) {
	b := domain.NewDeprecationReportBody("FeatureX", removal, "FeatureX will be removed", strPtr("https://example.com/app.js")).
		WithLineNumber(42).
		WithColumnNumber(7)

	want := `{"type":"deprecation","url":"","body":{"id":"FeatureX","anticipatedRemoval":"2025-06-01","message":"FeatureX will be removed","sourceFile":"https://example.com/app.js","lineNumber":42,"columnNumber":7}}`
	assert.Equal(t, want, string(b.ReportFormData()))
}

func TestReportFormData_NoSourceFile(t *testing.T) {
	b := domain.NewDeprecationReportBody("FeatureX", removal, "FeatureX will be removed", nil)

	want := `{"type":"deprecation","url":"","body":{"id":"FeatureX","anticipatedRemoval":"2025-06-01","message":"FeatureX will be removed"}}`
	assert.Equal(t, want, string(b.ReportFormData()))
}

func TestReportFormData_OmitsLocationGroup(t *testing.T) {
	cases := []*domain.DeprecationReportBody{
		domain.NewDeprecationReportBody("", removal, "", nil),
		domain.NewDeprecationReportBody("x", time.Unix(0, 0), "y", nil).WithPosition(9, 9),
		domain.NewDeprecationReportBody("日本", removal.AddDate(100, 0, 0), "m", nil).WithLineNumber(1),
	}
	for _, b := range cases {
		body := decodeBody(t, b.ReportFormData())
		assert.NotContains(t, body, "sourceFile")
		assert.NotContains(t, body, "lineNumber")
		assert.NotContains(t, body, "columnNumber")
	}
}

func TestReportFormData_DefaultsPositionToZero(t *testing.T) {
	b := domain.NewDeprecationReportBody("FeatureX", removal, "m", strPtr("app.js"))

	want := `{"type":"deprecation","url":"","body":{"id":"FeatureX","anticipatedRemoval":"2025-06-01","message":"m","sourceFile":"app.js","lineNumber":0,"columnNumber":0}}`
	assert.Equal(t, want, string(b.ReportFormData()))

	onlyColumn := b.WithColumnNumber(5)
	body := decodeBody(t, onlyColumn.ReportFormData())
	assert.Equal(t, float64(0), body["lineNumber"])
	assert.Equal(t, float64(5), body["columnNumber"])
}

func TestReportFormData_EmptySourceFileIsPresent(t *testing.T) {
	b := domain.NewDeprecationReportBody("FeatureX", removal, "m", strPtr(""))

	body := decodeBody(t, b.ReportFormData())
	assert.Equal(t, "", body["sourceFile"])
	assert.Equal(t, float64(0), body["lineNumber"])
	assert.Equal(t, float64(0), body["columnNumber"])
}

func TestReportFormData_Envelope(t *testing.T) {
	b := domain.NewDeprecationReportBody("FeatureX", removal, "m", nil)

	var env map[string]any
	require.NoError(t, json.Unmarshal(b.ReportFormData(), &env))
	assert.Equal(t, string(b.Type()), env["type"])
	assert.Equal(t, "", env["url"])
	assert.Len(t, env, 3)
}

func TestReportFormData_Unicode(t *testing.T) {
	msg := "naïve <b>&</b> ✓ 🚀"
	b := domain.NewDeprecationReportBody("Ünïcode", removal, msg, strPtr("https://例え.jp/app.js?a=1&b=2"))

	out := b.ReportFormData()
	assert.True(t, utf8.Valid(out))
	assert.Contains(t, string(out), `"message":"naïve <b>&</b> ✓ 🚀"`)
	assert.Contains(t, string(out), `"sourceFile":"https://例え.jp/app.js?a=1&b=2"`)

	body := decodeBody(t, out)
	assert.Equal(t, msg, body["message"])
}

func TestReportFormData_InvalidUTF8(t *testing.T) {
	b := domain.NewDeprecationReportBody("bad\xffid", removal, "m\xc3", nil)

	out := b.ReportFormData()
	assert.True(t, utf8.Valid(out))
	assert.Contains(t, string(out), `"id":"bad\ufffdid"`)
}

func TestReportFormData_Deterministic(t *testing.T) {
	b := domain.NewDeprecationReportBody("FeatureX", removal, "m", strPtr("app.js")).WithPosition(1, 2)
	assert.Equal(t, b.ReportFormData(), b.ReportFormData())
}

func TestFormatRemovalDate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"epoch millis with time of day", time.UnixMilli(1700000000000), "2023-11-14"},
		{"midnight", removal, "2025-06-01"},
		{"last nanosecond of day", time.Date(2025, 6, 1, 23, 59, 59, 999999999, time.UTC), "2025-06-01"},
		{"non-UTC zone", time.Date(2025, 6, 1, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60)), "2025-05-31"},
		{"epoch", time.Unix(0, 0), "1970-01-01"},
		{"just before epoch", time.Unix(0, -1), "1969-12-31"},
		{"one millisecond before epoch", time.UnixMilli(-1), "1969-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatRemovalDate(tt.in))
		})
	}
}

func TestReportFormData_DropsTimeOfDay(t *testing.T) {
	b := domain.NewDeprecationReportBody("FeatureX", time.UnixMilli(1700000000000), "m", nil)

	body := decodeBody(t, b.ReportFormData())
	assert.Equal(t, "2023-11-14", body["anticipatedRemoval"])
}

func decodeBody(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var env struct {
		Body map[string]any `json:"body"`
	}
	require.NoError(t, json.Unmarshal(data, &env))
	require.NotNil(t, env.Body)
	return env.Body
}
