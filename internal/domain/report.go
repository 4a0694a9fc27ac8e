package domain

// ReportType discriminates report body variants on the wire and in binary frames.
type ReportType string

// DeprecationReportType is shared by every deprecation report body.
const DeprecationReportType ReportType = "deprecation"

// ReportBody is the closed set of report body variants.
// Only types in this package can implement it; dispatch with a type switch.
type ReportBody interface {
	Type() ReportType
	// ReportFormData renders the body as the JSON document posted to a reporting endpoint.
	ReportFormData() []byte

	reportBody()
}

var _ ReportBody = (*DeprecationReportBody)(nil)
