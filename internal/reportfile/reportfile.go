// Package reportfile reads deprecation reports described as YAML documents:
//
//	id: FeatureX
//	anticipated_removal: 2025-06-01
//	message: FeatureX will be removed
//	source_file: https://example.com/app.js
//	line_number: 42
//	column_number: 7
package reportfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"example.com/deprecationreport/internal/domain"
)

// Load reads and parses the document at path.
func Load(path string) (*domain.DeprecationReportBody, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a YAML document into a body. Missing required keys and out of
// range positions are reported together.
func Parse(data []byte) (*domain.DeprecationReportBody, error) {
	var in domain.ReportInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	b, errs := in.Build()
	if len(errs) > 0 {
		return nil, domain.FieldErrors(errs)
	}
	return b, nil
}
