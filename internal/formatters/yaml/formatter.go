// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"passport-audit/internal/audit"
	"passport-audit/internal/formatters"
)

// Formatter implements YAML output formatting.
type Formatter struct{}

// NewFormatter creates a new YAML formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML output for configuration-friendly consumption"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

type response struct {
	File            string         `yaml:"file"`
	TotalRecords    int            `yaml:"total_records"`
	CompleteRecords int            `yaml:"complete_records"`
	ValidRecords    int            `yaml:"valid_records"`
	Records         []recordDetail `yaml:"records,omitempty"`
}

type recordDetail struct {
	Fields            map[string]string `yaml:"fields"`
	HasRequiredFields bool              `yaml:"has_required_fields"`
	Valid             bool              `yaml:"valid"`
}

func (f *Formatter) Format(result *audit.Result, options formatters.FormatterOptions) (string, error) {
	resp := response{
		File:            result.FilePath,
		TotalRecords:    result.TotalRecords,
		CompleteRecords: result.CompleteRecords,
		ValidRecords:    result.ValidRecords,
	}

	if options.Verbose || options.ShowRecords {
		for _, rr := range result.Records {
			resp.Records = append(resp.Records, recordDetail{
				Fields:            rr.Record,
				HasRequiredFields: rr.HasRequiredFields,
				Valid:             rr.Valid,
			})
		}
	}

	data, err := yaml.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization.
func init() {
	formatters.Register(NewFormatter())
}
