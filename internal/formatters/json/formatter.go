// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"passport-audit/internal/audit"
	"passport-audit/internal/formatters"
)

// Formatter implements JSON output formatting.
type Formatter struct{}

// NewFormatter creates a new JSON formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// response is the serialized shape of an audit result.
type response struct {
	File            string         `json:"file"`
	TotalRecords    int            `json:"total_records"`
	CompleteRecords int            `json:"complete_records"`
	ValidRecords    int            `json:"valid_records"`
	Records         []recordDetail `json:"records,omitempty"`
}

type recordDetail struct {
	Fields            map[string]string `json:"fields"`
	HasRequiredFields bool              `json:"has_required_fields"`
	Valid             bool              `json:"valid"`
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

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization.
func init() {
	formatters.Register(NewFormatter())
}
