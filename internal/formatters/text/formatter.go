// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"passport-audit/internal/audit"
	"passport-audit/internal/formatters"
)

// Formatter implements text-based output formatting.
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result *audit.Result, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder

	if options.ShowRecords {
		for _, rr := range result.Records {
			if rr.Valid {
				builder.WriteString(rr.Record.String())
				builder.WriteByte('\n')
			}
		}
		if result.ValidRecords > 0 {
			builder.WriteByte('\n')
		}
	}

	if options.Verbose {
		builder.WriteString(f.colors["white"].Sprintf("Audit of %s", result.FilePath))
		builder.WriteByte('\n')
		for i, rr := range result.Records {
			builder.WriteString(fmt.Sprintf("  record %d: %s\n", i+1, f.statusLabel(rr)))
		}
		builder.WriteString(fmt.Sprintf("Records parsed: %d\n", result.TotalRecords))
	}

	builder.WriteString(fmt.Sprintf("There are %s records with the required fields\n",
		f.colors["cyan"].Sprint(result.CompleteRecords)))
	builder.WriteString(fmt.Sprintf("There are %s valid records\n",
		f.colors["green"].Sprint(result.ValidRecords)))

	return builder.String(), nil
}

func (f *Formatter) statusLabel(rr audit.RecordResult) string {
	switch {
	case rr.Valid:
		return f.colors["green"].Sprint("valid")
	case rr.HasRequiredFields:
		return f.colors["yellow"].Sprint("complete, invalid fields")
	default:
		return f.colors["red"].Sprint("missing required fields")
	}
}

// Register the formatter during package initialization.
func init() {
	formatters.Register(NewFormatter())
}
