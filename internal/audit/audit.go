// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package audit runs the full pipeline over one batch file: preprocess,
// tokenize, assemble records, validate, count.
package audit

import (
	"errors"
	"fmt"
	"io"

	"passport-audit/internal/charstream"
	"passport-audit/internal/observability"
	"passport-audit/internal/preprocess"
	"passport-audit/internal/record"
	"passport-audit/internal/token"
	"passport-audit/internal/validate"
)

// Config holds the settings for one audit run.
type Config struct {
	FilePath            string
	EnablePreprocessors bool
	Observer            *observability.Observer

	// OnValidRecord, when non-nil, is invoked for each record that passes
	// both the required-field-set check and per-field validation, in input
	// order.
	OnValidRecord func(record.Record)
}

// RecordResult is the audit outcome for one record.
type RecordResult struct {
	Record            record.Record
	HasRequiredFields bool
	Valid             bool
}

// Result holds the outcome of one audit run.
type Result struct {
	FilePath string
	Records  []RecordResult

	// TotalRecords is the number of non-empty groups in the input.
	TotalRecords int
	// CompleteRecords counts records passing the required-field-set check.
	CompleteRecords int
	// ValidRecords counts records additionally passing per-field validation.
	ValidRecords int
}

// Run audits the configured batch file. Any I/O or lexical error is fatal
// to the whole run: either every well-formed record is counted or nothing
// is reported.
func Run(cfg Config) (*Result, error) {
	finish := cfg.Observer.StartTiming("audit", "run", cfg.FilePath)

	pre := preprocess.Resolve(cfg.FilePath, cfg.EnablePreprocessors, cfg.Observer)
	text, err := pre.Process(cfg.FilePath)
	if err != nil {
		finish(false, map[string]any{"error": err.Error()})
		return nil, err
	}

	result := &Result{FilePath: cfg.FilePath}
	assembler := record.NewAssembler(token.NewTokenizer(charstream.New(text)))
	for {
		rec, err := assembler.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			finish(false, map[string]any{"error": err.Error()})
			cfg.Observer.RecordError("audit", "assemble_record", cfg.FilePath, err)
			return nil, fmt.Errorf("record error: %w", err)
		}

		rr := RecordResult{
			Record:            rec,
			HasRequiredFields: validate.HasRequiredFields(rec),
		}
		rr.Valid = rr.HasRequiredFields && validate.FieldsValid(rec)

		result.Records = append(result.Records, rr)
		result.TotalRecords++
		if rr.HasRequiredFields {
			result.CompleteRecords++
		}
		if rr.Valid {
			result.ValidRecords++
			if cfg.OnValidRecord != nil {
				cfg.OnValidRecord(rec)
			}
		}
	}

	finish(true, map[string]any{
		"total_records":    result.TotalRecords,
		"complete_records": result.CompleteRecords,
		"valid_records":    result.ValidRecords,
	})
	return result, nil
}
