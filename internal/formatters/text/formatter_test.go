// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"passport-audit/internal/audit"
	"passport-audit/internal/formatters"
	"passport-audit/internal/record"
)

func sampleResult() *audit.Result {
	valid := record.Record{
		"byr": "1990", "iyr": "2015", "eyr": "2025", "hgt": "180cm",
		"hcl": "#abc123", "ecl": "blu", "pid": "123456789",
	}
	incomplete := record.Record{"byr": "1990", "iyr": "2015"}
	return &audit.Result{
		FilePath: "batch.txt",
		Records: []audit.RecordResult{
			{Record: valid, HasRequiredFields: true, Valid: true},
			{Record: incomplete},
		},
		TotalRecords:    2,
		CompleteRecords: 1,
		ValidRecords:    1,
	}
}

func TestFormat_ContainsBothCounts(t *testing.T) {
	out, err := NewFormatter().Format(sampleResult(), formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "There are 1 records with the required fields") {
		t.Errorf("expected required-field count in output, got:\n%s", out)
	}
	if !strings.Contains(out, "There are 1 valid records") {
		t.Errorf("expected valid count in output, got:\n%s", out)
	}
}

func TestFormat_ShowRecordsEchoesValidRecords(t *testing.T) {
	out, err := NewFormatter().Format(sampleResult(), formatters.FormatterOptions{NoColor: true, ShowRecords: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "pid:123456789") {
		t.Errorf("expected valid record echoed, got:\n%s", out)
	}
	if strings.Count(out, "byr:1990") != 1 {
		t.Errorf("expected only the valid record echoed, got:\n%s", out)
	}
}

func TestFormat_VerbosePerRecordStatus(t *testing.T) {
	out, err := NewFormatter().Format(sampleResult(), formatters.FormatterOptions{NoColor: true, Verbose: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "record 1: valid") {
		t.Errorf("expected per-record status lines, got:\n%s", out)
	}
	if !strings.Contains(out, "record 2: missing required fields") {
		t.Errorf("expected per-record status lines, got:\n%s", out)
	}
}
