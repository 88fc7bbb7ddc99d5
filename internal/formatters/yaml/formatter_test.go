// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"testing"

	stdyaml "gopkg.in/yaml.v3"

	"passport-audit/internal/audit"
	"passport-audit/internal/formatters"
)

func TestFormat_RoundTrips(t *testing.T) {
	result := &audit.Result{
		FilePath:        "batch.txt",
		TotalRecords:    3,
		CompleteRecords: 2,
		ValidRecords:    1,
	}

	out, err := NewFormatter().Format(result, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed map[string]any
	if err := stdyaml.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}
	if parsed["complete_records"] != 2 {
		t.Errorf("expected complete_records=2, got %v", parsed["complete_records"])
	}
	if parsed["valid_records"] != 1 {
		t.Errorf("expected valid_records=1, got %v", parsed["valid_records"])
	}
}
