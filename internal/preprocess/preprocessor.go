// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocess turns an input file into the raw text the parsing
// pipeline consumes. Plain text batch sheets pass through untouched; PDF
// exports are text-extracted first.
package preprocess

import (
	"path/filepath"
	"strings"

	"passport-audit/internal/observability"
)

// Preprocessor produces parseable text from one input file.
type Preprocessor interface {
	// Name identifies the preprocessor in debug output.
	Name() string

	// CanProcess reports whether this preprocessor handles the given file.
	CanProcess(path string) bool

	// Process reads the file and returns its textual content.
	Process(path string) ([]byte, error)
}

// Resolve picks the preprocessor for the given input. PDF extraction is
// used only when enabled; everything else falls back to plain text.
func Resolve(path string, enablePDF bool, observer *observability.Observer) Preprocessor {
	if enablePDF && strings.EqualFold(filepath.Ext(path), ".pdf") {
		return NewPDFText(observer)
	}
	return NewPlainText(observer)
}
