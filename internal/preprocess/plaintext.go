// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"fmt"
	"os"

	"passport-audit/internal/observability"
)

// PlainText passes file contents through unchanged. It is the default for
// every input that no other preprocessor claims.
type PlainText struct {
	observer *observability.Observer
}

// NewPlainText creates a plain text preprocessor.
func NewPlainText(observer *observability.Observer) *PlainText {
	return &PlainText{observer: observer}
}

func (p *PlainText) Name() string {
	return "plaintext"
}

func (p *PlainText) CanProcess(path string) bool {
	return true
}

func (p *PlainText) Process(path string) ([]byte, error) {
	finish := p.observer.StartTiming("plaintext_preprocessor", "process_file", path)

	data, err := os.ReadFile(path)
	if err != nil {
		finish(false, map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("error reading input file: %w", err)
	}

	finish(true, map[string]any{"content_length": len(data)})
	return data, nil
}
