// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"passport-audit/internal/observability"
)

// PDFText extracts the text layer of a PDF batch sheet so it can run
// through the same parsing pipeline as plain text input. Extraction quality
// depends on the exporting tool keeping fields space-separated; scanned
// image-only PDFs yield no text and fail downstream with an empty input.
type PDFText struct {
	observer *observability.Observer
}

// NewPDFText creates a PDF text-extraction preprocessor.
func NewPDFText(observer *observability.Observer) *PDFText {
	return &PDFText{observer: observer}
}

func (p *PDFText) Name() string {
	return "pdf-text"
}

func (p *PDFText) CanProcess(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

func (p *PDFText) Process(path string) ([]byte, error) {
	finish := p.observer.StartTiming("pdf_preprocessor", "extract_text", path)

	f, r, err := pdf.Open(path)
	if err != nil {
		finish(false, map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		finish(false, map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("error extracting PDF text: %w", err)
	}

	text, err := io.ReadAll(reader)
	if err != nil {
		finish(false, map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("error reading extracted PDF text: %w", err)
	}

	finish(true, map[string]any{"content_length": len(text), "page_count": r.NumPage()})
	return text, nil
}
