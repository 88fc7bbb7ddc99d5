// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"errors"
	"io"

	"passport-audit/internal/token"
)

// Assembler groups Pair tokens into Records, using Break tokens (or end of
// input) as group separators. Consecutive Breaks produce no empty records.
// Like the tokenizer it wraps, it is a single-pass, forward-only consumer.
type Assembler struct {
	tokens *token.Tokenizer
	done   bool
}

// NewAssembler creates an Assembler over the given tokenizer.
func NewAssembler(tokens *token.Tokenizer) *Assembler {
	return &Assembler{tokens: tokens}
}

// Next returns the next completed Record. It returns io.EOF once the token
// stream is exhausted and no in-progress record remains. A lexical error
// from the tokenizer is returned as-is and ends assembly for good.
func (a *Assembler) Next() (Record, error) {
	if a.done {
		return nil, io.EOF
	}

	rec := Record{}
	for {
		tok, err := a.tokens.Next()
		if errors.Is(err, io.EOF) {
			a.done = true
			if len(rec) > 0 {
				return rec, nil
			}
			return nil, io.EOF
		}
		if err != nil {
			a.done = true
			return nil, err
		}

		switch tok.Kind {
		case token.Pair:
			rec[tok.Key] = tok.Value
		case token.Break:
			if len(rec) > 0 {
				return rec, nil
			}
			// Extra blank line between groups; keep going.
		}
	}
}

// ReadAll drains the assembler and returns every record in input order.
func (a *Assembler) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := a.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
