// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package charstream

import (
	"fmt"
	"io"
	"os"
)

// Stream is a forward-only cursor over the characters of a single input.
// The whole input is held in memory; batch sheets are small enough that
// buffering the file beats incremental reads. A Stream is consumed exactly
// once and cannot be rewound.
type Stream struct {
	src []byte
	pos int
}

// New creates a Stream over the given input bytes.
func New(src []byte) *Stream {
	return &Stream{src: src}
}

// FromReader drains r and returns a Stream over its contents.
func FromReader(r io.Reader) (*Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return New(data), nil
}

// Open reads the file at path and returns a Stream over its contents.
func Open(path string) (*Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}
	return New(data), nil
}

// Next returns the next character and advances the cursor.
// The second return value is false once the input is exhausted.
func (s *Stream) Next() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	c := s.src[s.pos]
	s.pos++
	return c, true
}

// Offset returns the number of characters consumed so far.
func (s *Stream) Offset() int {
	return s.pos
}

// Len returns the total length of the underlying input.
func (s *Stream) Len() int {
	return len(s.src)
}
