// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"io"

	"passport-audit/internal/charstream"
)

// Tokenizer turns a character stream into a stream of Pair and Break tokens.
// It is a two-phase scanner: each call to Next reads one token, first
// accumulating a key up to ':' and then a value up to a space, newline, or
// end of input. Like its source it is forward-only and single-use.
type Tokenizer struct {
	chars *charstream.Stream
}

// NewTokenizer creates a Tokenizer over the given character stream.
func NewTokenizer(chars *charstream.Stream) *Tokenizer {
	return &Tokenizer{chars: chars}
}

// Next returns the next token. It returns io.EOF once the input is
// exhausted and a *LexError if the input is malformed. After an error the
// tokenizer must not be used again.
func (t *Tokenizer) Next() (Token, error) {
	c, ok := t.chars.Next()
	if !ok {
		return Token{}, io.EOF
	}
	if c == '\n' {
		// An empty logical line: the record separator.
		return Token{Kind: Break}, nil
	}
	return t.scanPair(c)
}

// scanPair scans a key:value field whose first key character has already
// been consumed.
func (t *Tokenizer) scanPair(initial byte) (Token, error) {
	key := []byte{initial}
	for {
		c, ok := t.chars.Next()
		if !ok {
			return Token{}, t.errf(KeyError, "end of file in key")
		}
		if c == ':' {
			break
		}
		if c == '\n' {
			return Token{}, t.errf(KeyError, "newline in key")
		}
		key = append(key, c)
	}

	// End of input is an implicit terminator for the final value of the
	// file, so running out of characters here is not an error.
	var value []byte
	for {
		c, ok := t.chars.Next()
		if !ok || c == '\n' || c == ' ' {
			break
		}
		if c == ':' {
			return Token{}, t.errf(ValueError, ": in value")
		}
		value = append(value, c)
	}

	return Token{Kind: Pair, Key: string(key), Value: string(value)}, nil
}

func (t *Tokenizer) errf(kind ErrorKind, msg string) *LexError {
	return &LexError{Kind: kind, Msg: msg, Offset: t.chars.Offset()}
}
