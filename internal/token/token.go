// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package token

import "fmt"

// Kind is the enumeration of lexical units the tokenizer can emit.
type Kind int

const (
	// Pair is a key:value field.
	Pair Kind = iota
	// Break marks an empty line, which separates record groups.
	Break
)

// Token is a single lexical unit. Key and Value are set only for Pair tokens.
// An emitted Pair's key never contains ':' or a newline; its value never
// contains ':', a space, or a newline.
type Token struct {
	Kind  Kind
	Key   string
	Value string
}

func (t Token) String() string {
	if t.Kind == Break {
		return "Break"
	}
	return fmt.Sprintf("Pair(%s:%s)", t.Key, t.Value)
}

// ErrorKind classifies lexical errors by the token part being scanned.
type ErrorKind int

const (
	// KeyError means the input broke off or misbehaved inside a key.
	KeyError ErrorKind = iota
	// ValueError means a forbidden character appeared inside a value.
	ValueError
)

func (k ErrorKind) String() string {
	switch k {
	case KeyError:
		return "key error"
	case ValueError:
		return "value error"
	default:
		return "lex error"
	}
}

// LexError is a malformed-input error raised by the tokenizer. One LexError
// aborts the whole run; there is no per-record recovery.
type LexError struct {
	Kind   ErrorKind
	Msg    string
	Offset int // characters consumed when the error was detected
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Msg)
}
