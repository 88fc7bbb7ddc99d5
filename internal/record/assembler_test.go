// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"passport-audit/internal/charstream"
	"passport-audit/internal/token"
)

func assemble(input string) *Assembler {
	return NewAssembler(token.NewTokenizer(charstream.New([]byte(input))))
}

func TestReadAll_GroupsByBlankLine(t *testing.T) {
	records, err := assemble("byr:1990 iyr:2015\nhgt:180cm\n\npid:000000001\n").ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, Record{"byr": "1990", "iyr": "2015", "hgt": "180cm"}, records[0])
	require.Equal(t, Record{"pid": "000000001"}, records[1])
}

func TestReadAll_ConsecutiveBlankLinesCollapse(t *testing.T) {
	records, err := assemble("byr:1990\n\n\n\niyr:2015\n").ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestReadAll_LeadingAndTrailingBlankLines(t *testing.T) {
	records, err := assemble("\n\nbyr:1990\n\n").ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestReadAll_FinalRecordWithoutTrailingSeparator(t *testing.T) {
	records, err := assemble("byr:1990\n\npid:000000001").ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, Record{"pid": "000000001"}, records[1])
}

func TestReadAll_EmptyInputYieldsNoRecords(t *testing.T) {
	records, err := assemble("").ReadAll()
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestReadAll_DuplicateKeyLastWriteWins(t *testing.T) {
	records, err := assemble("byr:1990 byr:2000\n").ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "2000", records[0]["byr"])
}

func TestReadAll_LexicalErrorAbortsAssembly(t *testing.T) {
	_, err := assemble("byr:1990\nhgt\n").ReadAll()
	var lexErr *token.LexError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, token.KeyError, lexErr.Kind)
}

func TestNext_ExhaustedAssemblerReturnsEOF(t *testing.T) {
	a := assemble("byr:1990")
	_, err := a.Next()
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = a.Next()
		require.True(t, errors.Is(err, io.EOF))
	}
}

// Record count equals the number of non-empty groups, no matter how the
// blank-line separators are arranged.
func TestReadAll_RecordCountMatchesNonEmptyGroups(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"single group", "a:1 b:2\n", 1},
		{"two groups", "a:1\n\nb:2\n", 2},
		{"three groups ragged separators", "a:1\n\n\nb:2\n\nc:3", 3},
		{"only blank lines", "\n\n\n", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := assemble(tc.input).ReadAll()
			require.NoError(t, err)
			require.Len(t, records, tc.want)
		})
	}
}

func TestRecord_String(t *testing.T) {
	rec := Record{"iyr": "2015", "byr": "1990"}
	require.Equal(t, "byr:1990 iyr:2015", rec.String())
}
