// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"passport-audit/internal/record"
)

// completeRecord returns a record with all seven required fields holding
// valid values.
func completeRecord() record.Record {
	return record.Record{
		"byr": "1990",
		"iyr": "2015",
		"eyr": "2025",
		"hgt": "180cm",
		"hcl": "#abc123",
		"ecl": "blu",
		"pid": "123456789",
	}
}

func TestHasRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(record.Record)
		want   bool
	}{
		{"seven required fields no cid", func(r record.Record) {}, true},
		{"seven required fields plus cid", func(r record.Record) { r["cid"] = "147" }, true},
		{"missing pid", func(r record.Record) { delete(r, "pid") }, false},
		{"missing hgt", func(r record.Record) { delete(r, "hgt") }, false},
		{"unexpected extra field", func(r record.Record) { r["zzz"] = "1" }, false},
		{"cid plus unexpected extra", func(r record.Record) { r["cid"] = "147"; r["zzz"] = "1" }, false},
		{"required field swapped for cid", func(r record.Record) { delete(r, "ecl"); r["cid"] = "147" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := completeRecord()
			tc.mutate(r)
			assert.Equal(t, tc.want, HasRequiredFields(r))
		})
	}
}

func TestHasRequiredFields_EmptyRecord(t *testing.T) {
	assert.False(t, HasRequiredFields(record.Record{}))
}

func TestFieldsValid_BirthYear(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"1920", true},
		{"2002", true},
		{"1919", false},
		{"2003", false},
		{"199O", false},  // letter O
		{"+1990", false}, // sign not permitted
		{" 1990", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			r := completeRecord()
			r["byr"] = tc.value
			assert.Equal(t, tc.want, FieldsValid(r))
		})
	}
}

func TestFieldsValid_IssueAndExpirationYears(t *testing.T) {
	r := completeRecord()
	r["iyr"] = "2010"
	r["eyr"] = "2030"
	assert.True(t, FieldsValid(r))

	r["iyr"] = "2021"
	assert.False(t, FieldsValid(r))

	r["iyr"] = "2015"
	r["eyr"] = "2019"
	assert.False(t, FieldsValid(r))
}

func TestFieldsValid_Height(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"150cm", true},
		{"193cm", true},
		{"190cm", true},
		{"149cm", false},
		{"194cm", false},
		{"59in", true},
		{"76in", true},
		{"190in", false}, // out of inch range
		{"190", false},   // no unit
		{"cm", false},
		{"180ft", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			r := completeRecord()
			r["hgt"] = tc.value
			assert.Equal(t, tc.want, FieldsValid(r))
		})
	}
}

func TestFieldsValid_HairColor(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"#123abc", true},
		{"#abcdef", true},
		{"#123abz", false}, // non-hex char
		{"#123abcd", false},
		{"123abc", false},  // missing hash
		{"#123ABC", false}, // uppercase rejected
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			r := completeRecord()
			r["hcl"] = tc.value
			assert.Equal(t, tc.want, FieldsValid(r))
		})
	}
}

func TestFieldsValid_EyeColor(t *testing.T) {
	for _, valid := range []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"} {
		r := completeRecord()
		r["ecl"] = valid
		assert.True(t, FieldsValid(r), "ecl=%s should be valid", valid)
	}
	for _, invalid := range []string{"xyz", "blue", "", "amb "} {
		r := completeRecord()
		r["ecl"] = invalid
		assert.False(t, FieldsValid(r), "ecl=%q should be invalid", invalid)
	}
}

func TestFieldsValid_PassportID(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"000000001", true}, // leading zeros allowed
		{"123456789", true},
		{"0123456789", false}, // ten digits
		{"12345678", false},
		{"12345678a", false},
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			r := completeRecord()
			r["pid"] = tc.value
			assert.Equal(t, tc.want, FieldsValid(r))
		})
	}
}

func TestFieldsValid_MissingFieldFails(t *testing.T) {
	r := completeRecord()
	delete(r, "hgt")
	assert.False(t, FieldsValid(r))
}

func TestIsValid_GatesOnRequiredFields(t *testing.T) {
	r := completeRecord()
	assert.True(t, IsValid(r))

	// Valid field values but an extra unexpected field: structural check fails.
	r["extra"] = "1"
	assert.True(t, FieldsValid(r))
	assert.False(t, IsValid(r))
}

func TestRequiredFields_ReturnsCopy(t *testing.T) {
	fields := RequiredFields()
	assert.Len(t, fields, 7)
	fields[0] = "mutated"
	assert.Equal(t, "byr", RequiredFields()[0])
}
