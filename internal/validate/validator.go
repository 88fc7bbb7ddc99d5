// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package validate holds the field rules a passport record is checked
// against: a structural required-field-set check and per-field semantic
// rules. Rule tables are immutable package-level values compiled once at
// startup.
package validate

import (
	"regexp"
	"strconv"

	"passport-audit/internal/record"
)

// Field names recognized by the validator.
const (
	FieldBirthYear      = "byr"
	FieldIssueYear      = "iyr"
	FieldExpirationYear = "eyr"
	FieldHeight         = "hgt"
	FieldHairColor      = "hcl"
	FieldEyeColor       = "ecl"
	FieldPassportID     = "pid"
	FieldCountryID      = "cid"
)

// requiredFields is the mandatory field set; cid is the only optional field.
var requiredFields = []string{
	FieldBirthYear,
	FieldIssueYear,
	FieldExpirationYear,
	FieldHeight,
	FieldHairColor,
	FieldEyeColor,
	FieldPassportID,
}

var (
	heightPattern     = regexp.MustCompile(`^(\d+)(cm|in)$`)
	hairColorPattern  = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	eyeColorPattern   = regexp.MustCompile(`^(?:amb|blu|brn|gry|grn|hzl|oth)$`)
	passportIDPattern = regexp.MustCompile(`^\d{9}$`)
)

// HasRequiredFields reports whether the record passes the structural check:
// all seven required fields present and no unexpected extras. A record of
// exactly seven fields (the "north pole" variant, no cid) is accepted, as is
// one of exactly eight where the extra field is cid.
func HasRequiredFields(r record.Record) bool {
	return hasPassportFields(r) || hasNorthPoleFields(r)
}

func hasPassportFields(r record.Record) bool {
	return len(r) == len(requiredFields)+1 && hasMinFields(r) && r.Has(FieldCountryID)
}

func hasNorthPoleFields(r record.Record) bool {
	return len(r) == len(requiredFields) && hasMinFields(r)
}

func hasMinFields(r record.Record) bool {
	for _, field := range requiredFields {
		if !r.Has(field) {
			return false
		}
	}
	return true
}

// FieldsValid reports whether every required field's value passes its
// semantic rule. It assumes nothing about the structural check; a missing
// field simply fails its rule.
func FieldsValid(r record.Record) bool {
	return validBirthYear(r) &&
		validIssueYear(r) &&
		validExpirationYear(r) &&
		validHeight(r) &&
		validHairColor(r) &&
		validEyeColor(r) &&
		validPassportID(r)
}

// IsValid is the full check: required fields present and every field value
// within its rule.
func IsValid(r record.Record) bool {
	return HasRequiredFields(r) && FieldsValid(r)
}

func validBirthYear(r record.Record) bool {
	return yearInRange(r, FieldBirthYear, 1920, 2002)
}

func validIssueYear(r record.Record) bool {
	return yearInRange(r, FieldIssueYear, 2010, 2020)
}

func validExpirationYear(r record.Record) bool {
	return yearInRange(r, FieldExpirationYear, 2020, 2030)
}

func validHeight(r record.Record) bool {
	m := heightPattern.FindStringSubmatch(r[FieldHeight])
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	switch m[2] {
	case "cm":
		return n >= 150 && n <= 193
	case "in":
		return n >= 59 && n <= 76
	}
	return false
}

func validHairColor(r record.Record) bool {
	return hairColorPattern.MatchString(r[FieldHairColor])
}

func validEyeColor(r record.Record) bool {
	return eyeColorPattern.MatchString(r[FieldEyeColor])
}

func validPassportID(r record.Record) bool {
	return passportIDPattern.MatchString(r[FieldPassportID])
}

// yearInRange parses the field as an unsigned base-10 integer and checks the
// inclusive range. Signs and surrounding whitespace are rejected.
func yearInRange(r record.Record, field string, from, to int) bool {
	value, ok := r[field]
	if !ok || value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return false
	}
	return n >= from && n <= to
}

// RequiredFields returns the mandatory field names. Callers get a copy; the
// rule table itself never changes after init.
func RequiredFields() []string {
	out := make([]string, len(requiredFields))
	copy(out, requiredFields)
	return out
}
