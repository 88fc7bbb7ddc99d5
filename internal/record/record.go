// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"sort"
	"strings"
)

// Record is one parsed passport: a field-name to field-value mapping built
// from a single blank-line-delimited group. Duplicate keys within a group
// overwrite earlier values (last write wins). Insertion order carries no
// meaning.
type Record map[string]string

// Has reports whether the record contains the named field.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Fields returns the record's field names in sorted order.
func (r Record) Fields() []string {
	fields := make([]string, 0, len(r))
	for name := range r {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

// String renders the record as space-separated key:value fields with keys
// sorted, which keeps output stable for display and tests.
func (r Record) String() string {
	var b strings.Builder
	for i, name := range r.Fields() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(r[name])
	}
	return b.String()
}
