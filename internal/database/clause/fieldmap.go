// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package clause

// FieldMap translates logical (API-facing) field names into physical column
// names. The zero value maps every field onto itself.
type FieldMap struct {
	columns map[string]string
}

// NewFieldMap returns a FieldMap holding a copy of columns.
func NewFieldMap(columns map[string]string) FieldMap {
	cp := make(map[string]string, len(columns))
	for field, column := range columns {
		cp[field] = column
	}
	return FieldMap{columns: cp}
}

// Column returns the column mapped to field, or field itself when no
// mapping exists.
func (m FieldMap) Column(field string) string {
	if column, ok := m.columns[field]; ok {
		return column
	}
	return field
}

// Len returns the number of explicit mappings.
func (m FieldMap) Len() int {
	return len(m.columns)
}
