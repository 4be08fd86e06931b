package repository

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBuildCompanyFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter CompanyFilter
		text   string
		values []interface{}
	}{
		{
			name:   "empty",
			filter: CompanyFilter{},
			text:   "",
			values: []interface{}{},
		},
		{
			name:   "name only",
			filter: CompanyFilter{Name: strPtr("net")},
			text:   "LOWER(name) LIKE $1",
			values: []interface{}{"%net%"},
		},
		{
			name:   "range",
			filter: CompanyFilter{MinEmployees: intPtr(2), MaxEmployees: intPtr(3)},
			text:   "num_employees >= $1 AND num_employees <= $2",
			values: []interface{}{2, 3},
		},
		{
			name:   "all",
			filter: CompanyFilter{Name: strPtr("c"), MinEmployees: intPtr(1), MaxEmployees: intPtr(9)},
			text:   "LOWER(name) LIKE $1 AND num_employees >= $2 AND num_employees <= $3",
			values: []interface{}{"%c%", 1, 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildCompanyFilter(tt.filter)
			assert.Equal(t, tt.text, got.Text)
			assert.Empty(t, cmp.Diff(tt.values, got.Values), "values mismatch (-want +got)")
		})
	}
}
