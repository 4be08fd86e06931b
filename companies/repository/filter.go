package repository

import (
	"github.com/jessndots/express-jobly/internal/database/clause"
)

// UpdateFields maps API field names to companies columns.
var UpdateFields = clause.NewFieldMap(map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
})

// BuildCompanyFilter renders filter as AND-joined predicates in the order
// name, minEmployees, maxEmployees.
func BuildCompanyFilter(filter CompanyFilter) clause.Result {
	b := clause.NewFilter()
	if filter.Name != nil {
		b.Contains("name", *filter.Name)
	}
	if filter.MinEmployees != nil {
		b.AtLeast("num_employees", *filter.MinEmployees)
	}
	if filter.MaxEmployees != nil {
		b.AtMost("num_employees", *filter.MaxEmployees)
	}
	return b.Result()
}
