package repository

import (
	"github.com/jessndots/express-jobly/internal/database/clause"
)

// UpdateFields is empty: job fields are named like their columns.
var UpdateFields = clause.NewFieldMap(nil)

// BuildJobFilter renders filter as AND-joined predicates in the order
// title, minSalary, hasEquity. Equity is compared against its text zero.
func BuildJobFilter(filter JobFilter) clause.Result {
	b := clause.NewFilter()
	if filter.Title != nil {
		b.Contains("title", *filter.Title)
	}
	if filter.MinSalary != nil {
		b.AtLeast("salary", *filter.MinSalary)
	}
	if filter.HasEquity != nil && *filter.HasEquity {
		b.NotEqual("equity", "0")
	}
	return b.Result()
}
