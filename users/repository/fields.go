package repository

import (
	"github.com/jessndots/express-jobly/internal/database/clause"
)

// UpdateFields maps API field names to users columns.
var UpdateFields = clause.NewFieldMap(map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
})
