// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package clause

import (
	"fmt"
	"strings"

	"github.com/jessndots/express-jobly/internal/apperrors"
	"github.com/lib/pq"
)

// ErrNoData is returned by BuildSet for an empty payload.
var ErrNoData = apperrors.BadRequest(apperrors.CodeNoData, "No data")

// Result is a clause fragment paired with its ordered bound values.
type Result struct {
	Text   string
	Values []interface{}
}

// Empty reports whether the clause has no text.
func (r Result) Empty() bool {
	return r.Text == ""
}

// Next returns the position of the first placeholder a caller may append
// after this clause.
func (r Result) Next() int {
	return len(r.Values) + 1
}

// Args returns the bound values followed by extra, ready for the driver.
func (r Result) Args(extra ...interface{}) []interface{} {
	args := make([]interface{}, 0, len(r.Values)+len(extra))
	args = append(args, r.Values...)
	return append(args, extra...)
}

// Placeholder returns the positional parameter for position i.
func Placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}

// BuildSet renders payload as the body of an UPDATE ... SET list. Columns
// come from fields and are quoted; values are bound in payload order.
func BuildSet(payload *Payload, fields FieldMap) (Result, error) {
	if payload.Len() == 0 {
		return Result{}, ErrNoData
	}

	keys := payload.Keys()
	fragments := make([]string, 0, len(keys))
	values := make([]interface{}, 0, len(keys))
	for i, key := range keys {
		fragments = append(fragments, fmt.Sprintf("%s=$%d", pq.QuoteIdentifier(fields.Column(key)), i+1))
		values = append(values, payload.values[key])
	}

	return Result{
		Text:   strings.Join(fragments, ", "),
		Values: values,
	}, nil
}
