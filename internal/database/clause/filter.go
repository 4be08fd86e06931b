// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package clause

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// FilterBuilder accumulates predicates joined with AND. Predicates appear in
// the order they are added. Column names are trusted and written verbatim.
type FilterBuilder struct {
	predicates []string
	values     []interface{}
}

// NewFilter returns an empty FilterBuilder.
func NewFilter() *FilterBuilder {
	return &FilterBuilder{}
}

func (b *FilterBuilder) add(format, column string, value interface{}) *FilterBuilder {
	b.values = append(b.values, value)
	b.predicates = append(b.predicates, fmt.Sprintf(format, column, len(b.values)))
	return b
}

// Contains matches rows whose lower-cased column contains text. The pattern
// is not lower-cased and wildcards in text are not escaped.
func (b *FilterBuilder) Contains(column, text string) *FilterBuilder {
	return b.add("LOWER(%s) LIKE $%d", column, "%"+text+"%")
}

// AtLeast matches rows where column >= n.
func (b *FilterBuilder) AtLeast(column string, n interface{}) *FilterBuilder {
	return b.add("%s >= $%d", column, n)
}

// AtMost matches rows where column <= n.
func (b *FilterBuilder) AtMost(column string, n interface{}) *FilterBuilder {
	return b.add("%s <= $%d", column, n)
}

// NotEqual matches rows where column != v.
func (b *FilterBuilder) NotEqual(column string, v interface{}) *FilterBuilder {
	return b.add("%s != $%d", column, v)
}

// Len returns the number of predicates.
func (b *FilterBuilder) Len() int {
	return len(b.predicates)
}

// Result returns the predicates joined with " AND ". With no predicates the
// text is empty and there are no values.
func (b *FilterBuilder) Result() Result {
	if len(b.predicates) == 0 {
		return Result{Values: []interface{}{}}
	}
	values := make([]interface{}, len(b.values))
	copy(values, b.values)
	return Result{
		Text:   strings.Join(b.predicates, " AND "),
		Values: values,
	}
}

// Group returns the clause text wrapped in parentheses, or "" when empty.
func (r Result) Group() string {
	if r.Empty() {
		return ""
	}
	return "(" + r.Text + ")"
}

// Where returns "WHERE (<text>)", or "" when r is empty so the caller can
// omit the keyword entirely.
func Where(r Result) string {
	if r.Empty() {
		return ""
	}
	return "WHERE " + r.Group()
}

// Statement joins the non-empty parts of a SQL statement with single spaces,
// so optional clauses such as Where can be passed through unconditionally.
func Statement(parts ...string) string {
	return strings.Join(lo.Filter(parts, func(p string, _ int) bool { return p != "" }), " ")
}
