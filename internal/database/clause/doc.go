// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package clause builds positionally parameterized SQL fragments for
// PostgreSQL: SET lists for partial updates and AND-joined WHERE predicate
// groups for filtered lookups.
//
// Every Result pairs clause text with its bound values such that the Nth
// placeholder ($N) in the text binds Values[N-1]. Values are never
// interpolated into the text.
//
// Builders hold no shared state and perform no I/O; they are safe for
// concurrent use.
package clause
