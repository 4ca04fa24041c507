/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

package query

import (
	"strconv"
	"strings"

	"github.com/go-openapi/strfmt"
)

// Operator is a filter operator token understood by the table service's
// OData-style query grammar.
type Operator string

const (
	Equal              Operator = "eq"
	NotEqual           Operator = "ne"
	GreaterThan        Operator = "gt"
	GreaterThanOrEqual Operator = "ge"
	LessThan           Operator = "lt"
	LessThanOrEqual    Operator = "le"
	And                Operator = "and"
	Or                 Operator = "or"
	Not                Operator = "not"
)

// Literal is a pre-encoded filter literal. Constructing a Literal resolves the
// serialization branch by type, so a boolean always renders as true/false and
// never as a number.
type Literal struct {
	text string
}

// String encodes a string literal, wrapped in single quotes with embedded
// quotes doubled.
func String(v string) Literal {
	return Literal{text: "'" + strings.ReplaceAll(v, "'", "''") + "'"}
}

// Int encodes an integer literal in decimal form.
func Int(v int64) Literal {
	return Literal{text: strconv.FormatInt(v, 10)}
}

// Float encodes a floating-point literal in decimal form.
func Float(v float64) Literal {
	return Literal{text: strconv.FormatFloat(v, 'f', -1, 64)}
}

// Bool encodes a boolean literal, lower-cased.
func Bool(v bool) Literal {
	return Literal{text: strconv.FormatBool(v)}
}

// DateTime wraps a timestamp string in a datetime literal without validating its
// format; a malformed timestamp surfaces as a remote query error. The expected
// layout is RFC 3339, e.g. 2006-01-02T15:04:05Z.
func DateTime(v string) Literal {
	return Literal{text: "datetime'" + v + "'"}
}

// Time encodes a typed timestamp as a datetime literal.
func Time(v strfmt.DateTime) Literal {
	return DateTime(v.String())
}

// Builder accumulates a textual filter incrementally via chained calls. Each call
// appends one token followed by a separating space and returns the builder for
// chaining. The builder performs no structural validation; an ill-formed
// expression is a caller error surfaced only at query execution.
type Builder struct {
	sb strings.Builder
}

// NewBuilder returns an empty filter builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Column appends a raw column identifier. No escaping; the caller is responsible
// for using valid identifiers.
func (b *Builder) Column(name string) *Builder {
	b.sb.WriteString(name)
	b.sb.WriteByte(' ')
	return b
}

// Op appends an operator token.
func (b *Builder) Op(op Operator) *Builder {
	b.sb.WriteString(string(op))
	b.sb.WriteByte(' ')
	return b
}

// Value appends a literal token.
func (b *Builder) Value(lit Literal) *Builder {
	b.sb.WriteString(lit.text)
	b.sb.WriteByte(' ')
	return b
}

// Filter returns the accumulated filter string, trailing spaces included. The
// result is passed directly as the filter text of a query operation.
func (b *Builder) Filter() string {
	return b.sb.String()
}
