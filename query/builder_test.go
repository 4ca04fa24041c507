/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

package query

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"

	"github.com/vulcansys/tablestore/errors"
)

func TestBuilderTokenSequence(t *testing.T) {
	got := NewBuilder().
		Column("Age").
		Op(GreaterThanOrEqual).
		Value(Int(21)).
		Filter()

	assert.Equal(t, "Age ge 21 ", got)
}

func TestBuilderChainedExpression(t *testing.T) {
	got := NewBuilder().
		Column("LastName").
		Op(GreaterThanOrEqual).
		Value(String("A")).
		Op(And).
		Column("LastName").
		Op(LessThan).
		Value(String("B")).
		Filter()

	assert.Equal(t, "LastName ge 'A' and LastName lt 'B' ", got)
}

func TestBuilderLiterals(t *testing.T) {
	tests := []struct {
		name     string
		lit      Literal
		expected string
	}{
		{"string quoted", String("Ana"), "'Ana' "},
		{"string quote doubled", String("O'Brien"), "'O''Brien' "},
		{"int", Int(42), "42 "},
		{"float", Float(2.5), "2.5 "},
		{"bool true is never 1", Bool(true), "true "},
		{"bool false is never 0", Bool(false), "false "},
		{"datetime unvalidated", DateTime("2024-03-01T00:00:00Z"), "datetime'2024-03-01T00:00:00Z' "},
		{"datetime garbage passes through", DateTime("not-a-time"), "datetime'not-a-time' "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewBuilder().Value(tt.lit).Filter())
		})
	}
}

func TestBuilderTime(t *testing.T) {
	ts := strfmt.DateTime(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC))
	got := NewBuilder().
		Column("CreatedAt").
		Op(GreaterThan).
		Value(Time(ts)).
		Filter()

	assert.Equal(t, "CreatedAt gt datetime'"+ts.String()+"' ", got)
}

func TestBuilderEmpty(t *testing.T) {
	assert.Equal(t, "", NewBuilder().Filter())
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		filter   string
		params   map[string]any
		expected string
	}{
		{
			name:     "no params",
			filter:   "Age ge 21",
			params:   nil,
			expected: "Age ge 21",
		},
		{
			name:     "string and number",
			filter:   "FirstName eq @first or Age ge @min",
			params:   map[string]any{"first": "Ana", "min": 21},
			expected: "FirstName eq 'Ana' or Age ge 21",
		},
		{
			name:     "bool renders true not 1",
			filter:   "Active eq @active",
			params:   map[string]any{"active": true},
			expected: "Active eq true",
		},
		{
			name:     "string value quoted and escaped",
			filter:   "LastName eq @last",
			params:   map[string]any{"last": "O'Brien"},
			expected: "LastName eq 'O''Brien'",
		},
		{
			name:     "time renders as datetime literal",
			filter:   "CreatedAt lt @before",
			params:   map[string]any{"before": time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			expected: "CreatedAt lt datetime'2024-03-01T00:00:00Z'",
		},
		{
			name:     "unknown placeholder untouched",
			filter:   "FirstName eq @first and LastName eq @last",
			params:   map[string]any{"first": "Ana"},
			expected: "FirstName eq 'Ana' and LastName eq @last",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Substitute(tt.filter, tt.params)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSubstituteUnsupportedType(t *testing.T) {
	_, err := Substitute("F eq @v", map[string]any{"v": struct{}{}})
	assert.True(t, errors.IsInvalidArgument(err))
}
