/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

package query

import (
	"regexp"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/vulcansys/tablestore/errors"
)

var placeholderPattern = regexp.MustCompile(`@\w+`)

// Substitute replaces @name placeholders in the filter text with type-correct
// literal encodings of the given parameter values. Placeholders without a
// matching parameter are left untouched and surface as remote query errors.
//
//	filter := "FirstName eq @first or Age ge @min"
//	params := map[string]any{"first": "Ana", "min": 21}
//	// -> "FirstName eq 'Ana' or Age ge 21"
func Substitute(filter string, params map[string]any) (string, error) {
	if len(params) == 0 {
		return filter, nil
	}

	encoded := make(map[string]string, len(params))
	for name, value := range params {
		lit, err := encode(name, value)
		if err != nil {
			return "", err
		}
		encoded[name] = lit.text
	}

	return placeholderPattern.ReplaceAllStringFunc(filter, func(m string) string {
		if text, ok := encoded[m[1:]]; ok {
			return text
		}
		return m
	}), nil
}

// encode maps a parameter value onto its literal constructor. Booleans are a
// distinct case from numbers: a bool parameter always renders true/false.
func encode(name string, value any) (Literal, error) {
	switch v := value.(type) {
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case time.Time:
		return DateTime(v.UTC().Format(time.RFC3339)), nil
	case strfmt.DateTime:
		return Time(v), nil
	case Literal:
		return v, nil
	default:
		return Literal{}, errors.NewInvalidArgumentError(name, "unsupported query parameter type")
	}
}
