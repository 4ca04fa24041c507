/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

// Package validate provides reusable precondition checks applied before any
// operation touches the network. Checks take already-bound values and return
// typed errors from the errors package; they are pure and composable.
package validate

import (
	"reflect"

	"github.com/vulcansys/tablestore/errors"
)

// NonEmptyString fails with an InvalidArgumentError if value is missing, not a
// string, or empty.
func NonEmptyString(name string, value any) error {
	s, ok := value.(string)
	if !ok || s == "" {
		return errors.NewInvalidArgumentError(name, "must be a non-empty string")
	}
	return nil
}

// Initialized fails with a NotConnectedError if the named dependency is unset.
// A typed nil (e.g. a nil pointer stored in an interface) counts as unset.
func Initialized(name string, dep any) error {
	if dep == nil {
		return errors.NewNotConnectedError(name)
	}
	v := reflect.ValueOf(dep)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if v.IsNil() {
			return errors.NewNotConnectedError(name)
		}
	}
	return nil
}

// All runs the given checks in order and returns the first failure, if any.
// All checks must pass before the operation body runs.
func All(checks ...func() error) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
