/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidArgumentError(t *testing.T) {
	tests := []struct {
		name     string
		argName  string
		message  string
		expected string
	}{
		{
			name:     "with name",
			argName:  "tableName",
			message:  "must be a non-empty string",
			expected: `invalid argument "tableName": must be a non-empty string`,
		},
		{
			name:     "without name",
			argName:  "",
			message:  "entities must not be empty",
			expected: "invalid argument: entities must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInvalidArgumentError(tt.argName, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidArgument) {
				t.Error("InvalidArgumentError should match ErrInvalidArgument")
			}

			if !IsInvalidArgument(err) {
				t.Error("IsInvalidArgument should return true for InvalidArgumentError")
			}
		})
	}
}

func TestNotConnectedError(t *testing.T) {
	err := NewNotConnectedError("transport")

	expected := `dependency "transport" not initialized; call Connect first`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotConnected) {
		t.Error("NotConnectedError should match ErrNotConnected")
	}

	if !IsNotConnected(err) {
		t.Error("IsNotConnected should return true for NotConnectedError")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("table", "Orders")

	expected := `table "Orders" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestTableExistsError(t *testing.T) {
	err := NewTableExistsError("Orders")

	expected := `table "Orders" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrTableExists) {
		t.Error("TableExistsError should match ErrTableExists")
	}

	if !IsTableExists(err) {
		t.Error("IsTableExists should return true for TableExistsError")
	}
}

func TestRemoteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewRemoteError("list tables", "", true, cause)

	expected := "list tables failed: connection refused"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrRemoteService) {
		t.Error("RemoteError should match ErrRemoteService")
	}

	if !errors.Is(err, cause) {
		t.Error("RemoteError should unwrap to its cause")
	}

	if !IsTransient(err) {
		t.Error("IsTransient should return true for a transient RemoteError")
	}

	permanent := NewRemoteError("create table", "Orders", false, errors.New("bad request"))
	expected = `create table failed for table "Orders": bad request`
	if permanent.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, permanent.Error())
	}
	if IsTransient(permanent) {
		t.Error("IsTransient should return false for a permanent RemoteError")
	}
}

func TestBatchConstructionError(t *testing.T) {
	cause := errors.New("panic: index out of range")
	err := NewBatchConstructionError(cause)

	expected := "failed to build entity batches: panic: index out of range"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrBatchConstruction) {
		t.Error("BatchConstructionError should match ErrBatchConstruction")
	}

	if !errors.Is(err, cause) {
		t.Error("BatchConstructionError should unwrap to its cause")
	}
}

func TestMissingCredentialError(t *testing.T) {
	err := NewMissingCredentialError("accessKey")

	expected := `credential field "accessKey" must be provided`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrMissingCredential) {
		t.Error("MissingCredentialError should match ErrMissingCredential")
	}

	if !IsMissingCredential(err) {
		t.Error("IsMissingCredential should return true for MissingCredentialError")
	}
}

func TestErrorWrapping(t *testing.T) {
	// Wrapped errors must still match their sentinels
	original := NewNotFoundError("table", "Orders")
	wrapped := fmt.Errorf("delete table failed: %w", original)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrapped NotFoundError should still match ErrNotFound")
	}

	remote := NewRemoteError("submit transaction", "Orders", true, errors.New("timeout"))
	wrapped = fmt.Errorf("failed to upsert entities in table %q: %w", "Orders", remote)

	if !IsRemoteService(wrapped) {
		t.Error("Wrapped RemoteError should still match ErrRemoteService")
	}
	if !IsTransient(wrapped) {
		t.Error("Wrapped RemoteError should preserve its transient classification")
	}
}
