/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidArgument is returned when a caller-supplied value violates a precondition
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotConnected is returned when an operation is invoked before Connect
	ErrNotConnected = errors.New("client not connected")

	// ErrNotFound is returned when a referenced table or entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrTableExists is returned when attempting to create a table that already exists
	ErrTableExists = errors.New("table already exists")

	// ErrRemoteService is returned when the transport or the table service reports a failure
	ErrRemoteService = errors.New("remote service error")

	// ErrBatchConstruction is returned when partitioning entities into batches fails
	ErrBatchConstruction = errors.New("batch construction failed")

	// ErrMissingCredential is returned when connection credentials are absent
	ErrMissingCredential = errors.New("missing credential")
)

// InvalidArgumentError represents a caller-supplied value that violates a documented
// precondition. It is always raised before any network call.
type InvalidArgumentError struct {
	Name    string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid argument %q: %s", e.Name, e.Message)
	}
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NotConnectedError represents an operation invoked before the connection was established.
type NotConnectedError struct {
	Dependency string
}

func (e *NotConnectedError) Error() string {
	return fmt.Sprintf("dependency %q not initialized; call Connect first", e.Dependency)
}

func (e *NotConnectedError) Is(target error) bool {
	return target == ErrNotConnected
}

// NotFoundError represents a referenced table or entity that does not exist.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// TableExistsError represents an attempt to create a table that already exists.
// On the bulk upsert path this is an expected, recoverable condition.
type TableExistsError struct {
	Table string
}

func (e *TableExistsError) Error() string {
	return fmt.Sprintf("table %q already exists", e.Table)
}

func (e *TableExistsError) Is(target error) bool {
	return target == ErrTableExists
}

// RemoteError represents a failure reported by the transport or the table service.
// It preserves the original cause and whether the failure looked transient
// (connectivity, throttling, server errors) or permanent (bad request).
type RemoteError struct {
	Op        string
	Table     string
	Transient bool
	Err       error
}

func (e *RemoteError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s failed for table %q: %v", e.Op, e.Table, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteService
}

// BatchConstructionError represents an internal failure while partitioning entities
// into batches. It is treated as a defect, not expected in normal operation.
type BatchConstructionError struct {
	Cause error
}

func (e *BatchConstructionError) Error() string {
	return fmt.Sprintf("failed to build entity batches: %v", e.Cause)
}

func (e *BatchConstructionError) Unwrap() error {
	return e.Cause
}

func (e *BatchConstructionError) Is(target error) bool {
	return target == ErrBatchConstruction
}

// MissingCredentialError represents an absent account name or access key at connect time.
type MissingCredentialError struct {
	Field string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("credential field %q must be provided", e.Field)
}

func (e *MissingCredentialError) Is(target error) bool {
	return target == ErrMissingCredential
}

// Helper functions for creating errors

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(name, message string) error {
	return &InvalidArgumentError{Name: name, Message: message}
}

// NewNotConnectedError creates a new NotConnectedError
func NewNotConnectedError(dependency string) error {
	return &NotConnectedError{Dependency: dependency}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, name string) error {
	return &NotFoundError{Kind: kind, Name: name}
}

// NewTableExistsError creates a new TableExistsError
func NewTableExistsError(table string) error {
	return &TableExistsError{Table: table}
}

// NewRemoteError creates a new RemoteError wrapping the original cause
func NewRemoteError(op, table string, transient bool, err error) error {
	return &RemoteError{Op: op, Table: table, Transient: transient, Err: err}
}

// NewBatchConstructionError creates a new BatchConstructionError
func NewBatchConstructionError(cause error) error {
	return &BatchConstructionError{Cause: cause}
}

// NewMissingCredentialError creates a new MissingCredentialError
func NewMissingCredentialError(field string) error {
	return &MissingCredentialError{Field: field}
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsNotConnected checks if an error is a not connected error
func IsNotConnected(err error) bool {
	return errors.Is(err, ErrNotConnected)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTableExists checks if an error is a table already exists error
func IsTableExists(err error) bool {
	return errors.Is(err, ErrTableExists)
}

// IsRemoteService checks if an error is a remote service error
func IsRemoteService(err error) bool {
	return errors.Is(err, ErrRemoteService)
}

// IsTransient checks if an error is a remote service error that looked transient
func IsTransient(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Transient
}

// IsBatchConstruction checks if an error is a batch construction error
func IsBatchConstruction(err error) bool {
	return errors.Is(err, ErrBatchConstruction)
}

// IsMissingCredential checks if an error is a missing credential error
func IsMissingCredential(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}
