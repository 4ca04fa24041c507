/*
Package errors provides semantic error types for the tablestore library.

The package defines the error taxonomy of the client with sentinel errors that can
be checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrInvalidArgument   = errors.New("invalid argument")
	    ErrNotConnected      = errors.New("client not connected")
	    ErrNotFound          = errors.New("not found")
	    ErrTableExists       = errors.New("table already exists")
	    ErrRemoteService     = errors.New("remote service error")
	    ErrBatchConstruction = errors.New("batch construction failed")
	    ErrMissingCredential = errors.New("missing credential")
	)

Usage:

	// Check error type
	ok, err := client.DeleteTable(ctx, "Orders")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle not found case
	        return fmt.Errorf("table %s does not exist", "Orders")
	    }
	    return err
	}

	// Distinguish transient connectivity failures from permanent request errors
	if errors.IsRemoteService(err) && errors.IsTransient(err) {
	    // Caller may re-invoke the operation
	}

	// Create typed errors
	err := errors.NewNotFoundError("table", "Orders")
	err := errors.NewInvalidArgumentError("tableName", "must be a non-empty string")
	err := errors.NewRemoteError("create table", "Orders", false, cause)

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
