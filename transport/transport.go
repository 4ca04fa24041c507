/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

package transport

import (
	"context"

	"github.com/vulcansys/tablestore/storagemodels"
)

// TableTransport is the boundary to the remote table service. Implementations
// authenticate, issue the protocol requests, and translate service failures into
// the errors package taxonomy (ErrTableExists, ErrNotFound, RemoteError). The
// client facade adds operation context on top; it never inspects raw protocol
// errors itself.
type TableTransport interface {
	// ListTables returns the table names as reported by the service, order as received.
	ListTables(ctx context.Context) ([]string, error)

	// CreateTable creates a table, failing with ErrTableExists if it is already present.
	CreateTable(ctx context.Context, name string) error

	// DeleteTable deletes a table, failing with ErrNotFound if it is absent.
	DeleteTable(ctx context.Context, name string) error

	// SubmitTransaction submits one batch as a single atomic transaction. Either
	// every operation in the batch is applied or none is.
	SubmitTransaction(ctx context.Context, table string, b storagemodels.Batch) error

	// DeleteEntity deletes the single entity addressed by the key pair.
	DeleteEntity(ctx context.Context, table, partitionKey, rowKey string) error

	// QueryEntities starts a filtered entity query and returns a lazy,
	// forward-only pager over the result pages.
	QueryEntities(ctx context.Context, table string, p storagemodels.QueryParams) (EntityPager, error)
}

// EntityPager is a pull-based, forward-only iterator over query result pages.
// Each page fetch may block on network I/O. A pager is not safe for concurrent
// use; restarting means reissuing the query.
type EntityPager interface {
	// More reports whether another page is available.
	More() bool

	// NextPage fetches the next page of entities.
	NextPage(ctx context.Context) ([]storagemodels.Entity, error)
}
