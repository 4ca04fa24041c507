/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

package tablestore

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/vulcansys/tablestore/batch"
	"github.com/vulcansys/tablestore/errors"
	"github.com/vulcansys/tablestore/query"
	"github.com/vulcansys/tablestore/storagemodels"
	"github.com/vulcansys/tablestore/transport"
	"github.com/vulcansys/tablestore/transport/azure"
	"github.com/vulcansys/tablestore/validate"
)

// defaultServiceDomain is the table service domain the endpoint is derived from
// when no explicit endpoint is configured.
const defaultServiceDomain = "table.core.windows.net"

// Table names start with a letter and are 3-63 alphanumeric characters total.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{2,62}$`)

// Client is the facade over the remote table service. A Client starts
// unconnected; Connect establishes the authenticated transport handle, which is
// then held for the lifetime of the client and never mutated. There is no
// automatic reconnect: after a transport failure the caller re-invokes Connect.
//
// A connected Client is safe to share across goroutines provided the underlying
// transport is, which the azure implementation is. Each operation blocks until
// the service responds.
type Client struct {
	accountName   string
	accessKey     string
	endpoint      string
	serviceDomain string
	logger        zerolog.Logger

	override  transport.TableTransport
	transport transport.TableTransport
}

// New creates an unconnected Client for the given storage account. Credentials
// are always supplied by the caller or a secret-management collaborator; the
// library never embeds defaults.
func New(accountName, accessKey string, opts ...Option) *Client {
	c := &Client{
		accountName:   accountName,
		accessKey:     accessKey,
		serviceDomain: defaultServiceDomain,
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect establishes the connection to the table service. It fails with a
// MissingCredentialError if either credential is absent. Connect may be invoked
// again after a transport failure; the previous handle is discarded.
func (c *Client) Connect() error {
	if c.override != nil {
		c.transport = c.override
		return nil
	}

	if c.accountName == "" {
		return errors.NewMissingCredentialError("accountName")
	}
	if c.accessKey == "" {
		return errors.NewMissingCredentialError("accessKey")
	}

	endpoint := c.endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.%s", c.accountName, c.serviceDomain)
	}

	tr, err := azure.New(c.accountName, c.accessKey, endpoint)
	if err != nil {
		return fmt.Errorf("failed to connect to table service: %w", err)
	}
	c.transport = tr

	c.logger.Debug().Str("endpoint", endpoint).Msg("connected to table service")
	return nil
}

// ListTables retrieves the table names of the storage account, in the order the
// service reports them.
func (c *Client) ListTables(ctx context.Context) ([]string, error) {
	if err := validate.Initialized("transport", c.transport); err != nil {
		return nil, err
	}

	names, err := c.transport.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve the table names: %w", err)
	}
	return names, nil
}

// CreateTable creates a table in the storage account. The name must start with
// a letter and be 3-63 alphanumeric characters long. Returns true on success;
// creating a table that already exists fails with ErrTableExists.
func (c *Client) CreateTable(ctx context.Context, tableName string) (bool, error) {
	err := validate.All(
		func() error { return validate.Initialized("transport", c.transport) },
		func() error { return validate.NonEmptyString("tableName", tableName) },
	)
	if err != nil {
		return false, err
	}

	if !tableNamePattern.MatchString(tableName) {
		return false, errors.NewInvalidArgumentError("tableName",
			"must be alphanumeric, begin with a letter and be between 3-63 characters long")
	}

	if err := c.transport.CreateTable(ctx, tableName); err != nil {
		return false, fmt.Errorf("failed to create table %q: %w", tableName, err)
	}

	c.logger.Debug().Str("table", tableName).Msg("table created")
	return true, nil
}

// DeleteTable deletes a table from the storage account. The table must
// currently appear in ListTables; otherwise the call fails with ErrNotFound.
func (c *Client) DeleteTable(ctx context.Context, tableName string) (bool, error) {
	err := validate.All(
		func() error { return validate.Initialized("transport", c.transport) },
		func() error { return validate.NonEmptyString("tableName", tableName) },
	)
	if err != nil {
		return false, err
	}

	exists, err := c.tableExists(ctx, tableName)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, errors.NewNotFoundError("table", tableName)
	}

	if err := c.transport.DeleteTable(ctx, tableName); err != nil {
		return false, fmt.Errorf("failed to delete table %q: %w", tableName, err)
	}

	c.logger.Debug().Str("table", tableName).Msg("table deleted")
	return true, nil
}

// UpsertEntities creates or updates the given entities in the table. Each entity
// must carry a non-empty string PartitionKey and a string RowKey; remaining
// field names are normalized in place so stored names hold only letters and
// underscores. The table is created on demand; an already existing table is not
// an error.
//
// Entities are partitioned into batches of at most 100 operations and each batch
// is submitted as one atomic transaction, sequentially, in input order, without
// retry. When a transaction fails, batches before it stay committed and batches
// after it are never sent.
func (c *Client) UpsertEntities(ctx context.Context, tableName string, entities []storagemodels.Entity, mode storagemodels.UpdateMode) error {
	err := validate.All(
		func() error { return validate.Initialized("transport", c.transport) },
		func() error { return validate.NonEmptyString("tableName", tableName) },
	)
	if err != nil {
		return err
	}

	if !mode.Valid() {
		return errors.NewInvalidArgumentError("mode", `must be "merge" or "replace"`)
	}
	if len(entities) == 0 {
		return errors.NewInvalidArgumentError("entities", "must be a non-empty list of non-empty entities")
	}
	for _, entity := range entities {
		if len(entity) == 0 {
			return errors.NewInvalidArgumentError("entities", "must be a non-empty list of non-empty entities")
		}
		if _, ok := entity[storagemodels.PartitionKeyField]; !ok {
			return errors.NewInvalidArgumentError("entities",
				`each entity must have the fields "PartitionKey" and "RowKey"`)
		}
		if _, ok := entity[storagemodels.RowKeyField]; !ok {
			return errors.NewInvalidArgumentError("entities",
				`each entity must have the fields "PartitionKey" and "RowKey"`)
		}
		if err := validate.NonEmptyString(storagemodels.PartitionKeyField, entity[storagemodels.PartitionKeyField]); err != nil {
			return err
		}
		if _, ok := entity.RowKey(); !ok {
			return errors.NewInvalidArgumentError(storagemodels.RowKeyField, "must be a string")
		}
		entity.NormalizeFieldNames()
	}

	if _, err := c.CreateTable(ctx, tableName); err != nil {
		if !errors.IsTableExists(err) {
			return err
		}
		c.logger.Debug().Str("table", tableName).Msg("table already exists")
	}

	batches, err := batch.Build(entities, mode)
	if err != nil {
		return err
	}

	for _, b := range batches {
		if err := c.transport.SubmitTransaction(ctx, tableName, b); err != nil {
			return fmt.Errorf("failed to create entities in the table %q; entities %v: %w", tableName, b, err)
		}
	}

	c.logger.Debug().
		Str("table", tableName).
		Int("entities", len(entities)).
		Int("batches", len(batches)).
		Msg("entities upserted")
	return nil
}

// DeleteEntity deletes a single entity from the table. The partition key must be
// non-empty; the row key may be empty. The table must exist.
func (c *Client) DeleteEntity(ctx context.Context, tableName, partitionKey, rowKey string) (bool, error) {
	err := validate.All(
		func() error { return validate.Initialized("transport", c.transport) },
		func() error { return validate.NonEmptyString("tableName", tableName) },
		func() error { return validate.NonEmptyString("partitionKey", partitionKey) },
	)
	if err != nil {
		return false, err
	}

	exists, err := c.tableExists(ctx, tableName)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, errors.NewNotFoundError("table", tableName)
	}

	if err := c.transport.DeleteEntity(ctx, tableName, partitionKey, rowKey); err != nil {
		return false, fmt.Errorf("failed to delete entity (%q, %q) from the table %q: %w",
			partitionKey, rowKey, tableName, err)
	}

	c.logger.Debug().Str("table", tableName).Str("partitionKey", partitionKey).Msg("entity deleted")
	return true, nil
}

// QueryEntities runs a filtered query against the table and returns a lazy,
// forward-only pager over the result pages. Named @placeholders in the filter
// are substituted from params.Parameters with type-correct encoding before the
// query is issued; params.Select restricts the returned fields and
// params.PageSize bounds the records per page.
func (c *Client) QueryEntities(ctx context.Context, tableName string, params storagemodels.QueryParams) (transport.EntityPager, error) {
	err := validate.All(
		func() error { return validate.Initialized("transport", c.transport) },
		func() error { return validate.NonEmptyString("tableName", tableName) },
	)
	if err != nil {
		return nil, err
	}

	exists, err := c.tableExists(ctx, tableName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("table", tableName)
	}

	filter, err := query.Substitute(params.Filter, params.Parameters)
	if err != nil {
		return nil, err
	}
	resolved := params
	resolved.Filter = filter
	resolved.Parameters = nil

	pager, err := c.transport.QueryEntities(ctx, tableName, resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to query the table %q: %w", tableName, err)
	}
	return pager, nil
}

func (c *Client) tableExists(ctx context.Context, tableName string) (bool, error) {
	names, err := c.transport.ListTables(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to retrieve the table names: %w", err)
	}
	for _, name := range names {
		if name == tableName {
			return true, nil
		}
	}
	return false, nil
}
