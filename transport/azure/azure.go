/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

// Package azure implements transport.TableTransport against Azure Table Storage
// using the aztables SDK with shared-key authentication.
package azure

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"

	"github.com/vulcansys/tablestore/errors"
	"github.com/vulcansys/tablestore/storagemodels"
	"github.com/vulcansys/tablestore/transport"
)

// Service error codes relevant to the client's error taxonomy.
const (
	codeTableAlreadyExists = "TableAlreadyExists"
	codeTableNotFound      = "TableNotFound"
	codeTableBeingDeleted  = "TableBeingDeleted"
	codeEntityNotFound     = "EntityNotFound"
	codeResourceNotFound   = "ResourceNotFound"
)

// Transport talks to an Azure Table Storage account. It holds an authenticated
// service handle created once at construction and never mutated; operations
// borrow it without claiming ownership.
type Transport struct {
	service *aztables.ServiceClient
}

var _ transport.TableTransport = (*Transport)(nil)

// New builds a Transport bound to the given service endpoint with a shared-key
// credential for the account.
func New(accountName, accessKey, endpoint string) (*Transport, error) {
	cred, err := aztables.NewSharedKeyCredential(accountName, accessKey)
	if err != nil {
		return nil, fmt.Errorf("failed to build shared key credential: %w", err)
	}

	service, err := aztables.NewServiceClientWithSharedKey(endpoint, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create table service client: %w", err)
	}

	return &Transport{service: service}, nil
}

// ListTables returns all table names in the account, in the order the service
// reports them.
func (t *Transport) ListTables(ctx context.Context) ([]string, error) {
	pager := t.service.NewListTablesPager(nil)

	var names []string
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, translate("list tables", "", err)
		}
		for _, tbl := range page.Tables {
			if tbl.Name != nil {
				names = append(names, *tbl.Name)
			}
		}
	}
	return names, nil
}

// CreateTable creates the named table.
func (t *Transport) CreateTable(ctx context.Context, name string) error {
	if _, err := t.service.CreateTable(ctx, name, nil); err != nil {
		return translate("create table", name, err)
	}
	return nil
}

// DeleteTable deletes the named table.
func (t *Transport) DeleteTable(ctx context.Context, name string) error {
	if _, err := t.service.DeleteTable(ctx, name, nil); err != nil {
		return translate("delete table", name, err)
	}
	return nil
}

// SubmitTransaction submits the batch as one atomic transaction against the table.
func (t *Transport) SubmitTransaction(ctx context.Context, table string, b storagemodels.Batch) error {
	actions := make([]aztables.TransactionAction, 0, len(b))
	for _, op := range b {
		payload, err := json.Marshal(op.Entity)
		if err != nil {
			return fmt.Errorf("failed to encode entity for table %q: %w", table, err)
		}

		actionType := aztables.TransactionTypeInsertMerge
		if op.Mode == storagemodels.UpdateModeReplace {
			actionType = aztables.TransactionTypeInsertReplace
		}

		actions = append(actions, aztables.TransactionAction{
			ActionType: actionType,
			Entity:     payload,
		})
	}

	client := t.service.NewClient(table)
	if _, err := client.SubmitTransaction(ctx, actions, nil); err != nil {
		return translate("submit transaction", table, err)
	}
	return nil
}

// DeleteEntity deletes the entity addressed by the key pair.
func (t *Transport) DeleteEntity(ctx context.Context, table, partitionKey, rowKey string) error {
	client := t.service.NewClient(table)
	if _, err := client.DeleteEntity(ctx, partitionKey, rowKey, nil); err != nil {
		var respErr *azcore.ResponseError
		if stderrors.As(err, &respErr) {
			switch respErr.ErrorCode {
			case codeEntityNotFound, codeResourceNotFound:
				return errors.NewNotFoundError("entity", partitionKey+"/"+rowKey)
			}
		}
		return translate("delete entity", table, err)
	}
	return nil
}

// QueryEntities starts a filtered query and returns a pager over its result pages.
func (t *Transport) QueryEntities(ctx context.Context, table string, p storagemodels.QueryParams) (transport.EntityPager, error) {
	options := &aztables.ListEntitiesOptions{
		Top: p.PageSize,
	}
	if p.Filter != "" {
		filter := p.Filter
		options.Filter = &filter
	}
	if len(p.Select) > 0 {
		sel := strings.Join(p.Select, ",")
		options.Select = &sel
	}

	client := t.service.NewClient(table)
	return &entityPager{table: table, pager: client.NewListEntitiesPager(options)}, nil
}

// entityPager adapts the SDK pager, decoding each page's raw entity payloads.
type entityPager struct {
	table string
	pager *runtime.Pager[aztables.ListEntitiesResponse]
}

func (p *entityPager) More() bool {
	return p.pager.More()
}

func (p *entityPager) NextPage(ctx context.Context) ([]storagemodels.Entity, error) {
	page, err := p.pager.NextPage(ctx)
	if err != nil {
		return nil, translate("query entities", p.table, err)
	}

	entities := make([]storagemodels.Entity, 0, len(page.Entities))
	for _, raw := range page.Entities {
		var e storagemodels.Entity
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("failed to decode entity from table %q: %w", p.table, err)
		}
		entities = append(entities, e)
	}
	return entities, nil
}

// translate maps a service failure onto the errors package taxonomy, preserving
// the original cause and its transient/permanent classification.
func translate(op, table string, err error) error {
	var respErr *azcore.ResponseError
	if stderrors.As(err, &respErr) {
		switch respErr.ErrorCode {
		case codeTableAlreadyExists:
			return errors.NewTableExistsError(table)
		case codeTableNotFound, codeTableBeingDeleted:
			return errors.NewNotFoundError("table", table)
		}
		transient := respErr.StatusCode >= 500 || respErr.StatusCode == 408 || respErr.StatusCode == 429
		return errors.NewRemoteError(op, table, transient, err)
	}
	// No HTTP response at all: connectivity failure, treated as transient.
	return errors.NewRemoteError(op, table, true, err)
}
