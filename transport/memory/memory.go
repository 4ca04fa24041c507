/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

// Package memory provides a thread-safe in-memory implementation of
// transport.TableTransport for testing
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vulcansys/tablestore/errors"
	"github.com/vulcansys/tablestore/storagemodels"
	"github.com/vulcansys/tablestore/transport"
)

// defaultPageSize mirrors the service default of 1000 records per page.
const defaultPageSize = 1000

// Transaction records one submitted batch for test assertions.
type Transaction struct {
	Table string
	Batch storagemodels.Batch
}

// MatchFunc stands in for server-side filter evaluation. It receives the filter
// text after parameter substitution and the candidate entity.
type MatchFunc func(filter string, e storagemodels.Entity) bool

// Transport is an in-memory table service double. It applies merge/replace
// upsert semantics, enforces the 100-operation transaction limit, and keeps
// entities in insertion order for deterministic paging.
type Transport struct {
	mu           sync.RWMutex
	tables       map[string]*memTable
	tableOrder   []string
	transactions []Transaction

	matchFunc MatchFunc

	listErr    error
	createErr  error
	deleteErr  error
	submitErr  error
	delEntErr  error
	queryErr   error
}

type memTable struct {
	order    []string
	entities map[string]storagemodels.Entity
	etags    map[string]string
}

var _ transport.TableTransport = (*Transport)(nil)

// New creates a new in-memory transport
func New() *Transport {
	return &Transport{
		tables: make(map[string]*memTable),
	}
}

// WithListError makes ListTables return an error
func (t *Transport) WithListError(err error) *Transport {
	t.listErr = err
	return t
}

// WithCreateError makes CreateTable return an error
func (t *Transport) WithCreateError(err error) *Transport {
	t.createErr = err
	return t
}

// WithDeleteTableError makes DeleteTable return an error
func (t *Transport) WithDeleteTableError(err error) *Transport {
	t.deleteErr = err
	return t
}

// WithSubmitError makes SubmitTransaction return an error
func (t *Transport) WithSubmitError(err error) *Transport {
	t.submitErr = err
	return t
}

// WithDeleteEntityError makes DeleteEntity return an error
func (t *Transport) WithDeleteEntityError(err error) *Transport {
	t.delEntErr = err
	return t
}

// WithQueryError makes QueryEntities return an error
func (t *Transport) WithQueryError(err error) *Transport {
	t.queryErr = err
	return t
}

// WithMatchFunc sets the filter evaluation used by QueryEntities
func (t *Transport) WithMatchFunc(f MatchFunc) *Transport {
	t.matchFunc = f
	return t
}

// ListTables returns table names in creation order.
func (t *Transport) ListTables(ctx context.Context) ([]string, error) {
	if t.listErr != nil {
		return nil, t.listErr
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, len(t.tableOrder))
	copy(names, t.tableOrder)
	return names, nil
}

// CreateTable creates a table, failing with ErrTableExists if present.
func (t *Transport) CreateTable(ctx context.Context, name string) error {
	if t.createErr != nil {
		return t.createErr
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.tables[name]; exists {
		return errors.NewTableExistsError(name)
	}
	t.tables[name] = &memTable{
		entities: make(map[string]storagemodels.Entity),
		etags:    make(map[string]string),
	}
	t.tableOrder = append(t.tableOrder, name)
	return nil
}

// DeleteTable deletes a table, failing with ErrNotFound if absent.
func (t *Transport) DeleteTable(ctx context.Context, name string) error {
	if t.deleteErr != nil {
		return t.deleteErr
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.tables[name]; !exists {
		return errors.NewNotFoundError("table", name)
	}
	delete(t.tables, name)
	for i, n := range t.tableOrder {
		if n == name {
			t.tableOrder = append(t.tableOrder[:i], t.tableOrder[i+1:]...)
			break
		}
	}
	return nil
}

// SubmitTransaction validates the whole batch first and then applies it, so a
// rejected transaction leaves the table untouched.
func (t *Transport) SubmitTransaction(ctx context.Context, table string, b storagemodels.Batch) error {
	if t.submitErr != nil {
		return t.submitErr
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	tbl, exists := t.tables[table]
	if !exists {
		return errors.NewNotFoundError("table", table)
	}
	if len(b) > storagemodels.MaxBatchSize {
		return errors.NewRemoteError("submit transaction", table, false,
			fmt.Errorf("transaction holds %d operations, limit is %d", len(b), storagemodels.MaxBatchSize))
	}

	for _, op := range b {
		if op.Verb != storagemodels.VerbUpsert {
			return errors.NewRemoteError("submit transaction", table, false,
				fmt.Errorf("unsupported operation verb %q", op.Verb))
		}
		if !op.Mode.Valid() {
			return errors.NewRemoteError("submit transaction", table, false,
				fmt.Errorf("unsupported update mode %q", op.Mode))
		}
		if _, ok := op.Entity.PartitionKey(); !ok {
			return errors.NewRemoteError("submit transaction", table, false,
				fmt.Errorf("entity is missing a string PartitionKey"))
		}
		if _, ok := op.Entity.RowKey(); !ok {
			return errors.NewRemoteError("submit transaction", table, false,
				fmt.Errorf("entity is missing a string RowKey"))
		}
	}

	for _, op := range b {
		tbl.upsert(op.Entity, op.Mode)
	}

	batchCopy := make(storagemodels.Batch, len(b))
	copy(batchCopy, b)
	t.transactions = append(t.transactions, Transaction{Table: table, Batch: batchCopy})
	return nil
}

func (m *memTable) upsert(e storagemodels.Entity, mode storagemodels.UpdateMode) {
	pk, _ := e.PartitionKey()
	rk, _ := e.RowKey()
	key := pk + "|" + rk

	existing, exists := m.entities[key]
	if !exists {
		m.order = append(m.order, key)
	}

	if mode == storagemodels.UpdateModeMerge && exists {
		merged := existing.Clone()
		for k, v := range e {
			merged[k] = v
		}
		m.entities[key] = merged
	} else {
		m.entities[key] = e.Clone()
	}
	m.etags[key] = uuid.NewString()
}

// DeleteEntity deletes the entity addressed by the key pair.
func (t *Transport) DeleteEntity(ctx context.Context, table, partitionKey, rowKey string) error {
	if t.delEntErr != nil {
		return t.delEntErr
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	tbl, exists := t.tables[table]
	if !exists {
		return errors.NewNotFoundError("table", table)
	}

	key := partitionKey + "|" + rowKey
	if _, ok := tbl.entities[key]; !ok {
		return errors.NewNotFoundError("entity", partitionKey+"/"+rowKey)
	}
	delete(tbl.entities, key)
	delete(tbl.etags, key)
	for i, k := range tbl.order {
		if k == key {
			tbl.order = append(tbl.order[:i], tbl.order[i+1:]...)
			break
		}
	}
	return nil
}

// QueryEntities snapshots the matching entities and returns a pager over
// fixed-size pages.
func (t *Transport) QueryEntities(ctx context.Context, table string, p storagemodels.QueryParams) (transport.EntityPager, error) {
	if t.queryErr != nil {
		return nil, t.queryErr
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	tbl, exists := t.tables[table]
	if !exists {
		return nil, errors.NewNotFoundError("table", table)
	}

	var matched []storagemodels.Entity
	for _, key := range tbl.order {
		e := tbl.entities[key]
		if p.Filter != "" && t.matchFunc != nil && !t.matchFunc(p.Filter, e) {
			continue
		}
		matched = append(matched, project(e, p.Select))
	}

	pageSize := defaultPageSize
	if p.PageSize != nil && *p.PageSize > 0 {
		pageSize = int(*p.PageSize)
	}

	var pages [][]storagemodels.Entity
	for start := 0; start < len(matched); start += pageSize {
		end := start + pageSize
		if end > len(matched) {
			end = len(matched)
		}
		pages = append(pages, matched[start:end])
	}

	return &entityPager{pages: pages}, nil
}

// project applies the select restriction, returning only the named fields.
func project(e storagemodels.Entity, sel []string) storagemodels.Entity {
	if len(sel) == 0 {
		return e.Clone()
	}
	out := make(storagemodels.Entity, len(sel))
	for _, field := range sel {
		if v, ok := e[field]; ok {
			out[field] = v
		}
	}
	return out
}

type entityPager struct {
	pages [][]storagemodels.Entity
	next  int
}

func (p *entityPager) More() bool {
	return p.next < len(p.pages)
}

func (p *entityPager) NextPage(ctx context.Context) ([]storagemodels.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !p.More() {
		return nil, errors.NewRemoteError("query entities", "", false, fmt.Errorf("no more pages"))
	}
	page := p.pages[p.next]
	p.next++
	return page, nil
}

// Helper methods for testing

// Transactions returns a copy of every submitted transaction, in order.
func (t *Transport) Transactions() []Transaction {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Transaction, len(t.transactions))
	copy(out, t.transactions)
	return out
}

// Entity returns the stored entity for the key pair, if present.
func (t *Transport) Entity(table, partitionKey, rowKey string) (storagemodels.Entity, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tbl, exists := t.tables[table]
	if !exists {
		return nil, false
	}
	e, ok := tbl.entities[partitionKey+"|"+rowKey]
	if !ok {
		return nil, false
	}
	return e.Clone(), true
}

// ETag returns the current ETag for the key pair, if present.
func (t *Transport) ETag(table, partitionKey, rowKey string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tbl, exists := t.tables[table]
	if !exists {
		return "", false
	}
	etag, ok := tbl.etags[partitionKey+"|"+rowKey]
	return etag, ok
}
