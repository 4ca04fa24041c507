/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

package storagemodels

import "unicode"

const (
	// PartitionKeyField is the mandatory entity field grouping entities for scalability.
	PartitionKeyField = "PartitionKey"

	// RowKeyField is the mandatory entity field uniquely identifying an entity
	// within its partition. Its value may be empty but must be present and typed
	// as a string.
	RowKeyField = "RowKey"

	// MaxBatchSize is the maximum number of operations the table service accepts
	// in one atomic transaction.
	MaxBatchSize = 100

	// VerbUpsert is the operation verb for update-or-insert.
	VerbUpsert = "upsert"
)

// Entity is a schema-less record: a mapping from field name to a scalar value
// (string, number, boolean, or nil). Entities are ephemeral value objects created
// by the caller and consumed once per submission; the library never mutates them
// except for key normalization on the upsert path.
type Entity map[string]any

// PartitionKey returns the entity's partition key and whether it is present
// and typed as a string.
func (e Entity) PartitionKey() (string, bool) {
	v, ok := e[PartitionKeyField].(string)
	return v, ok
}

// RowKey returns the entity's row key and whether it is present and typed as a string.
func (e Entity) RowKey() (string, bool) {
	v, ok := e[RowKeyField].(string)
	return v, ok
}

// Clone returns a copy of the entity. Field values are scalars, so copying the
// map is sufficient to isolate a sealed batch from later caller mutation.
func (e Entity) Clone() Entity {
	if e == nil {
		return nil
	}
	out := make(Entity, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// NormalizeFieldNames rewrites, in place, every field name so that runes outside
// the alphabetic range become '_'. Stored field names are therefore restricted to
// letters and underscores. PartitionKey and RowKey are purely alphabetic and are
// never affected.
func (e Entity) NormalizeFieldNames() {
	for name, value := range e {
		normalized := NormalizeFieldName(name)
		if normalized != name {
			delete(e, name)
			e[normalized] = value
		}
	}
}

// NormalizeFieldName returns the field name with every non-letter rune replaced by '_'.
func NormalizeFieldName(name string) string {
	out := []rune(name)
	changed := false
	for i, r := range out {
		if !unicode.IsLetter(r) {
			out[i] = '_'
			changed = true
		}
	}
	if !changed {
		return name
	}
	return string(out)
}

// UpdateMode selects the upsert semantics for entities that already exist.
type UpdateMode string

const (
	// UpdateModeMerge leaves existing fields not present in the new entity untouched.
	UpdateModeMerge UpdateMode = "merge"

	// UpdateModeReplace fully overwrites the existing entity, dropping fields not
	// present in the new entity.
	UpdateModeReplace UpdateMode = "replace"
)

// Valid reports whether the mode is one of the documented values.
func (m UpdateMode) Valid() bool {
	return m == UpdateModeMerge || m == UpdateModeReplace
}

// Operation is a single tagged step of a transaction: (verb, entity, mode).
type Operation struct {
	Verb   string
	Entity Entity
	Mode   UpdateMode
}

// Batch is an ordered group of at most MaxBatchSize operations submitted to the
// table service as one atomic transaction.
type Batch []Operation

// QueryParams defines parameters for a filtered entity query.
type QueryParams struct {
	// Filter is the OData-style filter text, optionally containing @name placeholders.
	Filter string
	// Parameters holds values substituted for @name placeholders in Filter.
	Parameters map[string]any
	// Select restricts the fields returned for each entity.
	Select []string
	// PageSize bounds the number of records per page. The service default applies
	// when unset.
	PageSize *int32
}
