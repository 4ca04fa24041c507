/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

// Package batch partitions an ordered sequence of entities into fixed-size
// operation groups suitable for atomic submission to the table service.
package batch

import (
	"fmt"

	"github.com/vulcansys/tablestore/errors"
	"github.com/vulcansys/tablestore/storagemodels"
)

// Build partitions the entities, in input order, into batches of at most
// storagemodels.MaxBatchSize upsert operations, each tagged with the given mode.
// The last batch may be partial. Sealed batches hold deep copies, so later
// mutation of the caller's entities cannot corrupt an already-sealed batch.
// Empty input yields zero batches; callers reject empty input upstream.
//
// Any internal failure during construction is surfaced as a
// BatchConstructionError with no partial results.
func Build(entities []storagemodels.Entity, mode storagemodels.UpdateMode) (batches []storagemodels.Batch, err error) {
	defer func() {
		if r := recover(); r != nil {
			batches = nil
			err = errors.NewBatchConstructionError(fmt.Errorf("%v", r))
		}
	}()

	group := make(storagemodels.Batch, 0, storagemodels.MaxBatchSize)
	last := len(entities) - 1

	for i, entity := range entities {
		group = append(group, storagemodels.Operation{
			Verb:   storagemodels.VerbUpsert,
			Entity: entity.Clone(),
			Mode:   mode,
		})

		if len(group) >= storagemodels.MaxBatchSize || i == last {
			sealed := make(storagemodels.Batch, len(group))
			copy(sealed, group)
			batches = append(batches, sealed)
			group = group[:0]
		}
	}

	return batches, nil
}
