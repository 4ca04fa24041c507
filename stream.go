/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

package tablestore

import (
	"context"
	"time"

	"github.com/vulcansys/tablestore/storagemodels"
)

// StreamEntities runs a filtered query and streams the resulting entities over a
// channel, pulling pages lazily as the consumer drains them. The channel is
// closed when the results are exhausted, the context is cancelled, or an error
// occurs; a page-level error is delivered as the final StreamResult. No retry
// happens at this layer.
func (c *Client) StreamEntities(ctx context.Context, tableName string, params storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult, options.BufferSize)
	go c.streamWorker(ctx, tableName, params, resultCh)
	return resultCh
}

func (c *Client) streamWorker(
	ctx context.Context,
	tableName string,
	params storagemodels.QueryParams,
	resultCh chan<- storagemodels.StreamResult,
) {
	defer close(resultCh)

	var index int64
	var pageNumber int

	pager, err := c.QueryEntities(ctx, tableName, params)
	if err != nil {
		resultCh <- storagemodels.StreamResult{
			Error: err,
			Meta:  storagemodels.StreamMeta{Index: index, PageNumber: pageNumber, Timestamp: time.Now()},
		}
		return
	}

	for pager.More() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		page, err := pager.NextPage(ctx)
		if err != nil {
			resultCh <- storagemodels.StreamResult{
				Error: err,
				Meta:  storagemodels.StreamMeta{Index: index, PageNumber: pageNumber, Timestamp: time.Now()},
			}
			return
		}
		pageNumber++

		for _, entity := range page {
			result := storagemodels.StreamResult{
				Entity: entity,
				Meta: storagemodels.StreamMeta{
					Index:      index,
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}
			index++

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}
		}
	}
}
