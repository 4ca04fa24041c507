/*
Package storagemodels defines the value types shared across the tablestore library:
entities, batch operations, update modes, and query parameters.

An Entity is a schema-less field map with two mandatory fields, PartitionKey and
RowKey. A Batch groups at most MaxBatchSize (100) upsert operations for atomic
submission to the table service.
*/
package storagemodels
