/*
Package tablestore provides a client-side access layer for a schema-less,
partition/row-key-addressed remote table storage service (Azure Table Storage
wire semantics).

The library sits between arbitrary caller input and the storage protocol,
enforcing the protocol's own rules exactly: table naming, mandatory entity keys,
field-name normalization, the 100-operation transaction cap, and the OData-style
filter grammar.

Key Features:
  - Table lifecycle operations: list, create, delete
  - Bulk entity upsert with automatic atomic batching (merge or replace mode)
  - Entity deletion and filtered, paginated querying
  - Fluent query-filter builder with typed literals and parameterized filters
  - Uniform precondition validation and error translation around every remote call
  - Pluggable transport with an in-memory implementation for testing

Basic Usage:

	client := tablestore.New(cfg.AccountName, cfg.AccessKey)
	if err := client.Connect(); err != nil {
	    return err
	}

	entities := []storagemodels.Entity{
	    {"PartitionKey": "MTVH", "RowKey": "Action 0", "Name": "R"},
	}
	if err := client.UpsertEntities(ctx, "TableTest", entities, storagemodels.UpdateModeMerge); err != nil {
	    return err
	}

	filter := query.NewBuilder().
	    Column("Age").
	    Op(query.GreaterThanOrEqual).
	    Value(query.Int(21)).
	    Filter()
	pager, err := client.QueryEntities(ctx, "TableTest", storagemodels.QueryParams{Filter: filter})

All operations validate their inputs before any network I/O and translate
transport failures into the semantic error types of the errors package.
*/
package tablestore
