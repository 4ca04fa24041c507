/*
Package query builds OData-style filter expressions for entity queries.

The Builder is a mutable token accumulator with a fluent interface. Tokens are
emitted in call order with no validation of logical well-formedness; malformed
expressions are only caught by the remote service at query time.

	filter := query.NewBuilder().
	    Column("LastName").
	    Op(query.GreaterThanOrEqual).
	    Value(query.String("A")).
	    Op(query.And).
	    Column("LastName").
	    Op(query.LessThan).
	    Value(query.String("B")).
	    Filter()

Literal values are tagged by constructor (String, Int, Float, Bool, DateTime,
Time), so the serialization of each value is decided by its type: a boolean
always renders as true/false, never 1/0.

Substitute supports safe parameterized filters with @name placeholders:

	filter, err := query.Substitute("FirstName eq @first", map[string]any{"first": name})
*/
package query
