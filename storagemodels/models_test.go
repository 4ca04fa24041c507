/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

package storagemodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFieldName(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain letters untouched", "Name", "Name"},
		{"keys untouched", "PartitionKey", "PartitionKey"},
		{"space replaced", "First Name", "First_Name"},
		{"punctuation replaced", "unit.price", "unit_price"},
		{"digits replaced", "Field1", "Field_"},
		{"underscore preserved", "already_ok", "already_ok"},
		{"mixed", "a-b.c d", "a_b_c_d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeFieldName(tt.in))
		})
	}
}

func TestEntityNormalizeFieldNames(t *testing.T) {
	e := Entity{
		"PartitionKey": "P1",
		"RowKey":       "R1",
		"unit.price":   42,
		"Name":         "A",
	}

	e.NormalizeFieldNames()

	assert.Equal(t, Entity{
		"PartitionKey": "P1",
		"RowKey":       "R1",
		"unit_price":   42,
		"Name":         "A",
	}, e)
}

func TestEntityKeys(t *testing.T) {
	e := Entity{"PartitionKey": "P1", "RowKey": ""}

	pk, ok := e.PartitionKey()
	assert.True(t, ok)
	assert.Equal(t, "P1", pk)

	rk, ok := e.RowKey()
	assert.True(t, ok)
	assert.Equal(t, "", rk)

	// Non-string keys do not satisfy the contract
	bad := Entity{"PartitionKey": 7}
	_, ok = bad.PartitionKey()
	assert.False(t, ok)
	_, ok = bad.RowKey()
	assert.False(t, ok)
}

func TestEntityClone(t *testing.T) {
	e := Entity{"PartitionKey": "P1", "RowKey": "R1", "Name": "A"}
	c := e.Clone()

	e["Name"] = "mutated"
	assert.Equal(t, "A", c["Name"])

	var nilEntity Entity
	assert.Nil(t, nilEntity.Clone())
}

func TestUpdateModeValid(t *testing.T) {
	assert.True(t, UpdateModeMerge.Valid())
	assert.True(t, UpdateModeReplace.Valid())
	assert.False(t, UpdateMode("").Valid())
	assert.False(t, UpdateMode("overwrite").Valid())
}
