// Copyright 2024 The CQL Wire Driver Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cqlwire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cqlwire/driver/datatype"
	"github.com/cqlwire/driver/message"
)

// TestPreparedTarget_BoundVariables covers the common case -- an INSERT/UPDATE/DELETE/SELECT with a bind marker
// -- where the keyspace/table come from VariablesMetadata, so a later SCHEMA_CHANGE to that table can find the
// cached entry via preparedcache.Cache.InvalidateKeyspaceTable.
func TestPreparedTarget_BoundVariables(t *testing.T) {
	prepared := &message.PreparedResult{
		VariablesMetadata: &message.VariablesMetadata{
			Columns: []*message.ColumnMetadata{
				{Keyspace: "demo", Table: "users", Name: "code", Type: datatype.Int},
			},
		},
	}
	keyspace, table := preparedTarget(prepared)
	require.Equal(t, "demo", keyspace)
	require.Equal(t, "users", table)
}

// TestPreparedTarget_ResultMetadataFallback covers a parameterless SELECT, which has no bind variables at all --
// VariablesMetadata.Columns is empty -- so the target must come from the result columns instead.
func TestPreparedTarget_ResultMetadataFallback(t *testing.T) {
	prepared := &message.PreparedResult{
		VariablesMetadata: &message.VariablesMetadata{},
		ResultMetadata: &message.RowsMetadata{
			Columns: []*message.ColumnMetadata{
				{Keyspace: "demo", Table: "users", Name: "code", Type: datatype.Int},
			},
		},
	}
	keyspace, table := preparedTarget(prepared)
	require.Equal(t, "demo", keyspace)
	require.Equal(t, "users", table)
}

// TestPreparedTarget_Unknown covers a statement with neither bind variables nor result columns (e.g. a bare
// "TRUNCATE demo.users"); preparedTarget must not panic and should report an empty target rather than guessing.
func TestPreparedTarget_Unknown(t *testing.T) {
	prepared := &message.PreparedResult{}
	keyspace, table := preparedTarget(prepared)
	require.Empty(t, keyspace)
	require.Empty(t, table)
}
