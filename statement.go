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
	"github.com/cqlwire/driver/message"
	"github.com/cqlwire/driver/preparedcache"
	"github.com/cqlwire/driver/primitive"
)

// ExecOptions carries the per-call knobs that are independent of the statement text itself.
type ExecOptions struct {
	Consistency  primitive.ConsistencyLevel
	PageSize     int32
	PagingState  []byte
	SkipMetadata bool
}

// Statement is anything cqlwire.Session can execute: a SimpleStatement (a bare CQL string plus positional values)
// or a PreparedStatement (a cached entry plus positional or named values). Session.Execute switches on the
// concrete type; the interface exists to give callers (and Batch) a single type to hold either kind by.
type Statement interface {
	isStatement()
}

// SimpleStatement is a bare CQL query string bound with positional values only. The protocol design's tie-break
// rule rejects named values for Simple statements, because the server never tells the driver what type a bind
// marker expects ahead of time; SimpleStatement has no field to carry named values in the first place, so the
// rejection is structural rather than a runtime check.
type SimpleStatement struct {
	Query  string
	Values []Value
}

func (*SimpleStatement) isStatement() {}

// PreparedStatement binds values by position or name against the variable metadata returned by PREPARE.
type PreparedStatement struct {
	Query       string
	Positional  []interface{}
	Named       map[string]interface{}
	cachedEntry *preparedcache.Entry
}

func (*PreparedStatement) isStatement() {}

// encodeSimpleOptions encodes a Simple statement's Values into QueryOptions. The VALUES flag (and so
// PositionalValues itself) is left nil when the caller bound no values, per the protocol design's tie-break rule.
func encodeSimpleOptions(values []Value, opts ExecOptions, version primitive.ProtocolVersion) (*message.QueryOptions, error) {
	var positional []*primitive.Value
	if len(values) > 0 {
		positional = make([]*primitive.Value, len(values))
		for i, v := range values {
			encoded, err := encodeHinted(v, version)
			if err != nil {
				return nil, err
			}
			positional[i] = encoded
		}
	}
	return &message.QueryOptions{
		Consistency:      opts.Consistency,
		PositionalValues: positional,
		SkipMetadata:     opts.SkipMetadata,
		PageSize:         opts.PageSize,
		PagingState:      opts.PagingState,
	}, nil
}

// encodePreparedOptions encodes a PreparedStatement's bind values according to the bound-variable metadata
// returned when it was prepared, accepting either positional or named values but never both.
func encodePreparedOptions(entry *preparedcache.Entry, positional []interface{}, named map[string]interface{}, opts ExecOptions, version primitive.ProtocolVersion) (*message.QueryOptions, error) {
	if len(named) > 0 && len(positional) > 0 {
		return nil, &InvalidArguments{Reason: "cannot mix positional and named values"}
	}
	columns := entry.VariablesMetadata.Columns
	if len(named) > 0 {
		byName := make(map[string]*message.ColumnMetadata, len(columns))
		for _, col := range columns {
			byName[col.Name] = col
		}
		encoded := make(map[string]*primitive.Value, len(named))
		for name, goValue := range named {
			col, ok := byName[name]
			if !ok {
				return nil, &InvalidArguments{Reason: "no bound variable named " + name}
			}
			value, err := encodeTyped(col.Type, goValue, version)
			if err != nil {
				return nil, err
			}
			encoded[name] = value
		}
		return &message.QueryOptions{
			Consistency:  opts.Consistency,
			NamedValues:  encoded,
			SkipMetadata: opts.SkipMetadata,
			PageSize:     opts.PageSize,
			PagingState:  opts.PagingState,
		}, nil
	}
	var encoded []*primitive.Value
	if len(positional) > 0 {
		encoded = make([]*primitive.Value, len(positional))
		for i, goValue := range positional {
			if i >= len(columns) {
				return nil, &InvalidArguments{Reason: "too many positional values"}
			}
			value, err := encodeTyped(columns[i].Type, goValue, version)
			if err != nil {
				return nil, err
			}
			encoded[i] = value
		}
	}
	return &message.QueryOptions{
		Consistency:      opts.Consistency,
		PositionalValues: encoded,
		SkipMetadata:     opts.SkipMetadata,
		PageSize:         opts.PageSize,
		PagingState:      opts.PagingState,
	}, nil
}
