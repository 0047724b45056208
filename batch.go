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
	"github.com/cqlwire/driver/primitive"
)

// BatchChild is one statement within a Batch: either a bare query string or a prepared id, bound with positional
// values only -- the server rejects named values inside a BATCH.
type BatchChild struct {
	Query      string
	PreparedID []byte
	Values     []Value
}

// Batch assembles an ordered list of statements to submit as a single BATCH request. The driver preserves the
// order the caller supplied; the server executes it atomically.
type Batch struct {
	Type        primitive.BatchType
	Consistency primitive.ConsistencyLevel
	Children    []BatchChild
}

// NewLoggedBatch creates an empty, atomic (LOGGED) batch.
func NewLoggedBatch() *Batch {
	return &Batch{Type: primitive.BatchTypeLogged}
}

// AddSimple appends a bare-query child bound with the given hinted values.
func (b *Batch) AddSimple(query string, values ...Value) {
	b.Children = append(b.Children, BatchChild{Query: query, Values: values})
}

// AddPrepared appends a prepared-id child bound with the given hinted values.
func (b *Batch) AddPrepared(preparedID []byte, values ...Value) {
	b.Children = append(b.Children, BatchChild{PreparedID: preparedID, Values: values})
}

func (b *Batch) toMessage(version primitive.ProtocolVersion) (*message.Batch, error) {
	children := make([]*message.BatchChild, len(b.Children))
	for i, child := range b.Children {
		values := make([]*primitive.Value, len(child.Values))
		for j, v := range child.Values {
			encoded, err := encodeHinted(v, version)
			if err != nil {
				return nil, err
			}
			values[j] = encoded
		}
		var queryOrID interface{}
		if len(child.PreparedID) > 0 {
			queryOrID = child.PreparedID
		} else {
			queryOrID = child.Query
		}
		children[i] = &message.BatchChild{QueryOrId: queryOrID, Values: values}
	}
	return &message.Batch{
		Type:        b.Type,
		Children:    children,
		Consistency: b.Consistency,
	}, nil
}
