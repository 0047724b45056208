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

// Page is one page of a RESULT rows response. A Page is terminal -- the last page of the result set -- if and
// only if PagingState is absent.
type Page struct {
	Columns     []*message.ColumnMetadata
	Rows        []map[string]interface{}
	PagingState []byte
}

// IsLast reports whether this is the final page of the result set.
func (p *Page) IsLast() bool {
	return len(p.PagingState) == 0
}

func newPage(result *message.RowsResult, version primitive.ProtocolVersion) (*Page, error) {
	columns := result.Metadata.Columns
	rows := make([]map[string]interface{}, len(result.Data))
	for i, row := range result.Data {
		decoded := make(map[string]interface{}, len(columns))
		for j, cell := range row {
			if j >= len(columns) {
				break
			}
			value, err := decodeColumn(columns[j].Type, cell, version)
			if err != nil {
				return nil, err
			}
			decoded[columns[j].Name] = value
		}
		rows[i] = decoded
	}
	return &Page{
		Columns:     columns,
		Rows:        rows,
		PagingState: result.Metadata.PagingState,
	}, nil
}
