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

package datatype

import (
	"fmt"
	"github.com/cqlwire/driver/primitive"
	"io"
)

// List represents the CQL list type.
type List struct {
	ElementType DataType
}

// ListType is kept as an alias to *List for call sites written against the accessor-method style
// (GetElementType) rather than the exported field.
type ListType = *List

func (t *List) GetElementType() DataType {
	return t.ElementType
}

func NewList(elementType DataType) *List {
	return &List{ElementType: elementType}
}

func NewListType(elementType DataType) ListType {
	return NewList(elementType)
}

func (t *List) GetDataTypeCode() primitive.DataTypeCode {
	return primitive.DataTypeCodeList
}

func (t *List) Clone() DataType {
	return &List{ElementType: t.ElementType.Clone()}
}

func (t *List) String() string {
	return fmt.Sprintf("list<%v>", t.ElementType)
}

func (t *List) MarshalJSON() ([]byte, error) {
	return []byte("\"" + t.String() + "\""), nil
}

func writeListType(t DataType, dest io.Writer, version primitive.ProtocolVersion) (err error) {
	list, ok := t.(*List)
	if !ok {
		return fmt.Errorf("expected ListType, got %T", t)
	} else if err = WriteDataType(list.ElementType, dest, version); err != nil {
		return fmt.Errorf("cannot write list element type: %w", err)
	}
	return nil
}

func lengthOfListType(t DataType, version primitive.ProtocolVersion) (length int, err error) {
	list, ok := t.(*List)
	if !ok {
		return -1, fmt.Errorf("expected ListType, got %T", t)
	} else if elementLength, err := LengthOfDataType(list.ElementType, version); err != nil {
		return -1, fmt.Errorf("cannot compute length of list element type: %w", err)
	} else {
		length += elementLength
	}
	return length, nil
}

func readListType(source io.Reader, version primitive.ProtocolVersion) (decoded DataType, err error) {
	list := &List{}
	if list.ElementType, err = ReadDataType(source, version); err != nil {
		return nil, fmt.Errorf("cannot read list element type: %w", err)
	}
	return list, nil
}

type listTypeCodec struct{}

func (c *listTypeCodec) encode(t DataType, dest io.Writer, version primitive.ProtocolVersion) error {
	return writeListType(t, dest, version)
}

func (c *listTypeCodec) encodedLength(t DataType, version primitive.ProtocolVersion) (int, error) {
	return lengthOfListType(t, version)
}

func (c *listTypeCodec) decode(source io.Reader, version primitive.ProtocolVersion) (DataType, error) {
	return readListType(source, version)
}
