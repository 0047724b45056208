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
	"errors"
	"fmt"
	"github.com/cqlwire/driver/primitive"
	"io"
)

// Set represents the CQL set type.
type Set struct {
	ElementType DataType
}

// SetType is kept as an alias to *Set for call sites written against the accessor-method style.
type SetType = *Set

func (t *Set) GetElementType() DataType {
	return t.ElementType
}

func (t *Set) GetDataTypeCode() primitive.DataTypeCode {
	return primitive.DataTypeCodeSet
}

func (t *Set) Clone() DataType {
	return &Set{ElementType: t.ElementType.Clone()}
}

func (t *Set) String() string {
	return fmt.Sprintf("set<%v>", t.ElementType)
}

func (t *Set) MarshalJSON() ([]byte, error) {
	return []byte("\"" + t.String() + "\""), nil
}

func NewSet(elementType DataType) *Set {
	return &Set{ElementType: elementType}
}

func NewSetType(elementType DataType) SetType {
	return NewSet(elementType)
}

type setTypeCodec struct{}

func (c *setTypeCodec) encode(t DataType, dest io.Writer, version primitive.ProtocolVersion) (err error) {
	set, ok := t.(*Set)
	if !ok {
		return errors.New(fmt.Sprintf("expected SetType, got %T", t))
	} else if err = WriteDataType(set.ElementType, dest, version); err != nil {
		return fmt.Errorf("cannot write set element type: %w", err)
	}
	return nil
}

func (c *setTypeCodec) encodedLength(t DataType, version primitive.ProtocolVersion) (length int, err error) {
	set, ok := t.(*Set)
	if !ok {
		return -1, errors.New(fmt.Sprintf("expected SetType, got %T", t))
	} else if elementLength, err := LengthOfDataType(set.ElementType, version); err != nil {
		return -1, fmt.Errorf("cannot compute length of set element type: %w", err)
	} else {
		length += elementLength
	}
	return length, nil
}

func (c *setTypeCodec) decode(source io.Reader, version primitive.ProtocolVersion) (decoded DataType, err error) {
	set := &Set{}
	if set.ElementType, err = ReadDataType(source, version); err != nil {
		return nil, fmt.Errorf("cannot read set element type: %w", err)
	}
	return set, nil
}
