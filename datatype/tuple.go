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
	"bytes"
	"fmt"
	"github.com/cqlwire/driver/primitive"
	"io"
)

// Tuple represents the CQL tuple type.
type Tuple struct {
	FieldTypes []DataType
}

// TupleType is kept as an alias to *Tuple for call sites written against the accessor-method style.
type TupleType = *Tuple

func (t *Tuple) GetFieldTypes() []DataType {
	return t.FieldTypes
}

func NewTuple(fieldTypes ...DataType) *Tuple {
	return &Tuple{FieldTypes: fieldTypes}
}

func NewTupleType(fieldTypes ...DataType) TupleType {
	return NewTuple(fieldTypes...)
}

func (t *Tuple) GetDataTypeCode() primitive.DataTypeCode {
	return primitive.DataTypeCodeTuple
}

// Code is kept as a shorthand alias for GetDataTypeCode.
func (t *Tuple) Code() primitive.DataTypeCode {
	return t.GetDataTypeCode()
}

func (t *Tuple) DeepCopy() *Tuple {
	return &Tuple{FieldTypes: CloneDataTypeSlice(t.FieldTypes)}
}

func (t *Tuple) Clone() DataType {
	return t.DeepCopy()
}

func (t *Tuple) String() string {
	buf := &bytes.Buffer{}
	buf.WriteString("tuple<")
	for i, fieldType := range t.FieldTypes {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString(fieldType.String())
	}
	buf.WriteString(">")
	return buf.String()
}

// AsCql is kept as an alias for String, matching the naming used elsewhere for CQL literal rendering.
func (t *Tuple) AsCql() string {
	return t.String()
}

func (t *Tuple) MarshalJSON() ([]byte, error) {
	return []byte("\"" + t.String() + "\""), nil
}

func writeTupleType(t DataType, dest io.Writer, version primitive.ProtocolVersion) (err error) {
	tuple, ok := t.(*Tuple)
	if !ok {
		return fmt.Errorf("expected *Tuple, got %T", t)
	} else if err = primitive.WriteShort(uint16(len(tuple.FieldTypes)), dest); err != nil {
		return fmt.Errorf("cannot write tuple type field count: %w", err)
	}
	for i, fieldType := range tuple.FieldTypes {
		if err = WriteDataType(fieldType, dest, version); err != nil {
			return fmt.Errorf("cannot write tuple field %d: %w", i, err)
		}
	}
	return nil
}

func lengthOfTupleType(t DataType, version primitive.ProtocolVersion) (int, error) {
	tuple, ok := t.(*Tuple)
	if !ok {
		return -1, fmt.Errorf("expected *Tuple, got %T", t)
	}
	length := primitive.LengthOfShort // field count
	for i, fieldType := range tuple.FieldTypes {
		if fieldLength, err := LengthOfDataType(fieldType, version); err != nil {
			return -1, fmt.Errorf("cannot compute length of tuple field %d: %w", i, err)
		} else {
			length += fieldLength
		}
	}
	return length, nil
}

func readTupleType(source io.Reader, version primitive.ProtocolVersion) (DataType, error) {
	fieldCount, err := primitive.ReadShort(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read tuple field count: %w", err)
	}
	tuple := &Tuple{FieldTypes: make([]DataType, fieldCount)}
	for i := 0; i < int(fieldCount); i++ {
		if tuple.FieldTypes[i], err = ReadDataType(source, version); err != nil {
			return nil, fmt.Errorf("cannot read tuple field %d: %w", i, err)
		}
	}
	return tuple, nil
}

type tupleTypeCodec struct{}

func (c *tupleTypeCodec) encode(t DataType, dest io.Writer, version primitive.ProtocolVersion) error {
	return writeTupleType(t, dest, version)
}

func (c *tupleTypeCodec) encodedLength(t DataType, version primitive.ProtocolVersion) (int, error) {
	return lengthOfTupleType(t, version)
}

func (c *tupleTypeCodec) decode(source io.Reader, version primitive.ProtocolVersion) (DataType, error) {
	return readTupleType(source, version)
}
