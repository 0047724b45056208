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

// Map represents the CQL map type.
type Map struct {
	KeyType   DataType
	ValueType DataType
}

// MapType is kept as an alias to *Map for call sites written against the accessor-method style.
type MapType = *Map

func (t *Map) GetKeyType() DataType {
	return t.KeyType
}

func (t *Map) GetValueType() DataType {
	return t.ValueType
}

func (t *Map) GetDataTypeCode() primitive.DataTypeCode {
	return primitive.DataTypeCodeMap
}

func (t *Map) DeepCopy() *Map {
	var keyType, valueType DataType
	if t.KeyType != nil {
		keyType = t.KeyType.Clone()
	}
	if t.ValueType != nil {
		valueType = t.ValueType.Clone()
	}
	return &Map{KeyType: keyType, ValueType: valueType}
}

func (t *Map) Clone() DataType {
	return t.DeepCopy()
}

func (t *Map) String() string {
	return fmt.Sprintf("map<%v,%v>", t.KeyType, t.ValueType)
}

func (t *Map) MarshalJSON() ([]byte, error) {
	return []byte("\"" + t.String() + "\""), nil
}

func NewMap(keyType DataType, valueType DataType) *Map {
	return &Map{KeyType: keyType, ValueType: valueType}
}

func NewMapType(keyType DataType, valueType DataType) MapType {
	return NewMap(keyType, valueType)
}

func writeMapType(t DataType, dest io.Writer, version primitive.ProtocolVersion) (err error) {
	m, ok := t.(*Map)
	if !ok {
		return fmt.Errorf("expected *Map, got %T", t)
	} else if err = WriteDataType(m.KeyType, dest, version); err != nil {
		return fmt.Errorf("cannot write map key type: %w", err)
	} else if err = WriteDataType(m.ValueType, dest, version); err != nil {
		return fmt.Errorf("cannot write map value type: %w", err)
	}
	return nil
}

func lengthOfMapType(t DataType, version primitive.ProtocolVersion) (length int, err error) {
	m, ok := t.(*Map)
	if !ok {
		return -1, fmt.Errorf("expected *Map, got %T", t)
	}
	if keyLength, err := LengthOfDataType(m.KeyType, version); err != nil {
		return -1, fmt.Errorf("cannot compute length of map key type: %w", err)
	} else {
		length += keyLength
	}
	if valueLength, err := LengthOfDataType(m.ValueType, version); err != nil {
		return -1, fmt.Errorf("cannot compute length of map value type: %w", err)
	} else {
		length += valueLength
	}
	return length, nil
}

func readMapType(source io.Reader, version primitive.ProtocolVersion) (decoded DataType, err error) {
	m := &Map{}
	if m.KeyType, err = ReadDataType(source, version); err != nil {
		return nil, fmt.Errorf("cannot read map key type: %w", err)
	} else if m.ValueType, err = ReadDataType(source, version); err != nil {
		return nil, fmt.Errorf("cannot read map value type: %w", err)
	}
	return m, nil
}

type mapTypeCodec struct{}

func (c *mapTypeCodec) encode(t DataType, dest io.Writer, version primitive.ProtocolVersion) error {
	return writeMapType(t, dest, version)
}

func (c *mapTypeCodec) encodedLength(t DataType, version primitive.ProtocolVersion) (int, error) {
	return lengthOfMapType(t, version)
}

func (c *mapTypeCodec) decode(source io.Reader, version primitive.ProtocolVersion) (DataType, error) {
	return readMapType(source, version)
}
