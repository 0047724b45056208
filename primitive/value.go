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

package primitive

import (
	"errors"
	"fmt"
	"io"
)

// ValueType distinguishes a [value]'s three wire shapes: a regular value carrying content bytes, a NULL
// (content absent), and "not set" (content absent, and the server must leave the bound column unchanged).
// "Not set" only applies to bound values of a prepared EXECUTE; the server rejects it elsewhere.
type ValueType int32

const (
	ValueTypeRegular = ValueType(0)
	ValueTypeNull    = ValueType(-1)
	ValueTypeUnset   = ValueType(-2)
)

// Value is a single bound [value]: a type/content pair, where Contents is nil for ValueTypeNull and
// ValueTypeUnset. A Value with Type ValueTypeRegular and a nil (not merely empty) Contents is equivalent to
// NewNullValue.
type Value struct {
	Type     ValueType
	Contents []byte
}

func NewValue(contents []byte) *Value {
	return &Value{Type: ValueTypeRegular, Contents: contents}
}

func NewNullValue() *Value {
	return &Value{Type: ValueTypeNull}
}

func NewUnsetValue() *Value {
	return &Value{Type: ValueTypeUnset}
}

func (v *Value) String() string {
	switch v.Type {
	case ValueTypeNull:
		return "NULL"
	case ValueTypeUnset:
		return "UNSET"
	default:
		return fmt.Sprintf("0x%x", v.Contents)
	}
}

// [value]

func ReadValue(source io.Reader) (*Value, error) {
	if length, err := ReadInt(source); err != nil {
		return nil, fmt.Errorf("cannot read [value] length: %w", err)
	} else if length == int32(ValueTypeNull) {
		return NewNullValue(), nil
	} else if length == int32(ValueTypeUnset) {
		return NewUnsetValue(), nil
	} else if length < 0 {
		return nil, fmt.Errorf("invalid [value] length: %v", length)
	} else {
		decoded := make([]byte, length)
		if _, err := io.ReadFull(source, decoded); err != nil {
			return nil, fmt.Errorf("cannot read [value] content: %w", err)
		}
		return NewValue(decoded), nil
	}
}

func WriteValue(value *Value, dest io.Writer, version ProtocolVersion) error {
	if value == nil {
		return errors.New("cannot write a nil [value]")
	}
	switch value.Type {
	case ValueTypeNull:
		return WriteInt(int32(ValueTypeNull), dest)
	case ValueTypeUnset:
		if !version.SupportsUnsetValues() {
			return fmt.Errorf("%v does not support unset values", version)
		}
		return WriteInt(int32(ValueTypeUnset), dest)
	case ValueTypeRegular:
		if value.Contents == nil {
			return WriteInt(int32(ValueTypeNull), dest)
		}
		if err := WriteInt(int32(len(value.Contents)), dest); err != nil {
			return fmt.Errorf("cannot write [value] length: %w", err)
		}
		if _, err := dest.Write(value.Contents); err != nil {
			return fmt.Errorf("cannot write [value] content: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown [value] type: %v", value.Type)
	}
}

func LengthOfValue(value *Value) (int, error) {
	if value == nil {
		return -1, errors.New("cannot compute length of a nil [value]")
	}
	switch value.Type {
	case ValueTypeNull, ValueTypeUnset:
		return LengthOfInt, nil
	case ValueTypeRegular:
		return LengthOfInt + len(value.Contents), nil
	default:
		return -1, fmt.Errorf("unknown [value] type: %v", value.Type)
	}
}

// positional [value]s

func ReadPositionalValues(source io.Reader, version ProtocolVersion) ([]*Value, error) {
	if length, err := ReadShort(source); err != nil {
		return nil, fmt.Errorf("cannot read positional [value]s length: %w", err)
	} else {
		decoded := make([]*Value, length)
		for i := uint16(0); i < length; i++ {
			if value, err := ReadValue(source); err != nil {
				return nil, fmt.Errorf("cannot read positional [value]s element %d content: %w", i, err)
			} else {
				decoded[i] = value
			}
		}
		return decoded, nil
	}
}

func WritePositionalValues(values []*Value, dest io.Writer, version ProtocolVersion) error {
	if err := WriteShort(uint16(len(values)), dest); err != nil {
		return fmt.Errorf("cannot write positional [value]s length: %w", err)
	}
	for i, value := range values {
		if err := WriteValue(value, dest, version); err != nil {
			return fmt.Errorf("cannot write positional [value]s element %d content: %w", i, err)
		}
	}
	return nil
}

func LengthOfPositionalValues(values []*Value) (length int, err error) {
	length += LengthOfShort
	for i, value := range values {
		var valueLength int
		if valueLength, err = LengthOfValue(value); err != nil {
			return -1, fmt.Errorf("cannot compute length of positional [value] %d: %w", i, err)
		}
		length += valueLength
	}
	return length, nil
}

// named [value]s

func ReadNamedValues(source io.Reader, version ProtocolVersion) (map[string]*Value, error) {
	if length, err := ReadShort(source); err != nil {
		return nil, fmt.Errorf("cannot read named [value]s length: %w", err)
	} else {
		decoded := make(map[string]*Value, length)
		for i := uint16(0); i < length; i++ {
			if name, err := ReadString(source); err != nil {
				return nil, fmt.Errorf("cannot read named [value]s entry %d name: %w", i, err)
			} else if value, err := ReadValue(source); err != nil {
				return nil, fmt.Errorf("cannot read named [value]s entry %d content: %w", i, err)
			} else {
				decoded[name] = value
			}
		}
		return decoded, nil
	}
}

func WriteNamedValues(values map[string]*Value, dest io.Writer, version ProtocolVersion) error {
	if err := WriteShort(uint16(len(values)), dest); err != nil {
		return fmt.Errorf("cannot write named [value]s length: %w", err)
	}
	for name, value := range values {
		if err := WriteString(name, dest); err != nil {
			return fmt.Errorf("cannot write named [value]s entry %q name: %w", name, err)
		}
		if err := WriteValue(value, dest, version); err != nil {
			return fmt.Errorf("cannot write named [value]s entry %q content: %w", name, err)
		}
	}
	return nil
}

func LengthOfNamedValues(values map[string]*Value) (length int, err error) {
	length += LengthOfShort
	for name, value := range values {
		var valueLength int
		if valueLength, err = LengthOfValue(value); err != nil {
			return -1, fmt.Errorf("cannot compute length of named [value]s: %w", err)
		}
		length += LengthOfString(name) + valueLength
	}
	return length, nil
}
