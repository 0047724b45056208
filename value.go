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
	"fmt"

	"github.com/cqlwire/driver/datatype"
	"github.com/cqlwire/driver/datacodec"
	"github.com/cqlwire/driver/primitive"
)

// Value is one bound value supplied by the caller. Hint names the CQL type to encode it as when no prior
// column-type metadata is available — which is always the case for a Simple statement's bind markers, since
// nothing was ever PREPAREd to tell the driver what type column N is. Prepared-statement binds ignore Hint and
// use the type from the PREPARE response instead.
type Value struct {
	Hint string
	Go   interface{}
}

// Int wraps v as the textual-hint {"int", v} form required to bind an integer value against a Simple statement.
func Int(v int32) Value { return Value{Hint: "int", Go: v} }

// BigInt wraps v as the textual-hint {"bigint", v} form required to bind a 64-bit integer value against a Simple
// statement.
func BigInt(v int64) Value { return Value{Hint: "bigint", Go: v} }

// Text wraps a string value.
func Text(v string) Value { return Value{Hint: "varchar", Go: v} }

// Bool wraps a boolean value.
func Bool(v bool) Value { return Value{Hint: "boolean", Go: v} }

// Blob wraps a raw byte-slice value.
func Blob(v []byte) Value { return Value{Hint: "blob", Go: v} }

// Raw wraps any Go value with an explicit CQL type name hint, for types without a dedicated helper.
func Raw(hint string, v interface{}) Value { return Value{Hint: hint, Go: v} }

var hintedTypes = map[string]datatype.DataType{
	"ascii":     datatype.Ascii,
	"bigint":    datatype.Bigint,
	"blob":      datatype.Blob,
	"boolean":   datatype.Boolean,
	"counter":   datatype.Counter,
	"date":      datatype.Date,
	"decimal":   datatype.Decimal,
	"double":    datatype.Double,
	"duration":  datatype.Duration,
	"float":     datatype.Float,
	"inet":      datatype.Inet,
	"int":       datatype.Int,
	"smallint":  datatype.Smallint,
	"time":      datatype.Time,
	"timestamp": datatype.Timestamp,
	"timeuuid":  datatype.Timeuuid,
	"tinyint":   datatype.Tinyint,
	"uuid":      datatype.Uuid,
	"varchar":   datatype.Varchar,
	"text":      datatype.Varchar,
	"varint":    datatype.Varint,
}

// encodeHinted encodes v using the CQL type named by v.Hint, for values with no prior column-type metadata.
func encodeHinted(v Value, version primitive.ProtocolVersion) (*primitive.Value, error) {
	dt, ok := hintedTypes[v.Hint]
	if !ok {
		return nil, &MalformedValue{Reason: fmt.Sprintf("unknown type hint %q", v.Hint)}
	}
	return encodeTyped(dt, v.Go, version)
}

// encodeTyped encodes goValue as the given CQL data type, as used for prepared-statement binds whose type comes
// from the PREPARE response's VariablesMetadata.
func encodeTyped(dt datatype.DataType, goValue interface{}, version primitive.ProtocolVersion) (*primitive.Value, error) {
	if goValue == nil {
		return primitive.NewNullValue(), nil
	}
	codec, err := datacodec.NewCodec(dt)
	if err != nil {
		return nil, &MalformedValue{Reason: fmt.Sprintf("no codec for %v", dt), Cause: err}
	}
	contents, err := codec.Encode(goValue, version)
	if err != nil {
		return nil, &MalformedValue{Reason: fmt.Sprintf("cannot encode %v as %v", goValue, dt), Cause: err}
	}
	return primitive.NewValue(contents), nil
}

// decodeColumn decodes the raw column bytes of a single result row cell into a native Go value, following
// datacodec.PreferredGoType for the column's CQL type.
func decodeColumn(dt datatype.DataType, contents []byte, version primitive.ProtocolVersion) (interface{}, error) {
	codec, err := datacodec.NewCodec(dt)
	if err != nil {
		return nil, &MalformedValue{Reason: fmt.Sprintf("no codec for %v", dt), Cause: err}
	}
	goType, err := datacodec.PreferredGoType(dt)
	if err != nil {
		return nil, &MalformedValue{Reason: fmt.Sprintf("no preferred Go type for %v", dt), Cause: err}
	}
	dest := newPointer(goType)
	if _, err := codec.Decode(contents, dest, version); err != nil {
		return nil, &MalformedValue{Reason: fmt.Sprintf("cannot decode column as %v", dt), Cause: err}
	}
	return derefPointer(dest), nil
}
