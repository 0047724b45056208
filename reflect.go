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

import "reflect"

// newPointer allocates a new, zeroed value of type t and returns a pointer to it, suitable as the dest argument
// to a datacodec.Decoder.
func newPointer(t reflect.Type) interface{} {
	return reflect.New(t).Interface()
}

// derefPointer returns the value pointed to by ptr, as produced by newPointer.
func derefPointer(ptr interface{}) interface{} {
	return reflect.ValueOf(ptr).Elem().Interface()
}
