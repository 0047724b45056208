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

	"github.com/cqlwire/driver/message"
)

// ConnectionError reports a socket/transport failure: refused, closed, timed out, or "no pool up".
type ConnectionError struct {
	Reason string
	Cause  error
}

func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("connection error (%v): %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("connection error: %v", e.Reason)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// ProtocolViolation reports a frame that could not be decoded according to the v4 wire format: a bad version byte,
// an unknown opcode, or a body length inconsistent with what follows.
type ProtocolViolation struct {
	Reason string
	Cause  error
}

func (e *ProtocolViolation) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("protocol violation (%v): %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("protocol violation: %v", e.Reason)
}

func (e *ProtocolViolation) Unwrap() error { return e.Cause }

// MalformedValue reports a bound value that could not be encoded for its target CQL type.
type MalformedValue struct {
	Reason string
	Cause  error
}

func (e *MalformedValue) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed value (%v): %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("malformed value: %v", e.Reason)
}

func (e *MalformedValue) Unwrap() error { return e.Cause }

// AuthenticationError reports a failed SASL handshake.
type AuthenticationError struct {
	Reason string
	Cause  error
}

func (e *AuthenticationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("authentication error (%v): %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("authentication error: %v", e.Reason)
}

func (e *AuthenticationError) Unwrap() error { return e.Cause }

// ServerError wraps an ERROR response the server sent back, preserving the original message so callers can branch
// on its primitive.ErrorCode.
type ServerError struct {
	Message message.Error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %v", e.Message)
}

func (e *ServerError) Unwrap() error { return nil }

// InvalidArguments reports a statement invocation that violates a tie-break rule: named values against a Simple
// statement, a named-value map in a BATCH child, etc.
type InvalidArguments struct {
	Reason string
}

func (e *InvalidArguments) Error() string {
	return fmt.Sprintf("invalid arguments: %v", e.Reason)
}

// TimeoutError reports an operation that did not complete within its configured timeout. The connection retains
// the stream id as poisoned until a late response arrives or the connection closes.
type TimeoutError struct {
	Cause error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout: %v", e.Cause)
}

func (e *TimeoutError) Unwrap() error { return e.Cause }
