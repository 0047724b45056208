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
	"context"
	"errors"
	"fmt"

	"github.com/cqlwire/driver/cluster"
	"github.com/cqlwire/driver/conn"
	"github.com/cqlwire/driver/frame"
	"github.com/cqlwire/driver/message"
	"github.com/cqlwire/driver/preparedcache"
	"github.com/cqlwire/driver/primitive"
)

// ProtocolVersion is the native protocol version this driver speaks on the wire.
const ProtocolVersion = primitive.ProtocolVersion4

// Session is the user-facing entry point: it owns a cluster.Manager and the prepared-statement cache shared by
// every pool in that cluster, and turns Statement/Batch values into wire requests.
type Session struct {
	manager *cluster.Manager
}

// Connect builds a cluster.Manager from cfg, starts its control connections, and returns a ready Session.
func Connect(ctx context.Context, cfg cluster.Config) (*Session, error) {
	manager, err := cluster.NewManager(cfg)
	if err != nil {
		var badPolicy *cluster.ErrUnknownLoadBalancing
		if errors.As(err, &badPolicy) {
			return nil, &InvalidArguments{Reason: badPolicy.Error()}
		}
		return nil, &ConnectionError{Reason: "cannot create cluster manager", Cause: err}
	}
	if err := manager.Start(ctx); err != nil {
		return nil, &ConnectionError{Reason: "cannot start cluster manager", Cause: err}
	}
	return &Session{manager: manager}, nil
}

// Close releases every pool and control connection owned by the session.
func (s *Session) Close() {
	s.manager.Close()
}

func (s *Session) checkout() (*conn.CqlClientConnection, error) {
	pool, err := s.manager.Checkout()
	if err != nil {
		return nil, &ConnectionError{Reason: "no pool available", Cause: err}
	}
	return pool.Connection(), nil
}

func (s *Session) cache() *preparedcache.Cache {
	return s.manager.PreparedCache()
}

// wrapRequestError turns the error from a connection-level Send/SendAndReceive/ExecuteWithReprepare call into the
// documented taxonomy: a *TimeoutError when the request's own deadline elapsed, a *ConnectionError otherwise.
func wrapRequestError(reason string, err error) error {
	if errors.Is(err, conn.ErrRequestTimeout) {
		return &TimeoutError{Cause: err}
	}
	return &ConnectionError{Reason: reason, Cause: err}
}

// Prepare sends a PREPARE request for query, inserts the result into the cluster-wide prepared cache, and returns
// a PreparedStatement bound by the caller's subsequent Execute calls to whatever values it supplies.
func (s *Session) Prepare(ctx context.Context, query string) (*PreparedStatement, error) {
	entry, err := s.cache().GetOrPrepare(ctx, query, func(ctx context.Context, query string) (*preparedcache.Entry, error) {
		connection, err := s.checkout()
		if err != nil {
			return nil, err
		}
		request := frame.NewFrame(ProtocolVersion, conn.ManagedStreamId, &message.Prepare{Query: query})
		response, err := connection.SendAndReceive(request)
		if err != nil {
			return nil, wrapRequestError("PREPARE failed", err)
		}
		prepared, ok := response.Body.Message.(*message.PreparedResult)
		if !ok {
			if errMsg, ok := response.Body.Message.(message.Error); ok {
				return nil, &ServerError{Message: errMsg}
			}
			return nil, &ProtocolViolation{Reason: fmt.Sprintf("expected RESULT PREPARED, got %v", response.Body.Message)}
		}
		keyspace, table := preparedTarget(prepared)
		return &preparedcache.Entry{
			PreparedID:        prepared.PreparedQueryId,
			VariablesMetadata: prepared.VariablesMetadata,
			ResultMetadata:    prepared.ResultMetadata,
			Keyspace:          keyspace,
			Table:             table,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &PreparedStatement{Query: query, cachedEntry: entry}, nil
}

// Execute runs statement with opts and returns the single page of results it produced. For a PreparedStatement
// whose cached entry has gone stale on the server (dropped table, schema change), Execute transparently
// re-prepares and retries once.
func (s *Session) Execute(ctx context.Context, statement Statement, opts ExecOptions) (*Page, error) {
	switch st := statement.(type) {
	case *SimpleStatement:
		return s.executeSimple(ctx, st, opts)
	case *PreparedStatement:
		return s.executePrepared(ctx, st, opts)
	default:
		return nil, &InvalidArguments{Reason: fmt.Sprintf("unsupported statement type %T", statement)}
	}
}

func (s *Session) executeSimple(ctx context.Context, st *SimpleStatement, opts ExecOptions) (*Page, error) {
	connection, err := s.checkout()
	if err != nil {
		return nil, err
	}
	queryOptions, err := encodeSimpleOptions(st.Values, opts, ProtocolVersion)
	if err != nil {
		return nil, err
	}
	request := frame.NewFrame(ProtocolVersion, conn.ManagedStreamId, &message.Query{Query: st.Query, Options: queryOptions})
	response, err := connection.SendAndReceive(request)
	if err != nil {
		return nil, wrapRequestError("QUERY failed", err)
	}
	return s.toPage(response)
}

func (s *Session) executePrepared(ctx context.Context, st *PreparedStatement, opts ExecOptions) (*Page, error) {
	entry := st.cachedEntry
	if entry == nil {
		var err error
		st, err = s.Prepare(ctx, st.Query)
		if err != nil {
			return nil, err
		}
		entry = st.cachedEntry
	}
	queryOptions, err := encodePreparedOptions(entry, st.Positional, st.Named, opts, ProtocolVersion)
	if err != nil {
		return nil, err
	}
	connection, err := s.checkout()
	if err != nil {
		return nil, err
	}
	execute := &message.Execute{QueryId: entry.PreparedID, Options: queryOptions}
	response, err := connection.ExecuteWithReprepare(st.Query, execute, ProtocolVersion, conn.ManagedStreamId)
	if err != nil {
		return nil, wrapRequestError("EXECUTE failed", err)
	}
	return s.toPage(response)
}

// preparedTarget returns the keyspace/table a PREPARE response's bound or result columns target, so
// cluster.Manager can invalidate the cache entry on a SCHEMA_CHANGE to that keyspace/table. Bind-variable metadata
// is checked first since it is present for every DML statement (SELECT/INSERT/UPDATE/DELETE all bind against a
// table); result metadata only exists for statements that return rows.
func preparedTarget(prepared *message.PreparedResult) (keyspace, table string) {
	if prepared.VariablesMetadata != nil {
		for _, col := range prepared.VariablesMetadata.Columns {
			if col.Table != "" {
				return col.Keyspace, col.Table
			}
		}
	}
	if prepared.ResultMetadata != nil {
		for _, col := range prepared.ResultMetadata.Columns {
			if col.Table != "" {
				return col.Keyspace, col.Table
			}
		}
	}
	return "", ""
}

func (s *Session) toPage(response *frame.Frame) (*Page, error) {
	switch msg := response.Body.Message.(type) {
	case *message.RowsResult:
		return newPage(msg, ProtocolVersion)
	case *message.VoidResult, *message.SetKeyspaceResult, *message.SchemaChangeResult:
		return &Page{}, nil
	default:
		if errMsg, ok := response.Body.Message.(message.Error); ok {
			return nil, &ServerError{Message: errMsg}
		}
		return nil, &ProtocolViolation{Reason: fmt.Sprintf("unexpected response to query: %v", msg)}
	}
}

// ExecuteBatch sends b as a single BATCH request.
func (s *Session) ExecuteBatch(ctx context.Context, b *Batch) error {
	msg, err := b.toMessage(ProtocolVersion)
	if err != nil {
		return err
	}
	connection, err := s.checkout()
	if err != nil {
		return err
	}
	request := frame.NewFrame(ProtocolVersion, conn.ManagedStreamId, msg)
	response, err := connection.SendAndReceive(request)
	if err != nil {
		return wrapRequestError("BATCH failed", err)
	}
	_, err = s.toPage(response)
	return err
}

// Stream returns a PageStream that lazily pulls statement's result set one page at a time.
func (s *Session) Stream(statement Statement, opts ExecOptions) *PageStream {
	return s.NewPageStream(statement, opts)
}
