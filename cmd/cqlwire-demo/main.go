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

// cqlwire-demo starts an in-process mock CQL server scripted to answer one query, then drives the real
// cqlwire.Session/cluster/conn stack against it over a loopback socket: connect, PREPARE, EXECUTE, print the rows.
// It exists to exercise the driver end to end without a live Cassandra-compatible node.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	cqlwire "github.com/cqlwire/driver"
	"github.com/cqlwire/driver/cluster"
	"github.com/cqlwire/driver/conn"
	"github.com/cqlwire/driver/datatype"
	"github.com/cqlwire/driver/message"
	"github.com/cqlwire/driver/primitive"
)

const (
	listenAddress = "127.0.0.1:19142"
	query         = "SELECT code, name FROM demo.users WHERE code = ?"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	server := newMockServer()
	if err := server.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot start mock server")
	}
	defer server.Close()

	session, err := cqlwire.Connect(ctx, cluster.Config{
		Host:           "127.0.0.1",
		Port:           19142,
		PoolSize:       1,
		ConnectTimeout: 5 * time.Second,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect session")
	}
	defer session.Close()

	prepared, err := session.Prepare(ctx, query)
	if err != nil {
		log.Fatal().Err(err).Msg("PREPARE failed")
	}

	prepared.Positional = []interface{}{int32(7)}
	page, err := session.Execute(ctx, prepared, cqlwire.ExecOptions{Consistency: primitive.ConsistencyLevelOne})
	if err != nil {
		log.Fatal().Err(err).Msg("EXECUTE failed")
	}

	fmt.Printf("columns: %v\n", page.Columns)
	for i, row := range page.Rows {
		fmt.Printf("row %d: %v\n", i, row)
	}
}

// newMockServer wires conn.NewDriverConnectionInitializationHandler (handshake, OPTIONS/STARTUP negotiation,
// USE keyspace, REGISTER, system-table queries) ahead of conn.NewPreparedStatementHandler, which scripts the one
// query this demo cares about: PREPARE returns a fixed id, EXECUTE returns a single row built from the bound value.
func newMockServer() *conn.CqlServer {
	columns := &message.RowsMetadata{
		ColumnCount: 2,
		Columns: []*message.ColumnMetadata{
			{Keyspace: "demo", Table: "users", Name: "code", Index: 0, Type: datatype.Int},
			{Keyspace: "demo", Table: "users", Name: "name", Index: 1, Type: datatype.Varchar},
		},
	}
	variables := &message.VariablesMetadata{
		Columns: []*message.ColumnMetadata{
			{Keyspace: "demo", Table: "users", Name: "code", Index: 0, Type: datatype.Int},
		},
	}
	rows := func(options *message.QueryOptions) message.RowSet {
		code := []byte{0, 0, 0, 7}
		if len(options.PositionalValues) > 0 && options.PositionalValues[0] != nil {
			code = options.PositionalValues[0].Contents
		}
		return message.RowSet{
			{code, []byte("grace hopper")},
		}
	}
	preparedHandler := conn.NewPreparedStatementHandler(query, variables, columns, rows)
	initHandler := conn.NewDriverConnectionInitializationHandler("demo-cluster", "demo-dc", func(string) {})
	server := conn.NewCqlServer(listenAddress, nil)
	server.RequestHandlers = []conn.RequestHandler{conn.NewCompositeRequestHandler(initHandler, preparedHandler)}
	return server
}
