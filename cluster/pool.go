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

package cluster

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cqlwire/driver/conn"
	"github.com/cqlwire/driver/frame"
	"github.com/cqlwire/driver/message"
	"github.com/cqlwire/driver/primitive"
)

// Pool is one or more data connections to a single up node, sharing the cluster-wide prepared cache.
type Pool struct {
	address     string
	connections []*conn.CqlClientConnection
	next        uint32
}

func newPool(ctx context.Context, address string, cfg Config, cache conn.PreparedCache) (*Pool, error) {
	pool := &Pool{address: address}
	for i := 0; i < cfg.PoolSize; i++ {
		connection, err := dial(ctx, address, cfg, cache)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("pool %v: cannot open connection %d/%d: %w", address, i+1, cfg.PoolSize, err)
		}
		pool.connections = append(pool.connections, connection)
		go idleHeartbeat(ctx, connection, cfg.IdleInterval)
	}
	log.Info().Msgf("cluster: pool for %v started with %d connection(s)", address, len(pool.connections))
	return pool, nil
}

// idleHeartbeat sends an OPTIONS request on connection every interval, the same probe negotiateCompression uses
// during the handshake, so a data connection sitting idle between queries is still exercised often enough for the
// peer (and the OS) to notice a half-open socket before a real request does. It returns once ctx is done or the
// connection closes.
func idleHeartbeat(ctx context.Context, connection *conn.CqlClientConnection, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if connection.IsClosed() {
				return
			}
			options := frame.NewFrame(primitive.ProtocolVersion4, conn.ManagedStreamId, &message.Options{})
			if _, err := connection.SendAndReceive(options); err != nil {
				log.Warn().Err(err).Msgf("cluster: idle heartbeat failed for %v", connection)
			}
		}
	}
}

func dial(ctx context.Context, address string, cfg Config, cache conn.PreparedCache) (*conn.CqlClientConnection, error) {
	client := &conn.CqlClient{
		RemoteAddress:  address,
		Authenticator:  cfg.Authenticator,
		Compression:    cfg.Compression,
		MaxInFlight:    conn.DefaultMaxInFlight,
		MaxPending:     conn.DefaultMaxPending,
		ConnectTimeout: cfg.ConnectTimeout,
		ReadTimeout:    cfg.ReadTimeout,
	}
	connection, err := client.ConnectAndInit(ctx, primitive.ProtocolVersion4, conn.ManagedStreamId)
	if err != nil {
		return nil, err
	}
	connection.SetPreparedCache(cache)
	if cfg.AfterConnect != nil {
		if err := cfg.AfterConnect(connection); err != nil {
			_ = connection.Close()
			return nil, fmt.Errorf("after_connect hook failed: %w", err)
		}
	}
	return connection, nil
}

// Connection returns one of the pool's connections, round-robin.
func (p *Pool) Connection() *conn.CqlClientConnection {
	n := atomic.AddUint32(&p.next, 1)
	return p.connections[int(n)%len(p.connections)]
}

// Close closes every connection in the pool.
func (p *Pool) Close() {
	for _, connection := range p.connections {
		if err := connection.Close(); err != nil {
			log.Error().Err(err).Msgf("cluster: error closing connection in pool %v", p.address)
		}
	}
}
