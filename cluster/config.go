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

// Package cluster owns the set of nodes a driver talks to: one connection pool and one control connection per up
// node, a load-balancing policy choosing which pool serves the next request, and a single actor goroutine that is
// the only writer of the pool map.
package cluster

import (
	"fmt"
	"time"

	"github.com/cqlwire/driver/conn"
	"github.com/cqlwire/driver/primitive"
)

const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 9042
	DefaultPoolSize       = 1
	DefaultIdleInterval   = 30 * time.Second
	DefaultConnectTimeout = 5 * time.Second
)

// LoadBalancing names one of the closed set of load-balancing policies.
type LoadBalancing string

const (
	LoadBalancingRandom   LoadBalancing = "random"
	LoadBalancingPriority LoadBalancing = "priority"
)

// knownLoadBalancing is the closed set of load-balancing policy names Config.LoadBalancing accepts.
var knownLoadBalancing = map[LoadBalancing]bool{
	LoadBalancingRandom:   true,
	LoadBalancingPriority: true,
}

// ErrUnknownLoadBalancing reports a Config.LoadBalancing value outside the closed policy-name set. It is caller
// misuse, not a connectivity problem; cqlwire.Connect surfaces it as an InvalidArguments error.
type ErrUnknownLoadBalancing struct {
	Name LoadBalancing
}

func (e *ErrUnknownLoadBalancing) Error() string {
	return fmt.Sprintf("cluster: unknown load-balancing policy %q", e.Name)
}

// Config holds the user-visible cluster configuration enumerated in the external interfaces.
type Config struct {
	// Host and Port are used when Nodes is empty, to build a single-node cluster.
	Host string
	Port int
	// Nodes is a list of "host[:port]" contact points. When non-empty, it takes precedence over Host/Port.
	Nodes []string

	LoadBalancing  LoadBalancing
	PoolSize       int
	IdleInterval   time.Duration
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration

	Compression primitive.Compression
	// Authenticator is the capability consulted during each connection's AUTHENTICATE/AUTH_CHALLENGE exchange,
	// registered once at cluster start. conn.NewPlainTextAuthenticator wraps a username/password pair; a caller
	// wanting a different mechanism (SASL, Kerberos, ...) provides its own conn.Authenticator implementation. Nil
	// means no authentication.
	Authenticator conn.Authenticator

	// AfterConnect is invoked once per new data connection, immediately after it reaches conn.StateReady, before
	// the connection is handed to its pool.
	AfterConnect func(*conn.CqlClientConnection) error

	// PreparedCacheSize bounds the number of distinct statement texts kept in the cluster-wide prepared cache.
	// Zero selects preparedcache.DefaultSize.
	PreparedCacheSize int
}

// WithDefaults returns a copy of c with zero-valued fields replaced by their documented defaults.
func (c Config) WithDefaults() Config {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.LoadBalancing == "" {
		c.LoadBalancing = LoadBalancingRandom
	}
	if c.PoolSize < 1 {
		c.PoolSize = DefaultPoolSize
	}
	if c.IdleInterval == 0 {
		c.IdleInterval = DefaultIdleInterval
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = conn.DefaultReadTimeout
	}
	return c
}

// Addresses returns the configured contact points as "host:port" strings, falling back to Host:Port when Nodes is
// empty.
func (c Config) Addresses() []string {
	if len(c.Nodes) > 0 {
		return c.Nodes
	}
	return []string{addressWithDefaultPort(c.Host, c.Port)}
}
