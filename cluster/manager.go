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
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/cqlwire/driver/preparedcache"
)

// errNotConnected is returned by Checkout when no pool is currently up.
var errNotConnected = fmt.Errorf("cluster: not connected")

// event is something the control connections or the public API hands to the single actor goroutine. Every mutation
// of nodes/pools happens inside run, so none of these fields need their own lock.
type event struct {
	// apply runs inside the actor goroutine and may freely read/write Manager's node/pool state.
	apply func(m *Manager)
}

// Manager owns the configured node list, the pool for each up node, the load-balancing policy, and the
// cluster-wide prepared cache. All mutation of its node/pool state happens inside the single run goroutine; this
// is the only component of the driver that serializes access this way instead of using a mutex, matching the
// teacher's actor-per-connection style generalized to one actor per cluster.
type Manager struct {
	config Config
	policy policy
	cache  *preparedcache.Cache

	nodes []Node
	pools map[string]*Pool

	events  chan event
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	closeMu sync.Mutex
	closed  bool
}

// NewManager validates cfg, applies its defaults, and returns a Manager that has not yet started any connections.
// Call Start to spawn control connections and begin accepting Checkout calls.
func NewManager(cfg Config) (*Manager, error) {
	cfg = cfg.WithDefaults()
	if !knownLoadBalancing[cfg.LoadBalancing] {
		return nil, &ErrUnknownLoadBalancing{Name: cfg.LoadBalancing}
	}
	cacheSize := cfg.PreparedCacheSize
	if cacheSize <= 0 {
		cacheSize = preparedcache.DefaultSize
	}
	cache, err := preparedcache.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("cluster: cannot create prepared cache: %w", err)
	}
	addresses := cfg.Addresses()
	if len(addresses) == 0 {
		return nil, fmt.Errorf("cluster: no nodes configured")
	}
	nodes := make([]Node, 0, len(addresses))
	seen := make(map[string]bool, len(addresses))
	for _, raw := range addresses {
		address, err := normalizeAddress(raw)
		if err != nil {
			return nil, err
		}
		if seen[address] {
			log.Warn().Msgf("cluster: duplicate node address %v, skipping", address)
			continue
		}
		seen[address] = true
		nodes = append(nodes, Node{Address: address, Status: NodeStatusUnknown})
	}
	return &Manager{
		config: cfg,
		policy: newPolicy(cfg.LoadBalancing),
		cache:  cache,
		nodes:  nodes,
		pools:  make(map[string]*Pool),
		events: make(chan event, 64),
	}, nil
}

// PreparedCache returns the cluster-wide prepared statement cache.
func (m *Manager) PreparedCache() *preparedcache.Cache {
	return m.cache
}

// Start spawns one control connection per configured node and begins the actor loop. Each control connection
// reports back to the actor via activate once its handshake and REGISTER complete, which is what actually starts
// the node's data pool.
func (m *Manager) Start(ctx context.Context) error {
	m.ctx, m.cancel = context.WithCancel(ctx)
	m.wg.Add(1)
	go m.run()
	for _, node := range m.nodes {
		m.wg.Add(1)
		go m.runControlConnection(node.Address)
	}
	return nil
}

// Close stops the actor loop, tears down every control connection and data pool, and makes the Manager unusable.
func (m *Manager) Close() {
	m.closeMu.Lock()
	if m.closed {
		m.closeMu.Unlock()
		return
	}
	m.closed = true
	m.closeMu.Unlock()
	m.cancel()
	m.wg.Wait()
}

func (m *Manager) run() {
	defer m.wg.Done()
	for {
		select {
		case <-m.ctx.Done():
			for address, pool := range m.pools {
				pool.Close()
				delete(m.pools, address)
			}
			return
		case evt := <-m.events:
			evt.apply(m)
		}
	}
}

// submit hands apply to the actor loop and blocks until it is applied, or the Manager is closed first.
func (m *Manager) submit(apply func(m *Manager)) {
	done := make(chan struct{})
	select {
	case m.events <- event{apply: func(m *Manager) {
		apply(m)
		close(done)
	}}:
	case <-m.ctx.Done():
		return
	}
	select {
	case <-done:
	case <-m.ctx.Done():
	}
}

// Checkout selects an up pool according to the configured load-balancing policy. It fails with errNotConnected if
// no pool is currently up.
func (m *Manager) Checkout() (*Pool, error) {
	var result *Pool
	var err error
	m.submit(func(m *Manager) {
		var upIndexes []int
		for i, node := range m.nodes {
			if node.Status == NodeStatusUp {
				if _, ok := m.pools[node.Address]; ok {
					upIndexes = append(upIndexes, i)
				}
			}
		}
		chosen := m.policy.choose(upIndexes)
		if chosen < 0 {
			err = errNotConnected
			return
		}
		result = m.pools[m.nodes[chosen].Address]
	})
	return result, err
}

// activate starts the data pool for address, if it is not already running, and marks the node up. Called by a
// control connection once its handshake and REGISTER complete.
func (m *Manager) activate(address string) {
	m.submit(func(m *Manager) {
		for i := range m.nodes {
			if m.nodes[i].Address != address {
				continue
			}
			m.nodes[i].Status = NodeStatusUp
			if _, exists := m.pools[address]; exists {
				return
			}
			pool, err := newPool(m.ctx, address, m.config, m.cache)
			if err != nil {
				log.Error().Err(err).Msgf("cluster: could not start pool for %v", address)
				m.nodes[i].Status = NodeStatusDown
				return
			}
			m.pools[address] = pool
			return
		}
		log.Warn().Msgf("cluster: activate for unconfigured address %v", address)
	})
}

// deactivate terminates and removes the pool for address, if any, and marks the node down.
func (m *Manager) deactivate(address string) {
	m.submit(func(m *Manager) {
		for i := range m.nodes {
			if m.nodes[i].Address == address {
				m.nodes[i].Status = NodeStatusDown
			}
		}
		if pool, ok := m.pools[address]; ok {
			pool.Close()
			delete(m.pools, address)
		}
	})
}
