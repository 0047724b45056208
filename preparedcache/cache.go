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

package preparedcache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/cqlwire/driver/message"
)

// DefaultSize is the number of distinct statement texts kept before the least recently used entry is evicted.
const DefaultSize = 1000

// Entry is everything a connection needs to resubmit an EXECUTE for a statement that has already been prepared:
// the server-assigned id and the bind/result metadata that came back with it.
type Entry struct {
	PreparedID        []byte
	VariablesMetadata *message.VariablesMetadata
	ResultMetadata    *message.RowsMetadata
	// Keyspace and Table identify what the statement targets, so a SCHEMA_CHANGE event can invalidate every
	// entry touching the affected keyspace/table without parsing CQL. Either may be empty if unknown.
	Keyspace string
	Table    string
}

// Cache maps statement text to its Entry. It is safe for concurrent use. Lookups and inserts are O(1); concurrent
// misses for the same query string are coalesced by GetOrPrepare via singleflight, so a burst of callers executing
// the same not-yet-prepared statement triggers exactly one PREPARE.
type Cache struct {
	entries *lru.Cache[string, *Entry]
	group   singleflight.Group
	mu      sync.RWMutex
}

// New creates a Cache holding at most size distinct statement texts.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, *Entry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Lookup returns the cached prepared id for query, satisfying the minimal interface a conn.CqlClientConnection
// needs to detect a cache hit before sending EXECUTE.
func (c *Cache) Lookup(query string) ([]byte, bool) {
	entry, ok := c.LookupEntry(query)
	if !ok {
		return nil, false
	}
	return entry.PreparedID, true
}

// LookupEntry returns the full cached Entry for query, if present.
func (c *Cache) LookupEntry(query string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries.Get(query)
}

// Insert satisfies the minimal conn.PreparedCache interface, storing just the prepared id. Callers that have the
// full metadata should use InsertEntry instead.
func (c *Cache) Insert(query string, preparedID []byte) {
	c.InsertEntry(query, &Entry{PreparedID: preparedID})
}

// UpdatePreparedID atomically replaces the prepared id of the cached Entry for query, leaving its
// VariablesMetadata/ResultMetadata/Keyspace/Table untouched. This is what a re-prepare-on-miss must use instead of
// Insert: Insert's bare Entry would otherwise discard the metadata a later EXECUTE needs to bind against, silently
// degrading the shared entry for every other caller. If no entry is cached yet (it was evicted or never inserted),
// this falls back to storing a bare id, same as Insert.
func (c *Cache) UpdatePreparedID(query string, preparedID []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	existing, ok := c.entries.Peek(query)
	if !ok {
		c.entries.Add(query, &Entry{PreparedID: preparedID})
		return
	}
	updated := *existing
	updated.PreparedID = preparedID
	c.entries.Add(query, &updated)
}

// InsertEntry stores or atomically replaces the cached Entry for query.
func (c *Cache) InsertEntry(query string, entry *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Add(query, entry)
}

// Invalidate removes any cached entry for query.
func (c *Cache) Invalidate(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Remove(query)
}

// InvalidateKeyspaceTable removes every cached entry whose Entry.Keyspace/Entry.Table match, in response to a
// SCHEMA_CHANGE event. An empty table matches every entry in the keyspace.
func (c *Cache) InvalidateKeyspaceTable(keyspace, table string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, query := range c.entries.Keys() {
		entry, ok := c.entries.Peek(query)
		if !ok || entry.Keyspace != keyspace {
			continue
		}
		if table == "" || entry.Table == table {
			c.entries.Remove(query)
			log.Debug().Msgf("preparedcache: invalidated %q on schema change to %v.%v", query, keyspace, table)
		}
	}
}

// PrepareFunc prepares query against a live connection and returns the resulting Entry.
type PrepareFunc func(ctx context.Context, query string) (*Entry, error)

// GetOrPrepare returns the cached Entry for query, preparing it via prepare if absent. Concurrent calls for the
// same query string while a PREPARE is in flight share its result instead of each issuing their own PREPARE.
func (c *Cache) GetOrPrepare(ctx context.Context, query string, prepare PrepareFunc) (*Entry, error) {
	if entry, ok := c.LookupEntry(query); ok {
		return entry, nil
	}
	result, err, _ := c.group.Do(query, func() (interface{}, error) {
		if entry, ok := c.LookupEntry(query); ok {
			return entry, nil
		}
		entry, err := prepare(ctx, query)
		if err != nil {
			return nil, err
		}
		c.InsertEntry(query, entry)
		return entry, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Entry), nil
}
