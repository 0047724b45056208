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

// Package preparedcache caches the server-assigned id returned by a PREPARE request, keyed by the query string the
// statement was prepared from. A bounded LRU keeps memory proportional to the number of distinct statement texts a
// long-lived cluster actually sees, and singleflight collapses concurrent GetOrPrepare calls for the same query
// string into a single in-flight PREPARE round trip.
package preparedcache
