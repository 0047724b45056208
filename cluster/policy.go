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

import "math/rand"

// policy chooses which of the currently up pools, in the configured node order, serves the next request. It is
// a closed, named-string-dispatched set (random, priority), matching the way the teacher dispatches compression
// algorithms by name.
type policy interface {
	// choose returns the element of up (a node index) of the pool to use, or -1 if up is empty.
	choose(up []int) int
}

func newPolicy(name LoadBalancing) policy {
	switch name {
	case LoadBalancingPriority:
		return priorityPolicy{}
	default:
		return randomPolicy{}
	}
}

// randomPolicy picks uniformly among the currently up pools.
type randomPolicy struct{}

func (randomPolicy) choose(up []int) int {
	if len(up) == 0 {
		return -1
	}
	return up[rand.Intn(len(up))]
}

// priorityPolicy always picks the first pool in configured node order that is up.
type priorityPolicy struct{}

func (priorityPolicy) choose(up []int) int {
	if len(up) == 0 {
		return -1
	}
	return up[0]
}
