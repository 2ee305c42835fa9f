// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package mpint

import "sync"

// CompactPowersOfTen holds 10^0..10^19, the range representable in a
// uint64. These seed the process-wide cache below and are also used
// directly by the decimal comparator's compact-path division trick.
var CompactPowersOfTen = [20]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000, // requires the full 64 bits
}

// powersOfTen is a process-wide, lazily extended cache of BigUInt values
// where element k equals 10^k. It is effectively an append-only log: once
// published, an element's value never changes, so readers may use a
// returned value lock-free. Only growth is serialized.
var powersOfTen struct {
	mu    sync.Mutex
	cache []BigUInt
}

// PowerOfTen returns 10^exponent as a BigUInt, extending the shared cache
// under mutual exclusion if the requested exponent hasn't been computed
// yet.
func PowerOfTen(exponent uint32) BigUInt {
	powersOfTen.mu.Lock()
	defer powersOfTen.mu.Unlock()

	if len(powersOfTen.cache) == 0 {
		powersOfTen.cache = make([]BigUInt, 0, len(CompactPowersOfTen))
		for _, v := range CompactPowersOfTen {
			powersOfTen.cache = append(powersOfTen.cache, FromUint64(v))
		}
	}
	for uint32(len(powersOfTen.cache)) <= exponent {
		last := powersOfTen.cache[len(powersOfTen.cache)-1]
		powersOfTen.cache = append(powersOfTen.cache, last.MulUint32(10))
	}
	return powersOfTen.cache[exponent]
}
