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

// Command benchcmp drives the serde comparator/skipper table over a batch
// of fixture-generated tuples and prints how long a full sort-key pass
// took. It stands in for a real dispatcher only well enough to produce a
// timing number; it is not part of the core's contract.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/shuffledb/recordcmp/internal/fixture"
)

func main() {
	n := flag.Int("n", 10000, "number of fixture tuples to generate")
	seed := flag.Int64("seed", 1, "random seed for fixture generation")
	flag.Parse()

	rnd := rand.New(rand.NewSource(*seed))
	tuples := fixture.Generate(rnd, *n)

	start := time.Now()
	var comparisons int
	for i := 1; i < len(tuples); i++ {
		fixture.Compare(tuples[i-1], tuples[i])
		comparisons++
	}
	elapsed := time.Since(start)

	log.Printf("compared %d adjacent tuple pairs out of %d in %s (%.0f ns/op)",
		comparisons, *n, elapsed, float64(elapsed.Nanoseconds())/float64(comparisons))
}
