// Copyright 2025 The Shouldly Authors.
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

// Package equivalence implements a deep, cycle-safe structural equivalence
// check over arbitrary Go object graphs.
//
// Compare walks two parallel graphs depth-first, dispatching on the shape of
// each position (nil, scalar, string, ordered sequence, map, pointer,
// struct), and stops at the first divergence, reporting the exact Path to
// it. Reference cycles and shared substructure are detected per top-level
// call and short-circuited as equivalent, so self-referential graphs
// terminate.
//
// Failures come in two distinct kinds, both returned as errors and
// distinguishable with errors.As:
//
//   - *Mismatch: the graphs diverge. Carries the two values and the Path.
//   - *ShapeError: a position has a shape the engine cannot enumerate
//     (chan, func, or a registered member requiring index arguments). This
//     is a misuse of the engine, not a content difference.
//
// The engine only supplies structured facts; rendering a human-readable
// message is left to the caller (see the should and comparison packages).
//
// Each Compare call uses its own path and visited-pair state, so concurrent
// calls are independent. Recursion depth is bounded only by the depth of the
// input graphs; pathologically deep graphs can exhaust the stack.
package equivalence
