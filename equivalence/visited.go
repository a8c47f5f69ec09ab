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

package equivalence

import "reflect"

// refKey identifies a reference (pointer, map or slice header) for cycle
// suppression. The type is part of the key: a struct and its first field
// share an address but are distinct references. For slices the length is
// part of the key too, since x[:2] and x share a base pointer but expose
// different elements.
type refKey struct {
	ptr uintptr
	len int
	typ reflect.Type
}

func refOf(v reflect.Value) refKey {
	k := refKey{ptr: v.Pointer(), typ: v.Type()}
	if v.Kind() == reflect.Slice {
		k.len = v.Len()
	}
	return k
}

// visitedPairs records which (actual, expected) reference pairs have already
// been compared during one top-level Compare call, keyed by the actual
// side's identity. A pair found here is treated as equivalent without
// further traversal, which both breaks reference cycles and avoids
// re-diagnosing shared substructure reached via multiple paths.
//
// Scoped to a single Compare invocation and discarded when it returns.
type visitedPairs map[refKey]map[refKey]struct{}

func (v visitedPairs) seen(actual, expected refKey) bool {
	_, ok := v[actual][expected]
	return ok
}

func (v visitedPairs) record(actual, expected refKey) {
	set := v[actual]
	if set == nil {
		set = make(map[refKey]struct{}, 1)
		v[actual] = set
	}
	set[expected] = struct{}{}
}
