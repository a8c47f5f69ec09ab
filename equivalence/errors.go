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

import (
	"fmt"
	"reflect"
)

// Mismatch reports the first divergence found between the two graphs. At
// most one Mismatch is produced per Compare call; the comparison stops as
// soon as it is raised.
//
// Actual and Expected hold the diverging values at Path. For a type
// mismatch they hold the two reflect.Types; for a length mismatch the two
// lengths.
type Mismatch struct {
	Actual   any
	Expected any
	Path     Path
}

// Error returns a terse location-only description. Rendering the values is
// deliberately left to the failure reporter.
func (m *Mismatch) Error() string {
	if m.Path.Len() == 0 {
		return "values are not equivalent"
	}
	return fmt.Sprintf("values are not equivalent at %s", m.Path)
}

// ShapeError reports that a compared position has a shape the engine has no
// general way to enumerate. This is distinct from a Mismatch: the values did
// not differ, the comparison could not be performed at all.
type ShapeError struct {
	// Type is the type which could not be compared.
	Type reflect.Type

	// Member names the registered member requiring index arguments, when
	// that is the cause. Empty when the Type's kind itself (chan, func,
	// unsafe.Pointer) is non-comparable.
	Member string
}

func (e *ShapeError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf(
			"equivalence: member %q of %s requires index arguments and cannot be enumerated",
			e.Member, e.Type)
	}
	return fmt.Sprintf("equivalence: values of type %s cannot be compared structurally", e.Type)
}
