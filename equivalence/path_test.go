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
	"reflect"
	"testing"
)

func TestPathRendering(t *testing.T) {
	t.Parallel()

	var p Path
	if got := p.String(); got != "" {
		t.Fatalf("empty path renders %q", got)
	}

	p = p.annotateType(reflect.TypeFor[string]())
	if got := p.String(); got != "string" {
		t.Fatalf("top-level annotation renders %q", got)
	}

	p = p.push("Name").annotateType(reflect.TypeFor[int]())
	if got := p.String(); got != "string.Name [int]" {
		t.Fatalf("annotated segment renders %q", got)
	}

	p = p.push("Count")
	if got := p.String(); got != "string.Name [int].Count" {
		t.Fatalf("unannotated segment renders %q", got)
	}
}

// A Path handed to a recursive step must not be observably mutated by that
// step extending or annotating its own copy.
func TestPathCopyExtend(t *testing.T) {
	t.Parallel()

	base := Path{}.push("A").push("B")
	before := base.String()

	left := base.push("L").annotateType(reflect.TypeFor[int]())
	right := base.push("R")
	_ = base.annotateType(reflect.TypeFor[string]())

	if base.String() != before {
		t.Fatalf("base mutated: %q", base.String())
	}
	if got := left.String(); got != "A.B.L [int]" {
		t.Fatalf("left renders %q", got)
	}
	if got := right.String(); got != "A.B.R" {
		t.Fatalf("right renders %q", got)
	}
}

func TestPathSegmentsCopies(t *testing.T) {
	t.Parallel()

	p := Path{}.push("A").push("B")
	segs := p.Segments()
	segs[0].Name = "mutated"

	if got := p.String(); got != "A.B" {
		t.Fatalf("Segments leaked internal storage: %q", got)
	}
	if p.Len() != 2 {
		t.Fatalf("Len = %d", p.Len())
	}
}
