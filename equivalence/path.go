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
	"strings"
)

// Segment is one step of a Path: a member name, an "Element [i]" position,
// plus the name of the type the comparison was resolved to at that step
// (filled in once the type is known).
type Segment struct {
	// Name is the field, member or element position. Empty only for the
	// top-level segment, whose text is just the type annotation.
	Name string

	// TypeName is the resolved type at this step, e.g. "*mypkg.User".
	TypeName string
}

// String renders the segment as `Name [TypeName]`. A segment with no name
// renders as the bare type name; one with no annotation as the bare name.
func (s Segment) String() string {
	switch {
	case s.TypeName == "":
		return s.Name
	case s.Name == "":
		return s.TypeName
	default:
		return s.Name + " [" + s.TypeName + "]"
	}
}

// Path names one position in the compared graphs, from the root down.
//
// Paths are extended by copy: push and annotateType return a new Path and
// never modify the receiver's backing storage observably, so each recursive
// comparison step can hold its own Path without defensive copying.
type Path struct {
	segments []Segment
}

// push returns a Path extended with a new named segment.
func (p Path) push(name string) Path {
	segments := make([]Segment, len(p.segments)+1)
	copy(segments, p.segments)
	segments[len(p.segments)] = Segment{Name: name}
	return Path{segments}
}

// annotateType returns a Path whose last segment carries the resolved type's
// name. An empty Path gains the annotation as its sole first segment.
//
// Re-annotation overwrites: when a declared interface type is later narrowed
// to the runtime type, the more precise name wins.
func (p Path) annotateType(t reflect.Type) Path {
	if len(p.segments) == 0 {
		return Path{[]Segment{{TypeName: t.String()}}}
	}
	segments := make([]Segment, len(p.segments))
	copy(segments, p.segments)
	segments[len(segments)-1].TypeName = t.String()
	return Path{segments}
}

// Segments returns a copy of the path's segments, root first.
func (p Path) Segments() []Segment {
	if len(p.segments) == 0 {
		return nil
	}
	return append([]Segment(nil), p.segments...)
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segments) }

// String renders the path with segments joined by ".", e.g.
//
//	[]main.order.Element [0] [main.order].Lines [[]main.line].Count
func (p Path) String() string {
	parts := make([]string, len(p.segments))
	for i, s := range p.segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}
