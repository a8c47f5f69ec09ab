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
	"sort"

	"github.com/nelsonroliveira/shouldly/typedesc"
)

// Compare checks actual and expected for deep structural equivalence with
// default Options.
//
// It returns nil when the graphs are equivalent, a *Mismatch at the first
// divergence, or a *ShapeError when a position cannot be compared at all.
func Compare(actual, expected any) error {
	return Options{}.Compare(actual, expected)
}

// Compare checks actual and expected for deep structural equivalence.
//
// The walk is depth-first, fields before registered accessor members, in
// declaration order, and stops at the first divergence, so repeated calls
// over the same graphs report the same path and values.
func (o Options) Compare(actual, expected any) error {
	return compareAny(actual, expected, nil, Path{}, make(visitedPairs), o)
}

// compareAny is one recursive step: nil handling, type resolution, path
// annotation, then shape dispatch.
//
// forced is the declared type of the member being compared, when
// CompareUsingRuntimeTypes is off; nil means "resolve from the runtime types
// of both sides, which must agree".
func compareAny(actual, expected any, forced reflect.Type, path Path, visited visitedPairs, o Options) error {
	aNil, eNil := isNilValue(actual), isNilValue(expected)
	switch {
	case aNil && eNil:
		return nil
	case aNil != eNil:
		// Reported at the pre-annotation path: there is no common type to
		// annotate with.
		return &Mismatch{Actual: actual, Expected: expected, Path: path}
	}

	t := forced
	if t == nil {
		at, et := reflect.TypeOf(actual), reflect.TypeOf(expected)
		if at != et {
			return &Mismatch{Actual: at, Expected: et, Path: path}
		}
		t = at
	}

	return compareShape(reflect.ValueOf(actual), reflect.ValueOf(expected), t, path.annotateType(t), visited, o)
}

// compareShape dispatches on the resolved type's kind. av and ev hold the
// two values; path already carries t's annotation.
func compareShape(av, ev reflect.Value, t reflect.Type, path Path, visited visitedPairs, o Options) error {
	switch t.Kind() {
	case reflect.String:
		// Exact, byte-for-byte. No locale-aware mode.
		if av.String() != ev.String() {
			return &Mismatch{Actual: av.Interface(), Expected: ev.Interface(), Path: path}
		}
		return nil

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		// Scalars are atomic: the kind's own equality is trusted, no
		// recursion. Note that NaN is unequal to itself here, as it is
		// under Go ==.
		if !av.Equal(ev) {
			return &Mismatch{Actual: av.Interface(), Expected: ev.Interface(), Path: path}
		}
		return nil

	case reflect.Slice:
		if av.IsNil() && ev.IsNil() {
			return nil
		}
		if av.Pointer() == ev.Pointer() && av.Len() == ev.Len() {
			return nil
		}
		a, e := refOf(av), refOf(ev)
		if visited.seen(a, e) {
			return nil
		}
		visited.record(a, e)
		return compareSequence(av, ev, path, visited, o)

	case reflect.Array:
		return compareSequence(av, ev, path, visited, o)

	case reflect.Pointer:
		if av.IsNil() || ev.IsNil() {
			if av.IsNil() && ev.IsNil() {
				return nil
			}
			return &Mismatch{Actual: av.Interface(), Expected: ev.Interface(), Path: path}
		}
		if av.Pointer() == ev.Pointer() {
			return nil
		}
		a, e := refOf(av), refOf(ev)
		if visited.seen(a, e) {
			return nil
		}
		visited.record(a, e)
		return compareShape(av.Elem(), ev.Elem(), t.Elem(), path, visited, o)

	case reflect.Struct:
		return compareStruct(av, ev, t, path, visited, o)

	case reflect.Map:
		if av.IsNil() || ev.IsNil() {
			if av.IsNil() && ev.IsNil() {
				return nil
			}
			return &Mismatch{Actual: av.Interface(), Expected: ev.Interface(), Path: path}
		}
		if av.Pointer() == ev.Pointer() {
			return nil
		}
		a, e := refOf(av), refOf(ev)
		if visited.seen(a, e) {
			return nil
		}
		visited.record(a, e)
		return compareMap(av, ev, path, visited, o)

	case reflect.Interface:
		return compareDeclared(av, ev, t, path, visited, o)

	default:
		// chan, func, unsafe.Pointer: no general way to compare contents.
		return &ShapeError{Type: t}
	}
}

// compareDeclared compares two values at a declared interface type: through
// the type's registered descriptor when one exists, otherwise by falling
// back to the runtime types of the dynamic values.
func compareDeclared(av, ev reflect.Value, t reflect.Type, path Path, visited visitedPairs, o Options) error {
	// Unwrap interface indirection (reached via pointer-to-interface).
	if av.Kind() == reflect.Interface {
		av = av.Elem()
	}
	if ev.Kind() == reflect.Interface {
		ev = ev.Elem()
	}
	if !av.IsValid() || !ev.IsValid() {
		if !av.IsValid() && !ev.IsValid() {
			return nil
		}
		return &Mismatch{Actual: interfaceOrNil(av), Expected: interfaceOrNil(ev), Path: path}
	}

	if d, ok := typedesc.Lookup(t); ok {
		return compareDescriptor(av, ev, t, d, path, visited, o)
	}

	at, et := av.Type(), ev.Type()
	if at != et {
		return &Mismatch{Actual: at, Expected: et, Path: path}
	}
	return compareShape(av, ev, at, path.annotateType(at), visited, o)
}

// compareSequence compares two ordered sequences strictly by position:
// length first (preempting any element comparison), then index by index with
// no forced element type.
func compareSequence(av, ev reflect.Value, path Path, visited visitedPairs, o Options) error {
	if av.Len() != ev.Len() {
		return &Mismatch{Actual: av.Len(), Expected: ev.Len(), Path: path.push("Count")}
	}
	for i := 0; i < av.Len(); i++ {
		err := compareAny(
			av.Index(i).Interface(), ev.Index(i).Interface(),
			nil, path.push(fmt.Sprintf("Element [%d]", i)), visited, o)
		if err != nil {
			return err
		}
	}
	return nil
}

// compareMap compares two maps entry-wise. Entries are visited in ascending
// key order so the first-mismatch path is deterministic.
func compareMap(av, ev reflect.Value, path Path, visited visitedPairs, o Options) error {
	if av.Len() != ev.Len() {
		return &Mismatch{Actual: av.Len(), Expected: ev.Len(), Path: path.push("Count")}
	}

	keys := av.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keyLess(keys[i], keys[j])
	})

	for _, k := range keys {
		entry := path.push(fmt.Sprintf("Element [%v]", k))
		evv := ev.MapIndex(k)
		if !evv.IsValid() {
			// Lengths agree, so a key missing on the expected side means
			// the key sets differ.
			return &Mismatch{Actual: av.MapIndex(k).Interface(), Expected: nil, Path: entry}
		}
		if err := compareAny(av.MapIndex(k).Interface(), evv.Interface(), nil, entry, visited, o); err != nil {
			return err
		}
	}
	return nil
}

// compareStruct compares exported fields in declaration order, then any
// registered accessor members for the struct type.
func compareStruct(av, ev reflect.Value, t reflect.Type, path Path, visited visitedPairs, o Options) error {
	for _, f := range exportedFields(t) {
		var forced reflect.Type
		if !o.CompareUsingRuntimeTypes {
			forced = f.typ
		}
		err := compareAny(
			av.Field(f.index).Interface(), ev.Field(f.index).Interface(),
			forced, path.push(f.name), visited, o)
		if err != nil {
			return err
		}
	}

	if d, ok := typedesc.Lookup(t); ok {
		return compareDescriptor(av, ev, t, d, path, visited, o)
	}
	return nil
}

// compareDescriptor compares values member-by-member through a registered
// descriptor, in registration order.
func compareDescriptor(av, ev reflect.Value, t reflect.Type, d *typedesc.Descriptor, path Path, visited visitedPairs, o Options) error {
	for _, m := range d.Members {
		if m.Indexed {
			return &ShapeError{Type: t, Member: m.Name}
		}
		var forced reflect.Type
		if !o.CompareUsingRuntimeTypes {
			forced = m.Type
		}
		err := compareAny(
			m.Get(av.Interface()), m.Get(ev.Interface()),
			forced, path.push(m.Name), visited, o)
		if err != nil {
			return err
		}
	}
	return nil
}

// keyLess orders map keys for iteration. Keys of an ordered kind sort by
// their native order (so 2 precedes 10); anything else sorts by its rendered
// form, which is arbitrary but stable.
func keyLess(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.String:
		return a.String() < b.String()
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

// isNilValue reports whether v is an untyped nil or a nil value of a
// nillable kind.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func interfaceOrNil(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}
