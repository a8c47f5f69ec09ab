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

package comparison

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/nelsonroliveira/shouldly/failure"
)

// Func takes in a value-to-be-compared and returns a failure.Summary if the
// value does not meet the expectation of this comparison.Func.
//
// Example:
//
//	func BeTrue(value bool) *failure.Summary {
//	  if !value {
//	    return comparison.NewSummaryBuilder("should.BeTrue").Summary
//	  }
//	  return nil
//	}
//
// In this example, BeTrue is a comparison.Func.
type Func[T any] func(T) *failure.Summary

// CastCompare converts `actual` to T before applying this Func.
//
// Conversions accepted, in order:
//   - `actual` already is a T.
//   - `actual` is an untyped nil and T is a nillable kind (pointer, map,
//     slice, chan, func, interface); the comparison sees T's zero value.
//   - both `actual` and T are numeric kinds and the conversion round-trips
//     without loss.
//
// Anything else produces a failure.Summary describing the bad conversion.
func (cmp Func[T]) CastCompare(actual any) *failure.Summary {
	if t, ok := actual.(T); ok {
		return cmp(t)
	}

	var zero T
	want := reflect.TypeOf(&zero).Elem()

	if actual == nil {
		switch want.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
			reflect.Func, reflect.Interface:
			return cmp(zero)
		}
	} else {
		got := reflect.ValueOf(actual)
		if isNumericKind(got.Kind()) && isNumericKind(want.Kind()) && got.CanConvert(want) {
			converted := got.Convert(want)
			if converted.Convert(got.Type()).Equal(got) {
				return cmp(converted.Interface().(T))
			}
		}
	}

	return NewSummaryBuilder("comparison.Func.CastCompare").
		Because("Actual value of type `%T` cannot be converted to `%s`.", actual, want).
		Summary
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// WithLineContext returns a transformed Func to add an "at" SourceContext
// with one frame containing the filename and line number of the frame
// calling WithLineContext, plus skipFrames[0] (if provided).
//
// You usually will not need this, but it's very useful when writing a helper
// function for tests (e.g. using t.Helper()) to let you add the location of
// the specific check inside of the helper function along side the 'top most'
// frame location, as computed directly by the Go testing library.
//
// Example:
//
//	func TestThing(t *testing.T) {
//	  myHelper := func(actual, expected myType) {
//	    t.Helper()
//
//	    check.That(t, actual.field1, should.Equal(expected.field1).WithLineContext())
//	    check.That(t, actual.field2, should.Equal(expected.field2).WithLineContext())
//	  }
//	  // ...
//	  myHelper(a, expected)
//	}
func (cmp Func[T]) WithLineContext(skipFrames ...int) Func[T] {
	if len(skipFrames) > 1 {
		panic(fmt.Errorf(
			"comparison.Func.WithLineContext: skipFrames has more than one value: %v", skipFrames))
	}

	skip := 1
	if len(skipFrames) > 0 {
		skip = 1 + skipFrames[0]
	}
	_, filename, lineno, ok := runtime.Caller(skip)
	if !ok {
		return cmp
	}

	return func(actual T) *failure.Summary {
		ret := cmp(actual)
		if ret != nil {
			ret.SourceContext = append(ret.SourceContext, &failure.Stack{
				Name:   "at",
				Frames: []*failure.Frame{{Filename: filename, Lineno: int64(lineno)}},
			})
		}
		return ret
	}
}
