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

// Package check holds assertion entry points which mark the test failed but
// let it continue (t.Fail). See the assert package for the stop-on-failure
// variants.
package check

import (
	"github.com/nelsonroliveira/shouldly"
	"github.com/nelsonroliveira/shouldly/comparison"
)

// That will compare `actual` using `compare(actual)`.
//
// If this results in a failure.Summary, it will be reported with
// shouldly.Report, and the test will be marked failed with t.Fail().
//
// Returns true iff the comparison passed.
func That[T any](t shouldly.TestingTB, actual T, compare comparison.Func[T], opts ...shouldly.Option) bool {
	if summary := shouldly.ApplyAllOptions(compare(actual), opts); summary != nil {
		t.Helper()
		shouldly.Report(t, "check.That", summary)
		t.Fail()
		return false
	}
	return true
}

// Loosely will compare `actual` using `compare.CastCompare(actual)`,
// allowing the actual value to be converted to the comparison's type first.
//
// Returns true iff the comparison passed.
func Loosely[T any](t shouldly.TestingTB, actual any, compare comparison.Func[T], opts ...shouldly.Option) bool {
	if summary := shouldly.ApplyAllOptions(compare.CastCompare(actual), opts); summary != nil {
		t.Helper()
		shouldly.Report(t, "check.Loosely", summary)
		t.Fail()
		return false
	}
	return true
}
