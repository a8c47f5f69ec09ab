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

// Package should holds comparison functions for use with the assert and
// check packages.
package should

import (
	"errors"

	"github.com/nelsonroliveira/shouldly/comparison"
	"github.com/nelsonroliveira/shouldly/equivalence"
	"github.com/nelsonroliveira/shouldly/failure"
)

// BeEquivalentTo checks that the actual value is deeply, structurally
// equivalent to `expected`: every reachable exported field, string and
// ordered element must agree, and the failure names the exact path to the
// first divergence.
//
// Member comparisons use each member's declared type; see
// BeEquivalentToUsing to compare at runtime types instead.
func BeEquivalentTo(expected any) comparison.Func[any] {
	return beEquivalentTo("should.BeEquivalentTo", expected, equivalence.Options{})
}

// BeEquivalentToUsing is BeEquivalentTo with explicit equivalence Options.
func BeEquivalentToUsing(expected any, opts equivalence.Options) comparison.Func[any] {
	return beEquivalentTo("should.BeEquivalentToUsing", expected, opts)
}

func beEquivalentTo(cmpName string, expected any, opts equivalence.Options) comparison.Func[any] {
	return func(actual any) *failure.Summary {
		err := opts.Compare(actual, expected)
		if err == nil {
			return nil
		}

		var mm *equivalence.Mismatch
		if errors.As(err, &mm) {
			fb := comparison.NewSummaryBuilder(cmpName)
			if mm.Path.Len() > 0 {
				fb = fb.AddFindingf("Path", "%s", mm.Path)
			}
			return fb.SmartCmpDiff(mm.Actual, mm.Expected).Summary
		}

		// A ShapeError (or anything else) is a misuse of the comparison,
		// not a value difference: report it verbatim, without
		// Actual/Expected findings.
		return comparison.NewSummaryBuilder(cmpName).Because("%s", err).Summary
	}
}
