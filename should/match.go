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

package should

import (
	"github.com/google/go-cmp/cmp"

	"github.com/nelsonroliveira/shouldly/comparison"
	"github.com/nelsonroliveira/shouldly/failure"
)

// Match returns a Comparison which checks if the actual value 'matches'
// `expected`, as computed with "github.com/google/go-cmp/cmp". Additional
// cmp.Options allow for handling of different types/fields/filtering.
//
// Unlike BeEquivalentTo, Match reports a full diff rather than the path to
// the first divergence, and panics on types with unexported fields unless an
// appropriate cmp.Option is given (cmp's own behavior).
//
// It is recommended that you use should.Equal when comparing primitive
// types.
func Match[T any](expected T, opts ...cmp.Option) comparison.Func[T] {
	cmpName := "should.Match"

	return func(actual T) *failure.Summary {
		diff := cmp.Diff(expected, actual, opts...)

		if diff == "" {
			return nil
		}

		return comparison.NewSummaryBuilder(cmpName, expected).
			Actual(actual).WarnIfLong().
			Expected(expected).WarnIfLong().
			AddCmpDiff(diff).
			Summary
	}
}
