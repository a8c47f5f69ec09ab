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
	"errors"
	"strings"

	"github.com/nelsonroliveira/shouldly/comparison"
	"github.com/nelsonroliveira/shouldly/failure"
)

// ErrLike returns a comparison.Func[error] which checks `actual` against
// `target`:
//
//   - target == nil: `actual` must be nil.
//   - target is a string: `actual` must be non-nil and its Error() must
//     contain the string.
//   - target is an error: `actual` must match it per errors.Is.
//
// Any other target type is a misuse and always fails.
func ErrLike(target any) comparison.Func[error] {
	const cmpName = "should.ErrLike"

	switch t := target.(type) {
	case nil:
		return func(actual error) *failure.Summary {
			if actual == nil {
				return nil
			}
			return comparison.NewSummaryBuilder(cmpName).
				Because("Expected a nil error.").
				Actual(actual.Error()).WarnIfLong().
				Summary
		}

	case string:
		return func(actual error) *failure.Summary {
			if actual == nil {
				return comparison.NewSummaryBuilder(cmpName).
					Because("The error was nil.").
					Expected(t).WarnIfLong().
					Summary
			}
			if strings.Contains(actual.Error(), t) {
				return nil
			}
			return comparison.NewSummaryBuilder(cmpName).
				Actual(actual.Error()).WarnIfLong().
				AddFindingf("Expected to contain", "%q", t).
				Summary
		}

	case error:
		return func(actual error) *failure.Summary {
			if errors.Is(actual, t) {
				return nil
			}
			return comparison.NewSummaryBuilder(cmpName).
				Actual(actual).WarnIfLong().
				AddFindingf("Expected to be (per errors.Is)", "%v", t).
				Summary
		}
	}

	return func(error) *failure.Summary {
		return comparison.NewSummaryBuilder(cmpName).
			Because("`target` must be nil, a string or an error, got `%T`.", target).
			Summary
	}
}
