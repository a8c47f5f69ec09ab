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
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/nelsonroliveira/shouldly/failure"
)

// AddCmpDiff adds a 'Diff' finding which is type hinted to be the output of
// cmp.Diff.
//
// The diff is split into multiple lines, but is otherwise untouched.
func (b *SummaryBuilder) AddCmpDiff(diff string) *SummaryBuilder {
	b.fixNilSummary()
	b.Summary.Findings = append(b.Summary.Findings, &failure.Finding{
		Name:  "Diff",
		Value: strings.Split(diff, "\n"),
		Type:  failure.TypeHintCmpDiff,
	})
	return b
}

// AddUnifiedDiff adds a 'Diff' finding holding a unified diff of the two
// multi-line strings, type hinted accordingly.
func (b *SummaryBuilder) AddUnifiedDiff(actual, expected string) *SummaryBuilder {
	b.fixNilSummary()
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		// GetUnifiedDiffString only errors on writer failures, which
		// a strings.Builder cannot produce.
		return b.Because("failed to compute unified diff: %s", err)
	}
	b.Summary.Findings = append(b.Summary.Findings, &failure.Finding{
		Name:  "Diff",
		Value: strings.Split(strings.TrimSuffix(diff, "\n"), "\n"),
		Type:  failure.TypeHintUnifiedDiff,
	})
	return b
}

// SmartCmpDiff does a couple things:
//   - It adds "Actual" and "Expected" findings. If they have long
//     renderings, they will be marked as Level=Warn.
//   - If either text representation is long, or they are identical, this
//     will also add a Diff, using cmp.Diff and the provided Options.
//
// "Long" is defined as a Value with multiple lines or which has > 30
// characters in one line.
func (b *SummaryBuilder) SmartCmpDiff(actual, expected any, opts ...cmp.Option) *SummaryBuilder {
	b.fixNilSummary()

	b = b.Actual(actual).WarnIfLong().
		Expected(expected).WarnIfLong()

	added := b.Summary.Findings[len(b.Summary.Findings)-2:]
	hasLong := false
	for _, finding := range added {
		if finding.Level == failure.LevelWarn {
			hasLong = true
			break
		}
	}

	if hasLong || slices.Equal(added[0].Value, added[1].Value) {
		if diff := safeCmpDiff(expected, actual, opts...); diff != "" {
			b.AddCmpDiff(diff)
		}
	}

	return b
}

// safeCmpDiff is cmp.Diff, except that a cmp panic (e.g. an unexported field
// without a registered Option) yields an empty diff instead of unwinding the
// caller's test.
func safeCmpDiff(expected, actual any, opts ...cmp.Option) (diff string) {
	defer func() { recover() }()
	diff = cmp.Diff(expected, actual, opts...)
	return
}
