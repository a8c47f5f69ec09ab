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
	"strings"
	"testing"

	"github.com/nelsonroliveira/shouldly/comparison"
	"github.com/nelsonroliveira/shouldly/failure"
)

// shouldPass returns a subtest which fails if the comparison produced
// a failure.Summary.
func shouldPass(s *failure.Summary) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		if s != nil {
			t.Fatalf("comparison failed:\n%s", comparison.RenderCLI{Verbose: true}.Summary("  ", s))
		}
	}
}

// shouldFail returns a subtest which fails unless the comparison produced
// a failure.Summary whose rendering contains every `contains` fragment.
func shouldFail(s *failure.Summary, contains ...string) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		if s == nil {
			t.Fatal("comparison unexpectedly passed")
		}
		rendered := comparison.RenderCLI{Verbose: true}.Summary("  ", s)
		for _, frag := range contains {
			if !strings.Contains(rendered, frag) {
				t.Fatalf("rendered failure lacks %q:\n%s", frag, rendered)
			}
		}
	}
}
