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

// Package shouldly is a fluent assertion library built around a deep,
// cycle-safe structural equivalence engine.
//
// The typical entry points live in the assert and check subpackages:
//
//	assert.That(t, got, should.BeEquivalentTo(want))
//	check.That(t, got.Name, should.Equal("widget"), shouldly.Explain("after rename"))
//
// Comparisons (package should) produce structured failure summaries (package
// failure) which this package reports through the test's TB. The equivalence
// engine itself lives in the equivalence package and can be used directly,
// without any testing plumbing.
package shouldly

import (
	"os"
	"testing"

	"github.com/nelsonroliveira/shouldly/comparison"
	"github.com/nelsonroliveira/shouldly/failure"
)

// TestingTB is the subset of testing.TB needed to report a failed
// comparison. *testing.T, *testing.B and *testing.F all satisfy it.
type TestingTB interface {
	Helper()
	Log(args ...any)
	Fail()
	FailNow()
}

// Report logs the rendered failure summary to t.
//
// checkName is the name of the invoking operation (e.g. "assert.That") and
// is prepended to the output. Report only logs; failing the test is the
// caller's decision (assert fails now, check fails and continues).
func Report(t TestingTB, checkName string, s *failure.Summary) {
	if s == nil {
		return
	}
	t.Helper()
	r := comparison.RenderCLI{
		Verbose:  testing.Verbose(),
		Colorize: os.Getenv("TERM") != "" && os.Getenv("TERM") != "dumb",
	}
	t.Log(checkName, r.Summary("  ", s))
}
