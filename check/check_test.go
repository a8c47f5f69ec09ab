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

package check_test

import (
	"testing"

	"github.com/nelsonroliveira/shouldly/check"
	"github.com/nelsonroliveira/shouldly/internal/testhelper"
	"github.com/nelsonroliveira/shouldly/should"
)

func TestThat(t *testing.T) {
	t.Parallel()

	if !check.That(t, 10, should.Equal(10)) {
		t.Fatal("passing check reported failure")
	}

	tb := testhelper.New(t)
	if check.That(tb, 10, should.Equal(20)) {
		t.Fatal("failing check reported success")
	}
	// A second check still runs after the first failed.
	if !check.That(tb, "ok", should.Equal("ok")) {
		t.Fatal("second check failed")
	}
	tb.Check("check.That", "should.Equal[int] FAILED")
}

func TestLoosely(t *testing.T) {
	t.Parallel()

	if !check.Loosely(t, uint8(10), should.Equal(10)) {
		t.Fatal("convertible check reported failure")
	}

	tb := testhelper.New(t)
	if check.Loosely(tb, "10", should.Equal(10)) {
		t.Fatal("inconvertible check reported success")
	}
	tb.Check("check.Loosely")
}
