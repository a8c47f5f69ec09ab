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

// Package testhelper provides a fake testing.TB which records failures
// instead of failing, so that the failure paths of assert/check can be
// tested from passing tests.
package testhelper

import (
	"fmt"
	"strings"
	"testing"
)

// ExpectFailure wraps a *testing.T and captures Log/Fail calls made through
// the shouldly reporting machinery.
type ExpectFailure struct {
	*testing.T

	logCalls []string
	failed   bool
}

var _ testing.TB = (*ExpectFailure)(nil)

func New(t *testing.T) *ExpectFailure {
	return &ExpectFailure{T: t}
}

func (e *ExpectFailure) Log(args ...any) {
	// fmt.Sprint has special logic to not join strings with " " - TB.Log
	// does not have this logic.
	formatted := make([]string, len(args))
	for i, arg := range args {
		formatted[i] = fmt.Sprint(arg)
	}
	e.logCalls = append(e.logCalls, strings.Join(formatted, " "))
}

func (e *ExpectFailure) Logf(format string, args ...any) {
	e.logCalls = append(e.logCalls, fmt.Sprintf(format, args...))
}

func (e *ExpectFailure) Fail()    { e.failed = true }
func (e *ExpectFailure) FailNow() { e.failed = true }

// Check asserts that a failure was recorded and that each msg appears
// somewhere in the captured log output.
func (e *ExpectFailure) Check(msgs ...string) {
	e.Helper()

	if !e.failed {
		e.T.Log("ExpectFailure: Test case did not call Fail/FailNow.")
		e.T.Fail()
	}

	var missing []string
	for _, msg := range msgs {
		found := false
		for _, logged := range e.logCalls {
			if strings.Contains(logged, msg) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, msg)
		}
	}
	if len(missing) > 0 {
		e.T.Log("ExpectFailure: Missing Check messages:")
		for _, msg := range missing {
			e.T.Log(" *", msg)
		}
		e.T.Log("Actual logs:")
		for _, msg := range e.logCalls {
			e.T.Log(msg)
		}
		e.T.Fail()
	}
	if e.T.Failed() {
		e.T.FailNow()
	}
}
