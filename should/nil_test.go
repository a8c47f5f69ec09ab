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

import "testing"

func TestBeNil(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	var nilSlice []string
	x := 10

	t.Run("untyped nil", shouldPass(BeNil(nil)))
	t.Run("nil pointer", shouldPass(BeNil(nilPtr)))
	t.Run("nil slice", shouldPass(BeNil(nilSlice)))

	t.Run("non-nil pointer", shouldFail(BeNil(&x), "Actual"))
	t.Run("non-nillable", shouldFail(BeNil(10), "cannot be checked for nil"))
}

func TestNotBeNil(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	x := 10

	t.Run("non-nil pointer", shouldPass(NotBeNil(&x)))

	t.Run("untyped nil", shouldFail(NotBeNil(nil)))
	t.Run("nil pointer", shouldFail(NotBeNil(nilPtr)))
}

func TestBeZero(t *testing.T) {
	t.Parallel()

	t.Run("zero int", shouldPass(BeZero(0)))
	t.Run("empty string", shouldPass(BeZero("")))
	t.Run("untyped nil", shouldPass(BeZero(nil)))

	t.Run("non-zero", shouldFail(BeZero(7), "Actual"))
}

func TestNotBeZero(t *testing.T) {
	t.Parallel()

	t.Run("non-zero", shouldPass(NotBeZero(7)))

	t.Run("zero struct", shouldFail(NotBeZero(struct{ A int }{})))
}
