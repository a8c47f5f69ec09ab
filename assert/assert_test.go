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

package assert_test

import (
	"errors"
	"testing"

	"github.com/nelsonroliveira/shouldly"
	"github.com/nelsonroliveira/shouldly/assert"
	"github.com/nelsonroliveira/shouldly/internal/testhelper"
	"github.com/nelsonroliveira/shouldly/should"
)

func TestThat(t *testing.T) {
	t.Parallel()

	assert.That(t, 10, should.Equal(10))
	assert.That(t, "hello", should.Equal("hello"))

	t.Run("failure stops the test", func(t *testing.T) {
		tb := testhelper.New(t)
		assert.That(tb, 10, should.Equal(20))
		tb.Check("assert.That", "should.Equal[int] FAILED")
	})

	t.Run("options apply on failure", func(t *testing.T) {
		tb := testhelper.New(t)
		assert.That(tb, 10, should.Equal(20), shouldly.Explain("during checkout"))
		tb.Check("Message: during checkout")
	})
}

func TestLoosely(t *testing.T) {
	t.Parallel()

	assert.Loosely(t, uint8(10), should.Equal(10))
	assert.Loosely(t, nil, should.BeNil)

	t.Run("bad conversion fails", func(t *testing.T) {
		tb := testhelper.New(t)
		assert.Loosely(tb, 10, should.Equal("hello"))
		tb.Check("assert.Loosely", "cannot be converted to `string`")
	})
}

func TestNoErr(t *testing.T) {
	t.Parallel()

	assert.NoErr(t, nil)

	tb := testhelper.New(t)
	assert.NoErr(tb, errors.New("boom"))
	tb.Check("should.ErrLike FAILED", "boom")
}

func TestErrIsLike(t *testing.T) {
	t.Parallel()

	assert.ErrIsLike(t, errors.New("kaboom"), "boom")

	sentinel := errors.New("sentinel")
	assert.ErrIsLike(t, sentinel, sentinel)

	tb := testhelper.New(t)
	assert.ErrIsLike(tb, errors.New("fizzle"), "boom")
	tb.Check("should.ErrLike FAILED")
}
