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
	"path/filepath"
	"testing"

	"github.com/nelsonroliveira/shouldly/failure"
)

func beTen(actual int) *failure.Summary {
	if actual == 10 {
		return nil
	}
	return NewSummaryBuilder("beTen").Actual(actual).Summary
}

func TestCastCompare(t *testing.T) {
	t.Parallel()

	var cmp Func[int] = beTen

	t.Run("exact type", func(t *testing.T) {
		if s := cmp.CastCompare(int(10)); s != nil {
			t.Fatal("exact conversion failed")
		}
	})

	t.Run("lossless numeric conversion", func(t *testing.T) {
		if s := cmp.CastCompare(uint8(10)); s != nil {
			t.Fatal("uint8(10) should convert to int")
		}
	})

	t.Run("lossy numeric conversion", func(t *testing.T) {
		var narrow Func[uint8] = func(actual uint8) *failure.Summary { return nil }
		if s := narrow.CastCompare(int(300)); s == nil {
			t.Fatal("int(300) must not convert to uint8")
		}
	})

	t.Run("incompatible type", func(t *testing.T) {
		s := cmp.CastCompare("10")
		if s == nil {
			t.Fatal("string must not convert to int")
		}
		if s.Finding("Because") == nil {
			t.Fatal("bad conversion lacks a Because finding")
		}
	})

	t.Run("untyped nil for nillable T", func(t *testing.T) {
		var wantNil Func[*int] = func(actual *int) *failure.Summary {
			if actual != nil {
				return NewSummaryBuilder("wantNil").Summary
			}
			return nil
		}
		if s := wantNil.CastCompare(nil); s != nil {
			t.Fatal("untyped nil should satisfy Func[*int]")
		}
	})
}

func TestWithLineContext(t *testing.T) {
	t.Parallel()

	var cmp Func[int] = beTen
	withCtx := cmp.WithLineContext() // the reported frame is this line

	s := withCtx(11)
	if s == nil {
		t.Fatal("comparison unexpectedly passed")
	}
	if len(s.SourceContext) != 1 || s.SourceContext[0].Name != "at" {
		t.Fatalf("SourceContext = %+v", s.SourceContext)
	}
	frame := s.SourceContext[0].Frames[0]
	if filepath.Base(frame.Filename) != "func_test.go" {
		t.Fatalf("frame file = %q", frame.Filename)
	}

	if s := withCtx(10); s != nil {
		t.Fatal("passing comparison must stay nil")
	}
}
