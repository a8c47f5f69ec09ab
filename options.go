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

package shouldly

import (
	"fmt"
	"runtime"

	"github.com/nelsonroliveira/shouldly/failure"
)

// Option modifies a failure.Summary before it is reported. Options are
// accepted by assert.That, check.That and friends, and are only applied when
// the comparison actually failed.
type Option interface {
	modify(*failure.Summary)
}

type summaryModifier func(*failure.Summary)

func (s summaryModifier) modify(f *failure.Summary) { s(f) }

// ApplyAllOptions applies opts to s in order and returns s. A nil s (the
// comparison passed) is returned unchanged without applying anything.
func ApplyAllOptions(s *failure.Summary, opts []Option) *failure.Summary {
	if s == nil {
		return nil
	}
	for _, opt := range opts {
		opt.modify(s)
	}
	return s
}

// Explain attaches a custom message to a failure, rendered as the first
// "Message" finding.
//
// Example:
//
//	assert.That(t, got, should.BeEquivalentTo(want),
//	  shouldly.Explain("after applying discount %q", code))
func Explain(format string, args ...any) Option {
	return summaryModifier(func(s *failure.Summary) {
		msg := &failure.Finding{
			Name:  "Message",
			Value: []string{fmt.Sprintf(format, args...)},
		}
		s.Findings = append([]*failure.Finding{msg}, s.Findings...)
	})
}

// LineContext adds an "at" SourceContext with the filename and line number
// of the caller, skipping skipFrames additional stack frames.
//
// Useful inside test helper functions, where the interesting location is the
// helper's caller rather than the assertion line itself.
func LineContext(skipFrames int) Option {
	_, filename, lineno, ok := runtime.Caller(1 + skipFrames)
	return summaryModifier(func(s *failure.Summary) {
		if !ok {
			return
		}
		s.SourceContext = append(s.SourceContext, &failure.Stack{
			Name:   "at",
			Frames: []*failure.Frame{{Filename: filename, Lineno: int64(lineno)}},
		})
	})
}
