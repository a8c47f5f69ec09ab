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
	"fmt"
	"strings"

	"github.com/mgutz/ansi"

	"github.com/nelsonroliveira/shouldly/failure"
)

// RenderCLI renders failure.Summary values as text suitable for `go test`
// CLI output (e.g. to be logged with testing.T.Log calls).
type RenderCLI struct {
	// If true, will render all Warn-level findings.
	//
	// Otherwise this will print an omission message which describes how long
	// the omitted value is and to pass `-v` to the test to see them.
	Verbose bool

	// If true, will add ANSI color codes to Findings with appropriate types
	// (currently just simple +/- per-line colorization for unified and
	// cmp.Diff Findings).
	Colorize bool
}

// Finding renders a single Finding to a set of output lines.
func (r RenderCLI) Finding(prefix string, f *failure.Finding) string {
	if len(f.Value) == 0 {
		return fmt.Sprintf("%s%s [no value]", prefix, f.Name)
	}
	if len(f.Value) == 1 && len(strings.TrimSpace(f.Value[0])) == 0 {
		return fmt.Sprintf("%s%s [blank one-line value]", prefix, f.Name)
	}

	if f.Level > failure.LevelError && !r.Verbose {
		valLen := len(f.Value) - 1 // one per newline
		for _, line := range f.Value {
			valLen += len(line)
		}
		return fmt.Sprintf("%s%s [verbose value len=%d (pass -v to see)]", prefix, f.Name, valLen)
	}

	if len(f.Value) == 1 {
		return fmt.Sprintf("%s%s: %s", prefix, f.Name, f.Value[0])
	}

	value := make([]string, len(f.Value))
	copy(value, f.Value)
	if r.Colorize {
		switch f.Type {
		case failure.TypeHintCmpDiff, failure.TypeHintUnifiedDiff:
			for i, line := range value {
				code := ""
				if strings.HasPrefix(line, "-") {
					code = ansi.Green
					if strings.HasPrefix(line, "--- ") {
						code = ansi.LightGreen
					}
				} else if strings.HasPrefix(line, "+") {
					code = ansi.Red
					if strings.HasPrefix(line, "+++ ") {
						code = ansi.LightRed
					}
				} else if strings.HasPrefix(line, "@@ ") {
					code = ansi.Red
				}
				if code != "" {
					value[i] = fmt.Sprintf("%s%s%s", code, line, ansi.Reset)
				} else {
					value[i] = line
				}
			}
		}
	}
	for i, line := range value {
		value[i] = "    " + line
	}
	return fmt.Sprintf("%s%s: \\\n%s", prefix, f.Name, strings.Join(value, "\n"))
}

// Summary pretty-prints the failure as a list of lines for display via the
// `go test` CLI output.
func (r RenderCLI) Summary(prefix string, s *failure.Summary) string {
	if s == nil {
		return ""
	}

	cmpName := "UNKNOWN COMPARISON"
	var cmpTypeArgs string
	if s.Comparison != nil {
		if s.Comparison.Name != "" {
			cmpName = s.Comparison.Name
		}
		if args := s.Comparison.TypeArguments; len(args) > 0 {
			cmpTypeArgs = fmt.Sprintf("[%s]", strings.Join(args, ", "))
		}
	}

	lines := make([]string, 0, len(s.Findings)+len(s.SourceContext)+1)
	lines = append(lines, fmt.Sprintf("%s%s FAILED", cmpName, cmpTypeArgs))

	for _, stack := range s.SourceContext {
		for _, frame := range stack.Frames {
			lines = append(lines, fmt.Sprintf("%s(%s %s:%d)", prefix, stack.Name, frame.Filename, frame.Lineno))
		}
	}

	for _, finding := range s.Findings {
		lines = append(lines, r.Finding(prefix, finding))
	}

	return strings.Join(lines, "\n")
}
