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

// Package failure contains the structured description of a failed
// comparison.
//
// A Summary carries only facts (the comparison's name, a list of named
// Findings, and optional source context); turning a Summary into display
// text is the job of a renderer such as comparison.RenderCLI.
package failure

// Level describes the 'log level' of an individual Finding.
type Level int

const (
	// LevelUnknown findings are treated the same as LevelError findings.
	LevelUnknown Level = iota

	// LevelError findings are always rendered.
	LevelError

	// LevelWarn findings are only rendered when the renderer is verbose;
	// non-verbose renderers print an omission notice instead.
	LevelWarn
)

// TypeHint tells renderers how the Value lines of a Finding were produced,
// which lets them apply content-aware formatting (e.g. diff colorization).
type TypeHint int

const (
	// TypeHintUnknown findings have free-form text Values.
	TypeHintUnknown TypeHint = iota

	// TypeHintCmpDiff marks a Value holding the output of cmp.Diff.
	TypeHintCmpDiff

	// TypeHintUnifiedDiff marks a Value holding a unified diff.
	TypeHintUnifiedDiff
)

// Finding is one named fact about a failed comparison, e.g. "Actual",
// "Expected", "Path" or "Diff".
type Finding struct {
	Name string

	// Value holds the finding's rendered value, one entry per line.
	Value []string

	Level Level
	Type  TypeHint
}

// Comparison identifies the comparison which produced a failure.
type Comparison struct {
	// Name is the fully-qualified comparison name, e.g.
	// "should.BeEquivalentTo".
	Name string

	// TypeArguments are the rendered type parameters of the comparison,
	// when it is generic.
	TypeArguments []string
}

// Frame is a single source location.
type Frame struct {
	Filename string
	Lineno   int64
}

// Stack is a named list of source locations attached to a Summary, e.g. an
// "at" context added by comparison.Func.WithLineContext.
type Stack struct {
	Name   string
	Frames []*Frame
}

// Summary is the structured result of a failed comparison.
type Summary struct {
	Comparison *Comparison

	// Findings are rendered in order; the order is chosen by whatever
	// built the Summary.
	Findings []*Finding

	SourceContext []*Stack
}

// Finding returns the first Finding with the given name, or nil.
func (s *Summary) Finding(name string) *Finding {
	if s == nil {
		return nil
	}
	for _, f := range s.Findings {
		if f.Name == name {
			return f
		}
	}
	return nil
}
