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
	"reflect"
	"strings"

	"github.com/nelsonroliveira/shouldly/failure"
)

// SummaryBuilder incrementally builds a failure.Summary with a fluent
// interface. The zero value is usable; NewSummaryBuilder additionally fills
// in the Comparison identity.
type SummaryBuilder struct {
	Summary *failure.Summary
}

// NewSummaryBuilder returns a SummaryBuilder for a comparison with the given
// name.
//
// Each optional typeArg contributes one rendered type argument: a
// reflect.Type is rendered directly, anything else contributes the type of
// the value (`%T`).
func NewSummaryBuilder(cmpName string, typeArgs ...any) *SummaryBuilder {
	var rendered []string
	if len(typeArgs) > 0 {
		rendered = make([]string, len(typeArgs))
		for i, arg := range typeArgs {
			if t, ok := arg.(reflect.Type); ok {
				rendered[i] = t.String()
			} else {
				rendered[i] = fmt.Sprintf("%T", arg)
			}
		}
	}
	return &SummaryBuilder{&failure.Summary{
		Comparison: &failure.Comparison{Name: cmpName, TypeArguments: rendered},
	}}
}

func (b *SummaryBuilder) fixNilSummary() {
	if b.Summary == nil {
		b.Summary = &failure.Summary{}
	}
}

// Because adds a single "Because" finding, formatted with fmt.Sprintf.
//
// This should read as an explanation of why the comparison failed, when
// "Actual"/"Expected" findings alone would not make it obvious.
func (b *SummaryBuilder) Because(format string, args ...any) *SummaryBuilder {
	return b.AddFindingf("Because", format, args...)
}

// Actual adds an "Actual" finding rendering the given value.
func (b *SummaryBuilder) Actual(value any) *SummaryBuilder {
	return b.addValueFinding("Actual", value)
}

// Expected adds an "Expected" finding rendering the given value.
func (b *SummaryBuilder) Expected(value any) *SummaryBuilder {
	return b.addValueFinding("Expected", value)
}

// AddFindingf adds a finding with the given name and a fmt.Sprintf-formatted
// value (split into lines).
func (b *SummaryBuilder) AddFindingf(name, format string, args ...any) *SummaryBuilder {
	b.fixNilSummary()
	b.Summary.Findings = append(b.Summary.Findings, &failure.Finding{
		Name:  name,
		Value: strings.Split(fmt.Sprintf(format, args...), "\n"),
	})
	return b
}

func (b *SummaryBuilder) addValueFinding(name string, value any) *SummaryBuilder {
	b.fixNilSummary()
	b.Summary.Findings = append(b.Summary.Findings, &failure.Finding{
		Name:  name,
		Value: renderValue(value),
	})
	return b
}

// WarnIfLong marks the most recently added finding as failure.LevelWarn if
// its value is long (multiple lines, or a single line over 30 characters).
//
// Non-verbose renderers elide warn-level findings.
func (b *SummaryBuilder) WarnIfLong() *SummaryBuilder {
	if b.Summary == nil || len(b.Summary.Findings) == 0 {
		return b
	}
	last := b.Summary.Findings[len(b.Summary.Findings)-1]
	if len(last.Value) > 1 || (len(last.Value) == 1 && len(last.Value[0]) > 30) {
		last.Level = failure.LevelWarn
	}
	return b
}

// renderValue renders an arbitrary value for a finding, one string per line.
//
// reflect.Type values render as their type name rather than their internal
// representation; everything else renders with `%#v`.
func renderValue(value any) []string {
	if t, ok := value.(reflect.Type); ok {
		return []string{t.String()}
	}
	return strings.Split(fmt.Sprintf("%#v", value), "\n")
}
