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

// Package typedesc is a process-wide registry of per-type member
// descriptors.
//
// A Descriptor tells the equivalence engine how to enumerate the accessor
// members of a type it cannot (or should not) inspect through struct
// reflection. The most useful case is an interface type, whose declared shape
// is the set of registered members rather than any concrete type's fields.
//
// Descriptors are registered once (typically from an init function or a
// TestMain) and looked up concurrently; registration order of a type's
// members is preserved, so repeated comparisons report the same
// first-mismatch path.
package typedesc

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("shouldly(typedesc): nil reflect.Type provided")
	// ErrNoMembers is returned when a descriptor declares no members.
	ErrNoMembers = errors.New("shouldly(typedesc): descriptor has no members")
	// ErrBadMember indicates a member with a missing name, type or getter.
	ErrBadMember = errors.New("shouldly(typedesc): bad member")
	// ErrConflictingRegistration indicates an attempt to re-register a type
	// with a different descriptor.
	ErrConflictingRegistration = errors.New("shouldly(typedesc): conflicting descriptor registration")
)

// Member describes one accessor member of a type: a name, the member's
// declared type, and a getter extracting the member's value from a container
// value of the described type.
type Member struct {
	Name string
	Type reflect.Type

	// Get extracts the member value. The argument is a value of (or
	// assignable to) the described type.
	Get func(container any) any

	// Indexed marks a member which requires index arguments to read. The
	// engine has no general way to enumerate such a member and refuses to
	// compare any value whose descriptor contains one.
	Indexed bool
}

// Descriptor is an ordered list of a type's accessor members.
type Descriptor struct {
	Members []Member
}

var (
	regMu sync.Mutex
	reg   sync.Map // reflect.Type -> *Descriptor
)

// Register associates t with d.
//
// Registering the same type twice is a no-op if the member lists agree on
// (name, type, indexed); otherwise ErrConflictingRegistration is returned.
func Register(t reflect.Type, d Descriptor) error {
	if t == nil {
		return ErrNilType
	}
	if len(d.Members) == 0 {
		return ErrNoMembers
	}
	for _, m := range d.Members {
		if m.Name == "" {
			return fmt.Errorf("%w: empty name (type %s)", ErrBadMember, t)
		}
		if !m.Indexed && (m.Type == nil || m.Get == nil) {
			return fmt.Errorf("%w: member %q of %s needs both a type and a getter", ErrBadMember, m.Name, t)
		}
	}

	stored := &Descriptor{Members: append([]Member(nil), d.Members...)}

	regMu.Lock()
	defer regMu.Unlock()
	if prev, ok := reg.Load(t); ok {
		if !sameShape(prev.(*Descriptor), stored) {
			return fmt.Errorf("%w: %s", ErrConflictingRegistration, t)
		}
		return nil
	}
	reg.Store(t, stored)
	return nil
}

// For registers a descriptor for the type T. See Register.
func For[T any](members ...Member) error {
	return Register(reflect.TypeFor[T](), Descriptor{Members: members})
}

// MustRegister is Register, panicking on error. Intended for init-time
// registration where a bad descriptor is a programming error.
func MustRegister(t reflect.Type, d Descriptor) {
	if err := Register(t, d); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered for t. The returned descriptor
// is shared and must not be modified.
func Lookup(t reflect.Type) (*Descriptor, bool) {
	if t == nil {
		return nil, false
	}
	d, ok := reg.Load(t)
	if !ok {
		return nil, false
	}
	return d.(*Descriptor), true
}

func sameShape(a, b *Descriptor) bool {
	if len(a.Members) != len(b.Members) {
		return false
	}
	for i, m := range a.Members {
		o := b.Members[i]
		if m.Name != o.Name || m.Type != o.Type || m.Indexed != o.Indexed {
			return false
		}
	}
	return true
}
