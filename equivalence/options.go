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

package equivalence

// Options configures a structural equivalence comparison. The zero value is
// the default configuration.
//
// Options is passed down unchanged through every recursive step of a
// Compare call.
type Options struct {
	// CompareUsingRuntimeTypes selects which type a member comparison is
	// performed at.
	//
	// When false (the default), each member is compared at its declared
	// type: an interface-typed member with a descriptor registered in the
	// typedesc package is compared only through that descriptor's members,
	// so two different concrete types with equal declared-shape state are
	// equivalent.
	//
	// When true, the concrete runtime type of the value found in the member
	// is used, so concrete-only state is inspected and differing concrete
	// types are a mismatch.
	CompareUsingRuntimeTypes bool
}
