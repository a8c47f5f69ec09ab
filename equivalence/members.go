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

import (
	"reflect"
	"sync"
)

// structField is one exported field of a struct type, in declaration order.
type structField struct {
	index int
	name  string
	typ   reflect.Type
}

// fieldCache memoizes per-type field enumeration so repeated comparisons of
// the same types do not re-walk reflect metadata.
var fieldCache sync.Map // reflect.Type -> []structField

// exportedFields returns t's exported fields in declaration order. t must be
// a struct type.
func exportedFields(t reflect.Type) []structField {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]structField)
	}

	var fields []structField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fields = append(fields, structField{index: i, name: f.Name, typ: f.Type})
	}

	fieldCache.Store(t, fields)
	return fields
}
