// Copyright 2025 Ian Lewis
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

// Package form implements poetry forms and checking a poem's prosodic profile
// against them.
//
// A form is a template giving the expected number of syllables and a rhyme
// symbol for each line. Lines whose symbols are equal must rhyme and lines
// whose symbols differ must not. The Wildcard symbol places no constraint on
// a line's rhyme. Symbols are abstract: a Limerick's "AABBA" matches a poem
// whose rhyme scheme is labeled "AABBA" as well as one that would be written
// "BBAAB".
package form

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Wildcard is the rhyme symbol that matches any rhyme.
const Wildcard = "*"

// Form is a named poetry form.
type Form struct {
	// Name is the form's name, e.g. "Haiku".
	Name string

	// Syllables is the expected number of syllables per line.
	Syllables []int

	// Rhymes is the rhyme symbol per line.
	Rhymes []string
}

// Len returns the number of lines in the form.
func (f *Form) Len() int {
	return len(f.Syllables)
}

// Pattern returns the rhyme symbols joined together, e.g. "AABBA".
func (f *Form) Pattern() string {
	return strings.Join(f.Rhymes, "")
}

// String returns the form's name followed by its lines, as in a form
// description file.
func (f *Form) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	for i := range f.Syllables {
		b.WriteString("\n")
		b.WriteString(strconv.Itoa(f.Syllables[i]))
		b.WriteString(" ")
		if i < len(f.Rhymes) {
			b.WriteString(f.Rhymes[i])
		}
	}
	return b.String()
}

// Forms maps form names to forms.
type Forms map[string]*Form

// Names returns the form names in sorted order.
func (fs Forms) Names() []string {
	return slices.Sorted(maps.Keys(fs))
}
