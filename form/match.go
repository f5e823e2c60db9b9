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

package form

import (
	"fmt"

	"github.com/ianlewis/go-poetry/prosody"
)

// Kind is a category of mismatch between a poem and a form.
type Kind int

const (
	// LineCountMismatch means the poem and form have a different number of
	// lines. No other checks are made.
	LineCountMismatch Kind = iota

	// SyllableMismatch means a line has the wrong number of syllables.
	SyllableMismatch

	// RhymeMissing means a line does not rhyme with an earlier line with
	// the same rhyme symbol.
	RhymeMissing

	// RhymeUnexpected means a line rhymes with an earlier line with a
	// different rhyme symbol.
	RhymeUnexpected
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case LineCountMismatch:
		return "line count"
	case SyllableMismatch:
		return "syllables"
	case RhymeMissing:
		return "missing rhyme"
	case RhymeUnexpected:
		return "unexpected rhyme"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Mismatch describes one way a poem does not conform to a form.
type Mismatch struct {
	Kind Kind

	// Line is the 1-based line number. It is zero for LineCountMismatch.
	Line int

	// Other is the 1-based number of the earlier line involved in a rhyme
	// mismatch.
	Other int

	// Expected and Actual are the expected and actual line counts for
	// LineCountMismatch and syllable counts for SyllableMismatch.
	Expected int
	Actual   int
}

// String returns a human readable description of the mismatch.
func (m Mismatch) String() string {
	switch m.Kind {
	case LineCountMismatch:
		return fmt.Sprintf("expected %d lines, got %d", m.Expected, m.Actual)
	case SyllableMismatch:
		return fmt.Sprintf("line %d: expected %d syllables, got %d", m.Line, m.Expected, m.Actual)
	case RhymeMissing:
		return fmt.Sprintf("line %d: should rhyme with line %d", m.Line, m.Other)
	case RhymeUnexpected:
		return fmt.Sprintf("line %d: should not rhyme with line %d", m.Line, m.Other)
	default:
		return fmt.Sprintf("line %d: %v", m.Line, m.Kind)
	}
}

// Status is the overall outcome of matching a poem against a form.
type Status int

const (
	// StatusMatch means the poem conforms to the form.
	StatusMatch Status = iota

	// StatusMismatch means one or more lines violate the form.
	StatusMismatch

	// StatusLineCount means the poem has the wrong number of lines.
	StatusLineCount
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusMatch:
		return "match"
	case StatusMismatch:
		return "mismatch"
	case StatusLineCount:
		return "line count mismatch"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the result of matching a poem against a form.
type Result struct {
	Form       *Form
	Mismatches []Mismatch
}

// OK returns true if the poem conforms to the form.
func (r *Result) OK() bool {
	return len(r.Mismatches) == 0
}

// Status returns the overall outcome.
func (r *Result) Status() Status {
	switch {
	case r.OK():
		return StatusMatch
	case r.Mismatches[0].Kind == LineCountMismatch:
		return StatusLineCount
	default:
		return StatusMismatch
	}
}

// Line returns the mismatches for the given 1-based line.
func (r *Result) Line(n int) []Mismatch {
	var ms []Mismatch
	for _, m := range r.Mismatches {
		if m.Line == n {
			ms = append(ms, m)
		}
	}
	return ms
}

// Match checks the prosodic profile p against f. Mismatches are reported in
// line order; for each line the syllable mismatch comes before any rhyme
// mismatch.
func Match(p *prosody.Profile, f *Form) *Result {
	r := &Result{Form: f}

	if p.Len() != f.Len() || len(p.Rhymes) != len(f.Rhymes) {
		r.Mismatches = []Mismatch{{
			Kind:     LineCountMismatch,
			Expected: f.Len(),
			Actual:   p.Len(),
		}}
		return r
	}

	// firstBySymbol is the first line (0-based) with a given form symbol.
	firstBySymbol := map[string]int{}
	// firstByLabel is the first line (0-based) with a given computed label.
	firstByLabel := map[prosody.Label]int{}

	for i := range f.Syllables {
		if want, got := f.Syllables[i], p.Syllables[i]; want != got {
			r.Mismatches = append(r.Mismatches, Mismatch{
				Kind:     SyllableMismatch,
				Line:     i + 1,
				Expected: want,
				Actual:   got,
			})
		}

		sym, label := f.Rhymes[i], p.Rhymes[i]
		if sym == Wildcard {
			continue
		}

		if j, ok := firstBySymbol[sym]; !ok {
			firstBySymbol[sym] = i
		} else if p.Rhymes[j] != label {
			r.Mismatches = append(r.Mismatches, Mismatch{
				Kind:  RhymeMissing,
				Line:  i + 1,
				Other: j + 1,
			})
		}

		if j, ok := firstByLabel[label]; !ok {
			firstByLabel[label] = i
		} else if f.Rhymes[j] != sym {
			r.Mismatches = append(r.Mismatches, Mismatch{
				Kind:  RhymeUnexpected,
				Line:  i + 1,
				Other: j + 1,
			})
		}
	}

	return r
}
