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

package phoneme

import (
	"errors"
	"fmt"

	"github.com/ianlewis/go-poetry/normalize"
)

// ErrNotFound indicates that a word is not in the pronouncing dictionary.
var ErrNotFound = errors.New("word not found")

// LookupError is returned when a word of a poem is missing from the
// dictionary.
type LookupError struct {
	// Word is the normalized word.
	Word string

	// Line is the 1-based line number in the normalized poem. It is zero if
	// the word was looked up on its own.
	Line int

	// Position is the 1-based position of the word in the line.
	Position int
}

// Error implements error.
func (e *LookupError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%v: %q", ErrNotFound, e.Word)
	}
	return fmt.Sprintf("line %d, word %d: %v: %q", e.Line, e.Position, ErrNotFound, e.Word)
}

// Unwrap returns ErrNotFound.
func (e *LookupError) Unwrap() error {
	return ErrNotFound
}

// Resolve looks up the pronunciation of every word in p. If any words are
// missing from the dictionary, a nil Pronunciation is returned along with
// an error joining a *LookupError for each missing word.
func Resolve(p normalize.Poem, d *Dictionary) (Pronunciation, error) {
	var errs []error
	pron := make(Pronunciation, len(p))
	for i, l := range p {
		pl := make(Line, len(l))
		for j, w := range l {
			s, ok := d.Lookup(w)
			if !ok {
				errs = append(errs, &LookupError{
					Word:     w,
					Line:     i + 1,
					Position: j + 1,
				})
				continue
			}
			pl[j] = s
		}
		pron[i] = pl
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return pron, nil
}

// Missing returns the distinct words in err that were not found in the
// dictionary, in the order they first appear in the poem.
func Missing(err error) []string {
	var words []string
	seen := map[string]bool{}
	for _, e := range flatten(err) {
		lerr, ok := e.(*LookupError)
		if ok && !seen[lerr.Word] {
			seen[lerr.Word] = true
			words = append(words, lerr.Word)
		}
	}
	return words
}

func flatten(err error) []error {
	switch e := err.(type) {
	case nil:
		return nil
	case *LookupError:
		return []error{e}
	case interface{ Unwrap() []error }:
		var errs []error
		for _, u := range e.Unwrap() {
			errs = append(errs, flatten(u)...)
		}
		return errs
	case interface{ Unwrap() error }:
		return flatten(e.Unwrap())
	default:
		return []error{err}
	}
}
