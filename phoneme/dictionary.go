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
	"iter"
	"maps"
	"slices"
)

// ErrEmptyPronunciation indicates a dictionary entry without phonemes.
var ErrEmptyPronunciation = errors.New("empty pronunciation")

// Dictionary is a pronouncing dictionary mapping upper-case words to their
// pronunciation. A Dictionary is not modified after it is created and may be
// shared by concurrent readers.
type Dictionary struct {
	entries map[string]Sequence
}

// NewDictionary returns a new Dictionary holding a copy of entries. Every
// entry must have at least one phoneme.
func NewDictionary(entries map[string]Sequence) (*Dictionary, error) {
	d := &Dictionary{
		entries: make(map[string]Sequence, len(entries)),
	}
	for w, s := range entries {
		if len(s) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyPronunciation, w)
		}
		d.entries[w] = slices.Clone(s)
	}
	return d, nil
}

// Lookup returns the pronunciation of word. The lookup is an exact match;
// words are expected to already be normalized.
func (d *Dictionary) Lookup(word string) (Sequence, bool) {
	s, ok := d.entries[word]
	return s, ok
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Words returns all dictionary words in sorted order.
func (d *Dictionary) Words() []string {
	return slices.Sorted(maps.Keys(d.entries))
}

// All iterates over the dictionary entries in sorted word order.
func (d *Dictionary) All() iter.Seq2[string, Sequence] {
	return func(yield func(string, Sequence) bool) {
		for _, w := range d.Words() {
			if !yield(w, d.entries[w]) {
				return
			}
		}
	}
}
