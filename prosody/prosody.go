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

// Package prosody computes syllable counts and rhyme schemes from the
// pronunciation of a poem.
//
// Syllables are counted as vowel phonemes. Two lines rhyme when their rhyme
// keys are identical. The rhyme key of a line is the pronunciation of its last
// word starting at the last vowel phoneme, so "SUN" (S AH1 N) and "FUN"
// (F AH1 N) share the key "AH1 N". Stress digits are part of the key.
package prosody

import (
	"errors"
	"fmt"

	"github.com/ianlewis/go-poetry/phoneme"
)

var (
	// ErrNoRhyme indicates that a rhyme key could not be computed for a line.
	ErrNoRhyme = errors.New("no rhyme")

	// ErrEmptyLine indicates a line without words.
	ErrEmptyLine = fmt.Errorf("%w: empty line", ErrNoRhyme)

	// ErrNoVowel indicates that the last word of a line has no vowel phoneme.
	ErrNoVowel = fmt.Errorf("%w: no vowel in last word", ErrNoRhyme)
)

// Profile is the prosodic profile of a poem. All slices have one entry per
// line of the poem.
type Profile struct {
	// Syllables are the number of syllables in each line.
	Syllables []int

	// Rhymes are the rhyme labels of each line.
	Rhymes []Label

	// Keys are the rhyme keys of each line.
	Keys []phoneme.Sequence
}

// Len returns the number of lines in the profile.
func (p *Profile) Len() int {
	return len(p.Syllables)
}

// Analyze computes the syllable counts and rhyme scheme of p.
func Analyze(p phoneme.Pronunciation) (*Profile, error) {
	keys, err := RhymeKeys(p)
	if err != nil {
		return nil, err
	}

	r := NewRhymer()
	return &Profile{
		Syllables: Syllables(p),
		Rhymes:    r.Labels(keys),
		Keys:      keys,
	}, nil
}

// Syllables returns the number of syllables in each line of p. The number of
// syllables is the number of vowel phonemes across all words of the line.
func Syllables(p phoneme.Pronunciation) []int {
	counts := make([]int, len(p))
	for i, l := range p {
		for _, s := range l {
			counts[i] += s.Vowels()
		}
	}
	return counts
}

// RhymeKey returns the rhyme key of l: the phonemes of the last word from its
// last vowel phoneme to the end of the word.
func RhymeKey(l phoneme.Line) (phoneme.Sequence, error) {
	last, ok := l.Last()
	if !ok {
		return nil, ErrEmptyLine
	}
	i := last.LastVowel()
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoVowel, last.String())
	}
	return last[i:], nil
}

// RhymeKeys returns the rhyme key of every line of p.
func RhymeKeys(p phoneme.Pronunciation) ([]phoneme.Sequence, error) {
	keys := make([]phoneme.Sequence, len(p))
	for i, l := range p {
		k, err := RhymeKey(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		keys[i] = k
	}
	return keys, nil
}

// RhymeScheme returns the rhyme label of each line of p.
func RhymeScheme(p phoneme.Pronunciation) ([]Label, error) {
	keys, err := RhymeKeys(p)
	if err != nil {
		return nil, err
	}
	return NewRhymer().Labels(keys), nil
}
