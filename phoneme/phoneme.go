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

// Package phoneme implements pronouncing dictionaries and the resolution of
// normalized poems into phonemes.
//
// Phonemes use the ARPAbet symbols of the CMU Pronouncing Dictionary. Vowel
// phonemes carry a trailing lexical stress digit:
//   - 0: no stress
//   - 1: primary stress
//   - 2: secondary stress
package phoneme

import (
	"strings"
)

// Phoneme is a single speech sound, e.g. "HH" or "AA1".
type Phoneme string

// IsVowel returns true if the phoneme ends with a stress digit.
func (p Phoneme) IsVowel() bool {
	if p == "" {
		return false
	}
	c := p[len(p)-1]
	return '0' <= c && c <= '9'
}

// Stress returns the phoneme's stress digit. It returns false if the phoneme
// is not a vowel.
func (p Phoneme) Stress() (int, bool) {
	if !p.IsVowel() {
		return 0, false
	}
	return int(p[len(p)-1] - '0'), true
}

// Sequence is the pronunciation of a single word.
type Sequence []Phoneme

// String returns the phonemes separated by spaces.
func (s Sequence) String() string {
	strs := make([]string, len(s))
	for i, p := range s {
		strs[i] = string(p)
	}
	return strings.Join(strs, " ")
}

// Vowels returns the number of vowel phonemes in the sequence.
func (s Sequence) Vowels() int {
	n := 0
	for _, p := range s {
		if p.IsVowel() {
			n++
		}
	}
	return n
}

// LastVowel returns the index of the last vowel phoneme in the sequence or -1
// if it contains no vowels.
func (s Sequence) LastVowel() int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].IsVowel() {
			return i
		}
	}
	return -1
}

// Parse splits a whitespace separated list of phonemes into a Sequence.
func Parse(s string) Sequence {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	seq := make(Sequence, len(fields))
	for i, f := range fields {
		seq[i] = Phoneme(f)
	}
	return seq
}

// Line holds the pronunciation of each word in a line of a poem.
type Line []Sequence

// Last returns the pronunciation of the last word in the line.
func (l Line) Last() (Sequence, bool) {
	if len(l) == 0 {
		return nil, false
	}
	return l[len(l)-1], true
}

// String returns the words' phonemes separated by " | ".
func (l Line) String() string {
	strs := make([]string, len(l))
	for i, s := range l {
		strs[i] = s.String()
	}
	return strings.Join(strs, " | ")
}

// Pronunciation is the pronunciation of a whole poem, aligned line by line and
// word by word with the normalized poem it was resolved from.
type Pronunciation []Line

// String returns the pronunciation with one line per row, e.g.
//
//	Y EH1 S
//	N OW1 | Y EH1 S
func (p Pronunciation) String() string {
	strs := make([]string, len(p))
	for i, l := range p {
		strs[i] = l.String()
	}
	return strings.Join(strs, "\n")
}
