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

// Package normalize turns raw poem text into lines of dictionary-ready words.
//
// Words are stripped of punctuation at both ends and upper-cased so that they
// can be looked up directly in a pronouncing dictionary. Punctuation inside a
// word (e.g. the hyphen in "TWENTY-FIVE" or the apostrophe in "CAN'T") is
// preserved.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Punctuation is the set of characters stripped from both ends of a word.
const Punctuation = "!\"'`@$%^&_-+={}|\\/,;:.?)([]<>*#" +
	" \t\n\r\v\f" +
	"“”‘’–—…"

// Line is a single line of normalized words.
type Line []string

// String returns the words of the line separated by a single space.
func (l Line) String() string {
	return strings.Join(l, " ")
}

// Poem is a normalized poem. It never contains empty lines or empty words.
type Poem []Line

// String returns the poem as text with one line per row. Normalizing the
// result yields the same Poem.
func (p Poem) String() string {
	lines := make([]string, len(p))
	for i, l := range p {
		lines[i] = l.String()
	}
	return strings.Join(lines, "\n")
}

// Words returns the total number of words in the poem.
func (p Poem) Words() int {
	n := 0
	for _, l := range p {
		n += len(l)
	}
	return n
}

// upper returns a transformer that upper-cases text and leaves it composed.
// Upper-casing can decompose some runes so NFC is applied on both sides. A new
// transformer is needed per call as they keep internal state.
func upper() transform.Transformer {
	return transform.Chain(norm.NFC, cases.Upper(language.Und), norm.NFC)
}

// Word strips punctuation and whitespace from both ends of s and returns the
// upper-cased remainder. The result is empty if s has no other characters.
func Word(s string) string {
	s = strings.Trim(s, Punctuation)
	if s == "" {
		return ""
	}
	u, _, err := transform.String(upper(), s)
	if err != nil {
		// Upper-casing valid or invalid UTF-8 does not fail in practice.
		return strings.ToUpper(s)
	}
	return u
}

// Text normalizes raw poem text. Lines are split on line breaks, trimmed and
// split into words on whitespace. Blank lines, as well as words and lines that
// contain nothing but punctuation, are dropped.
func Text(raw string) Poem {
	var p Poem
	for _, rawLine := range strings.FieldsFunc(raw, isLineBreak) {
		if l := line(rawLine); len(l) > 0 {
			p = append(p, l)
		}
	}
	return p
}

func line(s string) Line {
	var l Line
	for _, f := range strings.Fields(s) {
		if w := Word(f); w != "" {
			l = append(l, w)
		}
	}
	return l
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}
