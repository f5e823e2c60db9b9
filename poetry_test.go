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

package poetry

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-poetry/form"
	"github.com/ianlewis/go-poetry/formfile"
	"github.com/ianlewis/go-poetry/internal/source"
	"github.com/ianlewis/go-poetry/internal/testutil"
	"github.com/ianlewis/go-poetry/phoneme"
	"github.com/ianlewis/go-poetry/prosody"
)

var testWords = map[string]string{
	"A":       "AH0",
	"AN":      "AE1 N",
	"BEE":     "B IY1",
	"CAT":     "K AE1 T",
	"DAY":     "D EY1",
	"FAT":     "F AE1 T",
	"FROG":    "F R AA1 G",
	"FUN":     "F AH1 N",
	"HAT":     "HH AE1 T",
	"HMM":     "HH M",
	"IS":      "IH1 Z",
	"MAT":     "M AE1 T",
	"OLD":     "OW1 L D",
	"ON":      "AA1 N",
	"POND":    "P AA1 N D",
	"SAT":     "S AE1 T",
	"SILENT":  "S AY1 L AH0 N T",
	"SUN":     "S AH1 N",
	"THE":     "DH AH0",
	"TREE":    "T R IY1",
	"WAY":     "W EY1",
	"JUMPING": "JH AH1 M P IH0 NG",
	"INTO":    "IH0 N T UW1",
	"SPLASH":  "S P L AE1 SH",
	"SILENCE": "S AY1 L AH0 N S",
	"AGAIN":   "AH0 G EH1 N",
}

const testForms = `Couplet
3 A
3 A

Haiku
5 *
7 *
5 *

Tercet
1 A
1 A
1 B
`

func newTestChecker(t *testing.T) *Checker {
	t.Helper()

	entries := make(map[string]phoneme.Sequence, len(testWords))
	for w, p := range testWords {
		entries[w] = phoneme.Parse(p)
	}
	d, err := phoneme.NewDictionary(entries)
	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}
	forms, err := formfile.ParseString(testForms)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return NewChecker(d, forms)
}

func TestChecker_Analyze(t *testing.T) {
	t.Parallel()

	c := newTestChecker(t)

	a, err := c.Analyze("The sun!\n\n  is fun,\nA tree.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if diff := cmp.Diff("THE SUN\nIS FUN\nA TREE", a.Poem.String()); diff != "" {
		t.Errorf("Poem (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("DH AH0 | S AH1 N\nIH1 Z | F AH1 N\nAH0 | T R IY1", a.Pronunciation.String()); diff != "" {
		t.Errorf("Pronunciation (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 2, 2}, a.Profile.Syllables); diff != "" {
		t.Errorf("Syllables (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]prosody.Label{"A", "A", "B"}, a.Profile.Rhymes); diff != "" {
		t.Errorf("Rhymes (-want, +got):\n%s", diff)
	}
}

func TestChecker_Analyze_missing(t *testing.T) {
	t.Parallel()

	c := newTestChecker(t)

	_, err := c.Analyze("The dog\nis fun\nA cow")
	if !errors.Is(err, phoneme.ErrNotFound) {
		t.Fatalf("Analyze; want: %v, got: %v", phoneme.ErrNotFound, err)
	}
	if diff := cmp.Diff([]string{"DOG", "COW"}, phoneme.Missing(err)); diff != "" {
		t.Fatalf("Missing (-want, +got):\n%s", diff)
	}
}

func TestChecker_Analyze_noVowel(t *testing.T) {
	t.Parallel()

	c := newTestChecker(t)

	_, err := c.Analyze("The sun\nHmm")
	if !errors.Is(err, prosody.ErrNoVowel) {
		t.Fatalf("Analyze; want: %v, got: %v", prosody.ErrNoVowel, err)
	}
}

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		form     string
		status   form.Status
		expected string
		err      error
	}{
		{
			name:     "tercet",
			text:     "Sun\nFun\nTree",
			form:     "Tercet",
			status:   form.StatusMatch,
			expected: "Tercet: match",
		},
		{
			name:     "tercet does not rhyme",
			text:     "Sun\nTree\nFun",
			form:     "Tercet",
			status:   form.StatusMismatch,
			expected: "Tercet: mismatch\n  line 2: should rhyme with line 1\n  line 3: should not rhyme with line 1",
		},
		{
			name:     "couplet line count",
			text:     "The fat cat",
			form:     "Couplet",
			status:   form.StatusLineCount,
			expected: "Couplet: line count mismatch\n  expected 2 lines, got 1",
		},
		{
			name:     "couplet syllables",
			text:     "The fat cat\nsat on a mat",
			form:     "Couplet",
			status:   form.StatusMismatch,
			expected: "Couplet: mismatch\n  line 2: expected 3 syllables, got 4",
		},
		{
			name:     "haiku",
			text:     "An old silent pond\nA frog jumping into pond\nsplash! Silence again.",
			form:     "Haiku",
			status:   form.StatusMatch,
			expected: "Haiku: match",
		},
		{
			name: "unknown form",
			text: "Sun",
			form: "Sonnet",
			err:  ErrUnknownForm,
		},
		{
			name: "missing word",
			text: "Sun\nFun\nDog",
			form: "Tercet",
			err:  phoneme.ErrNotFound,
		},
	}

	c := newTestChecker(t)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			r, err := c.Check(test.text, test.form)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Check; want: %v, got: %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if want, got := test.status, r.Result.Status(); want != got {
				t.Errorf("Status; want: %v, got: %v", want, got)
			}
			if want, got := test.status == form.StatusMatch, r.OK(); want != got {
				t.Errorf("OK; want: %v, got: %v", want, got)
			}
			if diff := cmp.Diff(test.expected, r.String()); diff != "" {
				t.Errorf("String (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestChecker_Detect(t *testing.T) {
	t.Parallel()

	c := newTestChecker(t)

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "tercet",
			text:     "Sun\nFun\nTree",
			expected: []string{"Tercet"},
		},
		{
			name:     "couplet",
			text:     "The fat cat\nsat on mat",
			expected: []string{"Couplet"},
		},
		{
			name:     "no match",
			text:     "Sun",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			names, err := c.Detect(test.text)
			if err != nil {
				t.Fatalf("Detect: %v", err)
			}
			if diff := cmp.Diff(test.expected, names); diff != "" {
				t.Fatalf("Detect (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestChecker_Rhymes(t *testing.T) {
	t.Parallel()

	c := newTestChecker(t)

	tests := []struct {
		word     string
		expected []string
		err      error
	}{
		{
			word:     "cat",
			expected: []string{"FAT", "HAT", "MAT", "SAT"},
		},
		{
			word:     "Sun!",
			expected: []string{"FUN"},
		},
		{
			word:     "day",
			expected: []string{"WAY"},
		},
		{
			word:     "frog",
			expected: nil,
		},
		{
			word: "dog",
			err:  phoneme.ErrNotFound,
		},
		{
			word: "hmm",
			err:  prosody.ErrNoRhyme,
		},
	}

	for _, test := range tests {
		t.Run(test.word, func(t *testing.T) {
			t.Parallel()

			words, err := c.Rhymes(test.word)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Rhymes; want: %v, got: %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Rhymes: %v", err)
			}
			if diff := cmp.Diff(test.expected, words); diff != "" {
				t.Fatalf("Rhymes (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFromReader(t *testing.T) {
	t.Parallel()

	r := &FileReader{
		Dictionary: testutil.WriteFile(t, "cmudict.dict.gz", testutil.MakeDictionary(map[string]string{
			"IS":   "IH1 Z",
			"THIS": "DH IH1 S",
			"MIC":  "M AY1 K",
			"ON":   "AA1 N",
			"GET":  "G EH1 T",
			"OFF":  "AO1 F",
			"MY":   "M AY1",
			"LAWN": "L AO1 N",
		}), source.Gzip),
		Forms: testutil.WriteFile(t, "forms.txt", []byte(testutil.SampleForms), source.None),
		Poem:  testutil.WriteFile(t, "poem.txt", []byte(testutil.SamplePoem), source.None),
	}

	c, text, err := FromReader(r)
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if diff := cmp.Diff("Is this mic on?\nGet off my lawn.", text); diff != "" {
		t.Errorf("poem (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Haiku", "Limerick"}, c.Forms().Names()); diff != "" {
		t.Errorf("Forms (-want, +got):\n%s", diff)
	}
	if want, got := 8, c.Dictionary().Len(); want != got {
		t.Errorf("Dictionary.Len; want: %d, got: %d", want, got)
	}

	a, err := c.Analyze(text)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if diff := cmp.Diff([]int{4, 4}, a.Profile.Syllables); diff != "" {
		t.Errorf("Syllables (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]prosody.Label{"A", "B"}, a.Profile.Rhymes); diff != "" {
		t.Errorf("Rhymes (-want, +got):\n%s", diff)
	}
}

func TestFromReader_errors(t *testing.T) {
	t.Parallel()

	dict := testutil.WriteFile(t, "cmudict.dict", testutil.MakeDictionary(map[string]string{"SUN": "S AH1 N"}), source.None)
	forms := testutil.WriteFile(t, "forms.txt", []byte(testutil.SampleForms), source.None)

	tests := []struct {
		name   string
		reader *FileReader
	}{
		{
			name:   "missing dictionary",
			reader: &FileReader{Dictionary: "does-not-exist.dict", Forms: forms},
		},
		{
			name:   "missing forms",
			reader: &FileReader{Dictionary: dict, Forms: "does-not-exist.txt"},
		},
		{
			name:   "missing poem",
			reader: &FileReader{Dictionary: dict, Forms: forms, Poem: "does-not-exist.txt"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := FromReader(test.reader); err == nil {
				t.Fatal("FromReader; want error, got nil")
			}
		})
	}
}

func TestFileReader_emptyPoem(t *testing.T) {
	t.Parallel()

	text, err := (&FileReader{}).ReadPoem()
	if err != nil {
		t.Fatalf("ReadPoem: %v", err)
	}
	if text != "" {
		t.Fatalf("ReadPoem; want: %q, got: %q", "", text)
	}
}
