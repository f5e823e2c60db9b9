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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-poetry/prosody"
)

var (
	haiku = &Form{
		Name:      "Haiku",
		Syllables: []int{5, 7, 5},
		Rhymes:    []string{"*", "*", "*"},
	}

	limerick = &Form{
		Name:      "Limerick",
		Syllables: []int{8, 8, 5, 5, 8},
		Rhymes:    []string{"A", "A", "B", "B", "A"},
	}

	quatrain = &Form{
		Name:      "Quatrain",
		Syllables: []int{8, 8, 8, 8},
		Rhymes:    []string{"A", "*", "A", "*"},
	}
)

func profile(syllables []int, rhymes string) *prosody.Profile {
	labels := make([]prosody.Label, len(rhymes))
	for i, r := range rhymes {
		labels[i] = prosody.Label(string(r))
	}
	return &prosody.Profile{
		Syllables: syllables,
		Rhymes:    labels,
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		profile  *prosody.Profile
		form     *Form
		status   Status
		expected []Mismatch
	}{
		{
			name:    "haiku any rhyme",
			profile: profile([]int{5, 7, 5}, "AAA"),
			form:    haiku,
			status:  StatusMatch,
		},
		{
			name:    "haiku distinct rhymes",
			profile: profile([]int{5, 7, 5}, "ABC"),
			form:    haiku,
			status:  StatusMatch,
		},
		{
			name:    "haiku syllables",
			profile: profile([]int{5, 8, 4}, "ABC"),
			form:    haiku,
			status:  StatusMismatch,
			expected: []Mismatch{
				{Kind: SyllableMismatch, Line: 2, Expected: 7, Actual: 8},
				{Kind: SyllableMismatch, Line: 3, Expected: 5, Actual: 4},
			},
		},
		{
			name:    "haiku line count",
			profile: profile([]int{5, 7, 5, 7}, "ABCD"),
			form:    haiku,
			status:  StatusLineCount,
			expected: []Mismatch{
				{Kind: LineCountMismatch, Expected: 3, Actual: 4},
			},
		},
		{
			name:    "empty poem",
			profile: profile(nil, ""),
			form:    haiku,
			status:  StatusLineCount,
			expected: []Mismatch{
				{Kind: LineCountMismatch, Expected: 3, Actual: 0},
			},
		},
		{
			name:    "limerick",
			profile: profile([]int{8, 8, 5, 5, 8}, "AABBA"),
			form:    limerick,
			status:  StatusMatch,
		},
		{
			name:    "limerick renamed labels",
			profile: profile([]int{8, 8, 5, 5, 8}, "BBAAB"),
			form:    limerick,
			status:  StatusMatch,
		},
		{
			name:    "limerick first lines do not rhyme",
			profile: profile([]int{8, 8, 5, 5, 8}, "ABCCA"),
			form:    limerick,
			status:  StatusMismatch,
			expected: []Mismatch{
				{Kind: RhymeMissing, Line: 2, Other: 1},
			},
		},
		{
			name:    "limerick all rhyme",
			profile: profile([]int{8, 8, 5, 5, 8}, "AAAAA"),
			form:    limerick,
			status:  StatusMismatch,
			expected: []Mismatch{
				{Kind: RhymeUnexpected, Line: 3, Other: 1},
				{Kind: RhymeUnexpected, Line: 4, Other: 1},
			},
		},
		{
			name:    "limerick syllables and rhyme",
			profile: profile([]int{8, 9, 5, 5, 8}, "AABBC"),
			form:    limerick,
			status:  StatusMismatch,
			expected: []Mismatch{
				{Kind: SyllableMismatch, Line: 2, Expected: 8, Actual: 9},
				{Kind: RhymeMissing, Line: 5, Other: 1},
			},
		},
		{
			name:    "wildcard lines may rhyme with anything",
			profile: profile([]int{8, 8, 8, 8}, "AAAA"),
			form:    quatrain,
			status:  StatusMatch,
		},
		{
			name:    "wildcard lines do not anchor rhymes",
			profile: profile([]int{8, 8, 8, 8}, "ABCB"),
			form:    quatrain,
			status:  StatusMismatch,
			expected: []Mismatch{
				{Kind: RhymeMissing, Line: 3, Other: 1},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			r := Match(test.profile, test.form)
			if diff := cmp.Diff(test.expected, r.Mismatches); diff != "" {
				t.Fatalf("Mismatches (-want, +got):\n%s", diff)
			}
			if want, got := test.status, r.Status(); want != got {
				t.Fatalf("Status; want: %v, got: %v", want, got)
			}
			if want, got := len(test.expected) == 0, r.OK(); want != got {
				t.Fatalf("OK; want: %v, got: %v", want, got)
			}
			if r.Form != test.form {
				t.Fatalf("Form; want: %v, got: %v", test.form.Name, r.Form)
			}
		})
	}
}

func TestResult_Line(t *testing.T) {
	t.Parallel()

	r := Match(profile([]int{8, 9, 5, 5, 8}, "ABBBA"), limerick)

	expected := []Mismatch{
		{Kind: SyllableMismatch, Line: 2, Expected: 8, Actual: 9},
		{Kind: RhymeMissing, Line: 2, Other: 1},
	}
	if diff := cmp.Diff(expected, r.Line(2)); diff != "" {
		t.Fatalf("Line(2) (-want, +got):\n%s", diff)
	}
	if got := r.Line(1); got != nil {
		t.Fatalf("Line(1); want: nil, got: %v", got)
	}
}

func TestMismatch_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mismatch Mismatch
		expected string
	}{
		{
			mismatch: Mismatch{Kind: LineCountMismatch, Expected: 3, Actual: 4},
			expected: "expected 3 lines, got 4",
		},
		{
			mismatch: Mismatch{Kind: SyllableMismatch, Line: 2, Expected: 7, Actual: 6},
			expected: "line 2: expected 7 syllables, got 6",
		},
		{
			mismatch: Mismatch{Kind: RhymeMissing, Line: 2, Other: 1},
			expected: "line 2: should rhyme with line 1",
		},
		{
			mismatch: Mismatch{Kind: RhymeUnexpected, Line: 3, Other: 1},
			expected: "line 3: should not rhyme with line 1",
		},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, test.mismatch.String()); diff != "" {
				t.Fatalf("String (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestForm(t *testing.T) {
	t.Parallel()

	if want, got := "AABBA", limerick.Pattern(); want != got {
		t.Errorf("Pattern; want: %q, got: %q", want, got)
	}
	if want, got := "Haiku\n5 *\n7 *\n5 *", haiku.String(); want != got {
		t.Errorf("String; want: %q, got: %q", want, got)
	}

	forms := Forms{"Limerick": limerick, "Haiku": haiku}
	if diff := cmp.Diff([]string{"Haiku", "Limerick"}, forms.Names()); diff != "" {
		t.Errorf("Names (-want, +got):\n%s", diff)
	}
}
