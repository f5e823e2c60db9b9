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

package cmudict_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-poetry/cmudict"
	"github.com/ianlewis/go-poetry/internal/source"
	"github.com/ianlewis/go-poetry/internal/testutil"
	"github.com/ianlewis/go-poetry/phoneme"
)

func entries(t *testing.T, d *phoneme.Dictionary) map[string]phoneme.Sequence {
	t.Helper()

	m := map[string]phoneme.Sequence{}
	for w, s := range d.All() {
		m[w] = s
	}
	return m
}

// TestRead tests Read.
func TestRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected map[string]phoneme.Sequence
		stats    *cmudict.Stats
		err      error
	}{
		{
			name: "comment line excluded",
			data: ";;; c\nHEART HH AA1 R T\n",
			expected: map[string]phoneme.Sequence{
				"HEART": {"HH", "AA1", "R", "T"},
			},
			stats: &cmudict.Stats{
				Lines:    2,
				Comments: 1,
				Entries:  1,
				Words:    1,
			},
		},
		{
			name: "sample",
			data: testutil.SampleDictionary,
			expected: map[string]phoneme.Sequence{
				"ABSINTHE": {"AE1", "B", "S", "IH0", "N", "TH"},
				"HEART":    {"HH", "AA1", "R", "T"},
				"FONDER":   {"F", "AA1", "N", "D", "ER0"},
			},
			stats: &cmudict.Stats{
				Lines:    4,
				Comments: 1,
				Entries:  3,
				Words:    3,
			},
		},
		{
			name: "last duplicate wins",
			data: "TOMATO  T AH0 M EY1 T OW2\nTOMATO  T AH0 M AA1 T OW2\n",
			expected: map[string]phoneme.Sequence{
				"TOMATO": {"T", "AH0", "M", "AA1", "T", "OW2"},
			},
			stats: &cmudict.Stats{
				Lines:   2,
				Entries: 2,
				Words:   1,
			},
		},
		{
			name:     "empty",
			data:     "",
			expected: map[string]phoneme.Sequence{},
			stats:    &cmudict.Stats{},
		},
		{
			name: "malformed",
			data: "HEART HH AA1 R T\nHUH\n",
			err:  cmudict.ErrMalformed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d, stats, err := cmudict.Read(strings.NewReader(test.data))
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Read; want: %v, got: %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read: %v", err)
			}

			if diff := cmp.Diff(test.expected, entries(t, d)); diff != "" {
				t.Errorf("entries (-want, +got):\n%s", diff)
			}

			// The digest depends on the data so it's checked separately.
			if len(stats.Digest) != 64 {
				t.Errorf("Digest; want 64 hex characters, got: %q", stats.Digest)
			}
			stats.Digest = ""
			if diff := cmp.Diff(test.stats, stats); diff != "" {
				t.Errorf("Stats (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestRead_digest checks that the digest identifies the dictionary data.
func TestRead_digest(t *testing.T) {
	t.Parallel()

	_, s1, err := cmudict.Read(strings.NewReader(testutil.SampleDictionary))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	_, s2, err := cmudict.Read(strings.NewReader(testutil.SampleDictionary))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	_, s3, err := cmudict.Read(strings.NewReader(";;; c\nHEART HH AA1 R T\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if s1.Digest != s2.Digest {
		t.Errorf("Digest; same data, different digests: %q != %q", s1.Digest, s2.Digest)
	}
	if s1.Digest == s3.Digest {
		t.Errorf("Digest; different data, same digest: %q", s1.Digest)
	}
}

// TestOpen tests Open with compressed dictionaries.
func TestOpen(t *testing.T) {
	t.Parallel()

	data := testutil.MakeDictionary(map[string]string{
		"SUN":  "S AH1 N",
		"FUN":  "F AH1 N",
		"TREE": "T R IY1",
	})
	expected := map[string]phoneme.Sequence{
		"SUN":  {"S", "AH1", "N"},
		"FUN":  {"F", "AH1", "N"},
		"TREE": {"T", "R", "IY1"},
	}

	tests := []struct {
		name        string
		file        string
		compression source.Compression
	}{
		{name: "plain", file: "cmudict.dict", compression: source.None},
		{name: "gzip", file: "cmudict.dict.gz", compression: source.Gzip},
		{name: "dictzip", file: "cmudict.dict.dz", compression: source.DictZip},
		{name: "xz", file: "cmudict.dict.xz", compression: source.XZ},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.WriteFile(t, test.file, data, test.compression)
			d, stats, err := cmudict.Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if diff := cmp.Diff(expected, entries(t, d)); diff != "" {
				t.Errorf("entries (-want, +got):\n%s", diff)
			}
			if want, got := 3, stats.Words; want != got {
				t.Errorf("Words; want: %d, got: %d", want, got)
			}
		})
	}
}

func TestOpen_notExist(t *testing.T) {
	t.Parallel()

	_, _, err := cmudict.Open("/does/not/exist/cmudict.dict")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open; want: %v, got: %v", os.ErrNotExist, err)
	}
}
