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

// Package testutil contains fixtures shared by tests.
package testutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
	"github.com/ulikunitz/xz"

	"github.com/ianlewis/go-poetry/internal/source"
)

// SampleDictionary is a small pronouncing dictionary with a comment line.
const SampleDictionary = `;;; Comment line
ABSINTHE  AE1 B S IH0 N TH
HEART  HH AA1 R T
FONDER  F AA1 N D ER0
`

// SampleForms is a form description file with two forms.
const SampleForms = `Limerick
8 A
8 A
5 B
5 B
8 A

Haiku
5 *
7 * 
5 *
`

// SamplePoem is a poem file with blank lines and surrounding whitespace.
const SamplePoem = `  Is this mic on?

Get off my lawn.
`

// MakeDictionary returns the text of a pronouncing dictionary containing the
// given entries, mapping words to space separated phonemes. Entries are
// written in sorted order.
func MakeDictionary(entries map[string]string) []byte {
	words := make([]string, 0, len(entries))
	for w := range entries {
		words = append(words, w)
	}
	slices.Sort(words)

	var b strings.Builder
	b.WriteString(";;; test dictionary\n")
	for _, w := range words {
		b.WriteString(w)
		b.WriteString("  ")
		b.WriteString(entries[w])
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// WriteFile writes data to a file named name in a temporary directory
// compressed with c and returns its path. The directory is removed when the
// test finishes.
func WriteFile(t *testing.T, name string, data []byte, c source.Compression) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if c == source.None {
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
		return path
	}

	var w io.WriteCloser
	switch c {
	case source.Gzip:
		w = gzip.NewWriter(f)
	case source.DictZip:
		w, err = dictzip.NewWriter(f)
	case source.XZ:
		w, err = xz.NewWriter(f)
	default:
		t.Fatalf("unsupported compression: %d", c)
	}
	if err != nil {
		t.Fatal(err)
	}

	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}
