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

package cmudict

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/ianlewis/go-poetry/internal/source"
	"github.com/ianlewis/go-poetry/phoneme"
)

// Stats holds statistics about a dictionary that was read.
type Stats struct {
	// Lines is the number of lines read.
	Lines int

	// Comments is the number of comment lines.
	Comments int

	// Entries is the number of records read, including duplicates.
	Entries int

	// Words is the number of distinct words in the dictionary.
	Words int

	// Digest is the hex encoded BLAKE3 digest of the dictionary data.
	Digest string
}

// Read reads a dictionary from r. When a word appears more than once the
// last record wins.
func Read(r io.Reader) (*phoneme.Dictionary, *Stats, error) {
	h := blake3.New()
	s := NewScanner(io.TeeReader(r, h))

	stats := &Stats{}
	entries := map[string]phoneme.Sequence{}
	for s.Scan() {
		e := s.Entry()
		entries[e.Word] = e.Phonemes
		stats.Entries++
	}
	if err := s.Err(); err != nil {
		return nil, nil, err
	}

	d, err := phoneme.NewDictionary(entries)
	if err != nil {
		return nil, nil, fmt.Errorf("creating dictionary: %w", err)
	}

	stats.Lines = s.Line()
	stats.Comments = s.Comments()
	stats.Words = d.Len()
	stats.Digest = hex.EncodeToString(h.Sum(nil))
	return d, stats, nil
}

// Open reads the dictionary at path. The file may be compressed with gzip
// (.gz), dictzip (.dz), or xz (.xz).
func Open(path string) (*phoneme.Dictionary, *Stats, error) {
	f, err := source.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	d, stats, err := Read(f)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, stats, nil
}
