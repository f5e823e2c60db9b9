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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-poetry/phoneme"
)

// CommentPrefix starts a comment line.
const CommentPrefix = ";;;"

// ErrMalformed indicates a malformed dictionary record.
var ErrMalformed = errors.New("malformed record")

// Entry is a dictionary record.
type Entry struct {
	// Word is the dictionary word.
	Word string

	// Phonemes is the word's pronunciation.
	Phonemes phoneme.Sequence
}

// Scanner scans a dictionary from start to end.
type Scanner struct {
	s     *bufio.Scanner
	entry *Entry
	line  int
	err   error

	comments int
}

// NewScanner returns a new dictionary scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	// Some dictionaries have very long comment lines.
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Scanner{
		s: s,
	}
}

// Scan advances the scanner to the next dictionary entry, skipping comments
// and blank lines. It returns false if the scan stops either by reaching the
// end of the dictionary or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.s.Scan() {
		s.line++
		line := s.s.Text()
		if strings.HasPrefix(line, CommentPrefix) {
			s.comments++
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) == 1 {
			s.err = fmt.Errorf("%w: line %d: %q has no phonemes", ErrMalformed, s.line, fields[0])
			return false
		}

		seq := make(phoneme.Sequence, len(fields)-1)
		for i, f := range fields[1:] {
			seq[i] = phoneme.Phoneme(f)
		}
		s.entry = &Entry{
			Word:     fields[0],
			Phonemes: seq,
		}
		return true
	}
	return false
}

// Entry returns the current entry.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Line returns the 1-based line number of the current entry.
func (s *Scanner) Line() int {
	return s.line
}

// Comments returns the number of comment lines scanned so far.
func (s *Scanner) Comments() int {
	return s.comments
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("scanning dictionary: %w", err)
	}
	return nil
}
