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

// Package folding implements text transformers for cleaning up input text.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// LineFolder performs line-wise whitespace folding on the input. Each line is
// trimmed, internal whitespace spans are replaced with a single ASCII space,
// and blank lines are removed. Lines are separated by a single '\n' in the
// output, with no trailing newline. "\r\n" and lone '\r' are treated as line
// breaks.
type LineFolder struct {
	// inLine is true after encountering the first non-whitespace rune on the
	// current line.
	inLine bool

	// wsSpan is true if the transformer is currently handling an internal
	// whitespace span.
	wsSpan bool

	// newline is true if a line break should be emitted before the next
	// non-whitespace rune.
	newline bool
}

// Transform implements [transform.Transformer.Transform].
func (f *LineFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if c == '\n' || c == '\r' {
			nSrc += size
			if f.inLine {
				f.newline = true
			}
			f.inLine = false
			f.wsSpan = false
			continue
		}

		if unicode.IsSpace(c) {
			nSrc += size
			if f.inLine {
				f.wsSpan = true
			}
			continue
		}

		// NOTE: we cannot use size here because c could be utf8.RuneError in
		// which case size would be 1 but the length of utf8.RuneError is 3.
		n := utf8.RuneLen(c)
		if f.newline && !f.inLine {
			n++
		}
		if f.wsSpan {
			n++
		}
		if nDst+n > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if f.newline && !f.inLine {
			dst[nDst] = '\n'
			nDst++
			f.newline = false
		}
		if f.wsSpan {
			dst[nDst] = ' '
			nDst++
			f.wsSpan = false
		}
		f.inLine = true
		nSrc += size
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *LineFolder) Reset() {
	*f = LineFolder{}
}
