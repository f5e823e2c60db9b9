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

// Package poemfile reads poem text files.
//
// A poem file is plain text with one poem line per line. Blank lines are
// ignored and each line is trimmed with internal whitespace folded to a
// single space. Poems may also be read from HTML, in which case markup is
// converted to plain text first.
package poemfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/k3a/html2text"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-poetry/internal/folding"
	"github.com/ianlewis/go-poetry/internal/source"
)

// Read reads the poem text from r.
func Read(r io.Reader) (string, error) {
	b, err := io.ReadAll(transform.NewReader(r, &folding.LineFolder{}))
	if err != nil {
		return "", fmt.Errorf("reading poem: %w", err)
	}
	return string(b), nil
}

// ReadHTML reads an HTML document from r and returns its text as a poem.
func ReadHTML(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading poem: %w", err)
	}
	text := html2text.HTML2TextWithOptions(string(b), html2text.WithUnixLineBreaks())
	return Read(strings.NewReader(text))
}

// Open reads the poem file at path. Files with an .html or .htm extension
// are read as HTML. The file may be compressed.
func Open(path string) (string, error) {
	f, err := source.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening poem: %w", err)
	}
	defer f.Close()

	read := Read
	switch source.BaseExt(path) {
	case ".html", ".htm":
		read = ReadHTML
	}

	text, err := read(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}
