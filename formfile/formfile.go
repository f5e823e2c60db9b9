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

// Package formfile implements reading poetry form description files.
//
// A form description file contains blocks separated by blank lines. Each
// block starts with the form's name on a line of its own, followed by one
// line per poem line giving the number of syllables and a rhyme symbol:
//
//	Limerick
//	8 A
//	8 A
//	5 B
//	5 B
//	8 A
//
//	Haiku
//	5 *
//	7 *
//	5 *
//
// The rhyme symbol "*" matches any rhyme.
package formfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ianlewis/go-poetry/form"
	"github.com/ianlewis/go-poetry/internal/source"
)

// ErrSyntax indicates a malformed form description.
var ErrSyntax = errors.New("syntax error")

//nolint:govet // participle grammar tags are not standard struct tags
type file struct {
	Blocks []*block `Newline* (@@ Newline*)*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type block struct {
	Name  string  `@Name Newline`
	Lines []*line `@@+`
}

//nolint:govet // participle grammar tags are not standard struct tags
type line struct {
	Syllables int    `@Int`
	Rhyme     string `@(Name | Wildcard) (Newline | EOF)`
}

var formLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Name", Pattern: `[A-Za-z]+`},
	{Name: "Wildcard", Pattern: `\*`},
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var formParser = participle.MustBuild[file](
	participle.Lexer(formLexer),
	participle.Elide("Whitespace"),
)

// Parse reads form descriptions from r. If a form name appears more than once
// the last description wins.
func Parse(r io.Reader) (form.Forms, error) {
	return parse(formParser.Parse("", r))
}

// ParseString parses form descriptions from s.
func ParseString(s string) (form.Forms, error) {
	return parse(formParser.ParseString("", s))
}

// Open reads the form description file at path. The file may be compressed
// with gzip (.gz), dictzip (.dz), or xz (.xz).
func Open(path string) (form.Forms, error) {
	f, err := source.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening forms: %w", err)
	}
	defer f.Close()

	forms, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return forms, nil
}

func parse(f *file, err error) (form.Forms, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	forms := form.Forms{}
	for _, b := range f.Blocks {
		fm := &form.Form{
			Name:      b.Name,
			Syllables: make([]int, len(b.Lines)),
			Rhymes:    make([]string, len(b.Lines)),
		}
		for i, l := range b.Lines {
			fm.Syllables[i] = l.Syllables
			fm.Rhymes[i] = l.Rhyme
		}
		forms[fm.Name] = fm
	}
	return forms, nil
}
