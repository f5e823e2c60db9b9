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
	"fmt"
	"os"

	"github.com/ianlewis/go-poetry/cmudict"
	"github.com/ianlewis/go-poetry/form"
	"github.com/ianlewis/go-poetry/formfile"
	"github.com/ianlewis/go-poetry/phoneme"
	"github.com/ianlewis/go-poetry/poemfile"
)

// Stdin is the poem path that reads the poem from standard input.
const Stdin = "-"

// Reader reads the inputs needed to check a poem.
type Reader interface {
	// ReadDictionary reads the pronouncing dictionary.
	ReadDictionary() (*phoneme.Dictionary, error)

	// ReadForms reads the form descriptions.
	ReadForms() (form.Forms, error)

	// ReadPoem reads the poem text.
	ReadPoem() (string, error)
}

// FileReader is a Reader that reads inputs from files.
type FileReader struct {
	// Dictionary is the path to the pronouncing dictionary.
	Dictionary string

	// Forms is the path to the form description file.
	Forms string

	// Poem is the path to the poem file. If Poem is Stdin the poem is read
	// from standard input. If Poem is empty the poem is empty.
	Poem string
}

// ReadDictionary implements [Reader.ReadDictionary].
func (r *FileReader) ReadDictionary() (*phoneme.Dictionary, error) {
	d, _, err := cmudict.Open(r.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return d, nil
}

// ReadForms implements [Reader.ReadForms].
func (r *FileReader) ReadForms() (form.Forms, error) {
	forms, err := formfile.Open(r.Forms)
	if err != nil {
		return nil, fmt.Errorf("reading forms: %w", err)
	}
	return forms, nil
}

// ReadPoem implements [Reader.ReadPoem].
func (r *FileReader) ReadPoem() (string, error) {
	var text string
	var err error
	switch r.Poem {
	case "":
		return "", nil
	case Stdin:
		text, err = poemfile.Read(os.Stdin)
	default:
		text, err = poemfile.Open(r.Poem)
	}
	if err != nil {
		return "", fmt.Errorf("reading poem: %w", err)
	}
	return text, nil
}
