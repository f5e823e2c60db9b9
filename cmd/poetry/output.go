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

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rodaine/table"

	poetry "github.com/ianlewis/go-poetry"
	"github.com/ianlewis/go-poetry/form"
	"github.com/ianlewis/go-poetry/phoneme"
)

// analysisError converts an error from analyzing a poem into a command error.
func analysisError(err error) error {
	if errors.Is(err, phoneme.ErrNotFound) {
		return fmt.Errorf("%w: words not found in dictionary: %s",
			ErrMismatch, strings.Join(phoneme.Missing(err), ", "))
	}
	return fmt.Errorf("%w: %w", ErrMismatch, err)
}

// printAnalysis prints a table of the analyzed lines. If f is not nil the
// form's expected syllables and rhyme symbol are included.
func printAnalysis(w io.Writer, a *poetry.Analysis, f *form.Form) {
	headers := []interface{}{"Line", "Text", "Syllables", "Rhyme", "Key"}
	if f != nil {
		headers = append(headers, "Expected", "Symbol")
	}
	tbl := table.New(headers...).WithWriter(w)

	for i, l := range a.Poem {
		row := []interface{}{
			i + 1,
			l.String(),
			a.Profile.Syllables[i],
			string(a.Profile.Rhymes[i]),
			a.Profile.Keys[i].String(),
		}
		if f != nil {
			expected, symbol := "-", "-"
			if i < f.Len() {
				expected = strconv.Itoa(f.Syllables[i])
				symbol = f.Rhymes[i]
			}
			row = append(row, expected, symbol)
		}
		tbl.AddRow(row...)
	}
	tbl.Print()
}

// printForms prints a table of forms.
func printForms(w io.Writer, forms form.Forms) {
	tbl := table.New("Name", "Lines", "Syllables", "Pattern").WithWriter(w)
	for _, name := range forms.Names() {
		f := forms[name]
		syllables := make([]string, len(f.Syllables))
		for i, n := range f.Syllables {
			syllables[i] = strconv.Itoa(n)
		}
		tbl.AddRow(f.Name, f.Len(), strings.Join(syllables, " "), f.Pattern())
	}
	tbl.Print()
}
