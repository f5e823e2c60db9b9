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
	"errors"
	"fmt"
	"sync"

	"github.com/ianlewis/go-poetry/form"
	"github.com/ianlewis/go-poetry/internal/index"
	"github.com/ianlewis/go-poetry/normalize"
	"github.com/ianlewis/go-poetry/phoneme"
	"github.com/ianlewis/go-poetry/prosody"
)

// ErrUnknownForm indicates a form name that is not known to the Checker.
var ErrUnknownForm = errors.New("unknown form")

// Analysis is the analysis of a poem's text.
type Analysis struct {
	// Poem is the normalized poem.
	Poem normalize.Poem

	// Pronunciation is the pronunciation of each word of the poem.
	Pronunciation phoneme.Pronunciation

	// Profile holds the syllable counts and rhyme scheme of the poem.
	Profile *prosody.Profile
}

// rhyme is a dictionary word and its rhyme key.
type rhyme struct {
	word string
	key  string
}

// Checker checks poems against forms using a pronouncing dictionary. A
// Checker is safe for concurrent use.
type Checker struct {
	dict  *phoneme.Dictionary
	forms form.Forms

	rhymesOnce sync.Once
	rhymes     *index.Index[rhyme]
}

// NewChecker returns a new Checker using the dictionary d and the given
// forms. Neither should be modified after calling NewChecker.
func NewChecker(d *phoneme.Dictionary, forms form.Forms) *Checker {
	if forms == nil {
		forms = form.Forms{}
	}
	return &Checker{
		dict:  d,
		forms: forms,
	}
}

// FromReader reads the dictionary, forms and poem from r and returns a new
// Checker along with the poem text.
func FromReader(r Reader) (*Checker, string, error) {
	d, err := r.ReadDictionary()
	if err != nil {
		return nil, "", err //nolint:wrapcheck // Reader errors are already wrapped.
	}
	forms, err := r.ReadForms()
	if err != nil {
		return nil, "", err //nolint:wrapcheck // Reader errors are already wrapped.
	}
	text, err := r.ReadPoem()
	if err != nil {
		return nil, "", err //nolint:wrapcheck // Reader errors are already wrapped.
	}
	return NewChecker(d, forms), text, nil
}

// Dictionary returns the Checker's pronouncing dictionary.
func (c *Checker) Dictionary() *phoneme.Dictionary {
	return c.dict
}

// Forms returns the Checker's forms.
func (c *Checker) Forms() form.Forms {
	return c.forms
}

// Form returns the form with the given name.
func (c *Checker) Form(name string) (*form.Form, error) {
	f, ok := c.forms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
	return f, nil
}

// Analyze normalizes text, resolves its pronunciation and computes its
// prosodic profile. If any words are missing from the dictionary the
// returned error wraps a [*phoneme.LookupError] for each of them.
func (c *Checker) Analyze(text string) (*Analysis, error) {
	poem := normalize.Text(text)

	pron, err := phoneme.Resolve(poem, c.dict)
	if err != nil {
		return nil, fmt.Errorf("resolving pronunciation: %w", err)
	}

	profile, err := prosody.Analyze(pron)
	if err != nil {
		return nil, fmt.Errorf("analyzing poem: %w", err)
	}

	return &Analysis{
		Poem:          poem,
		Pronunciation: pron,
		Profile:       profile,
	}, nil
}

// Check checks text against the form with the given name.
func (c *Checker) Check(text, formName string) (*Report, error) {
	f, err := c.Form(formName)
	if err != nil {
		return nil, err
	}

	a, err := c.Analyze(text)
	if err != nil {
		return nil, err
	}

	return &Report{
		Form:     f,
		Analysis: a,
		Result:   form.Match(a.Profile, f),
	}, nil
}

// Detect returns the names of all forms that text conforms to in sorted
// order.
func (c *Checker) Detect(text string) ([]string, error) {
	a, err := c.Analyze(text)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, name := range c.forms.Names() {
		if form.Match(a.Profile, c.forms[name]).OK() {
			names = append(names, name)
		}
	}
	return names, nil
}

// Rhymes returns the dictionary words, in sorted order, that rhyme with
// word. Only exact rhymes are returned and word itself is not included.
func (c *Checker) Rhymes(word string) ([]string, error) {
	w := normalize.Word(word)
	s, ok := c.dict.Lookup(w)
	if !ok {
		return nil, &phoneme.LookupError{Word: w}
	}

	key, err := prosody.RhymeKey(phoneme.Line{s})
	if err != nil {
		return nil, fmt.Errorf("%q: %w", w, err)
	}

	var words []string
	for _, r := range c.rhymeIndex().Search(key.String()) {
		if r.word != w {
			words = append(words, r.word)
		}
	}
	return words, nil
}

// rhymeIndex returns the index of dictionary words by rhyme key. The index is
// built on first use.
func (c *Checker) rhymeIndex() *index.Index[rhyme] {
	c.rhymesOnce.Do(func() {
		rhymes := make([]rhyme, 0, c.dict.Len())
		for w, s := range c.dict.All() {
			key, err := prosody.RhymeKey(phoneme.Line{s})
			if err != nil {
				continue
			}
			rhymes = append(rhymes, rhyme{
				word: w,
				key:  key.String(),
			})
		}
		c.rhymes = index.New(rhymes, func(r rhyme) string {
			return r.key
		})
	})
	return c.rhymes
}
