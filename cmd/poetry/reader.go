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
	"fmt"
	"log/slog"

	poetry "github.com/ianlewis/go-poetry"
	"github.com/ianlewis/go-poetry/cmudict"
	"github.com/ianlewis/go-poetry/form"
	"github.com/ianlewis/go-poetry/phoneme"
)

// dataReader is a poetry.FileReader that logs what it reads.
type dataReader struct {
	poetry.FileReader

	logger *slog.Logger
}

// ReadDictionary implements [poetry.Reader.ReadDictionary].
func (r *dataReader) ReadDictionary() (*phoneme.Dictionary, error) {
	d, stats, err := cmudict.Open(r.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	r.logger.Debug("loaded dictionary",
		"path", r.Dictionary,
		"lines", stats.Lines,
		"comments", stats.Comments,
		"entries", stats.Entries,
		"words", stats.Words,
		"blake3", stats.Digest,
	)
	return d, nil
}

// ReadForms implements [poetry.Reader.ReadForms].
func (r *dataReader) ReadForms() (form.Forms, error) {
	forms, err := r.FileReader.ReadForms()
	if err != nil {
		return nil, err //nolint:wrapcheck // already wrapped
	}
	r.logger.Debug("loaded forms", "path", r.Forms, "forms", len(forms))
	return forms, nil
}
