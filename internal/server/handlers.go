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

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	poetry "github.com/ianlewis/go-poetry"
	"github.com/ianlewis/go-poetry/form"
	"github.com/ianlewis/go-poetry/phoneme"
	"github.com/ianlewis/go-poetry/prosody"
)

type formJSON struct {
	Name      string   `json:"name"`
	Lines     int      `json:"lines"`
	Syllables []int    `json:"syllables"`
	Rhymes    []string `json:"rhymes"`
	Pattern   string   `json:"pattern"`
}

type formsResponse struct {
	Forms []formJSON `json:"forms"`
}

type lineJSON struct {
	Number    int      `json:"number"`
	Words     []string `json:"words"`
	Phonemes  []string `json:"phonemes"`
	Syllables int      `json:"syllables"`
	Rhyme     string   `json:"rhyme"`
	Key       string   `json:"key"`
}

type analyzeResponse struct {
	Lines []lineJSON `json:"lines"`
}

type mismatchJSON struct {
	Kind     string `json:"kind"`
	Line     int    `json:"line,omitempty"`
	Other    int    `json:"other,omitempty"`
	Expected int    `json:"expected,omitempty"`
	Actual   int    `json:"actual,omitempty"`
	Message  string `json:"message"`
}

type checkResponse struct {
	Form       string         `json:"form"`
	Status     string         `json:"status"`
	OK         bool           `json:"ok"`
	Lines      []lineJSON     `json:"lines"`
	Mismatches []mismatchJSON `json:"mismatches"`
}

type detectResponse struct {
	Forms []string `json:"forms"`
}

type rhymesResponse struct {
	Word   string   `json:"word"`
	Rhymes []string `json:"rhymes"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
}

type poemRequest struct {
	Poem string `json:"poem"`
	Form string `json:"form"`
}

func toFormJSON(f *form.Form) formJSON {
	return formJSON{
		Name:      f.Name,
		Lines:     f.Len(),
		Syllables: f.Syllables,
		Rhymes:    f.Rhymes,
		Pattern:   f.Pattern(),
	}
}

func toLinesJSON(a *poetry.Analysis) []lineJSON {
	lines := make([]lineJSON, 0, len(a.Poem))
	for i, l := range a.Poem {
		phonemes := make([]string, len(a.Pronunciation[i]))
		for j, s := range a.Pronunciation[i] {
			phonemes[j] = s.String()
		}
		lines = append(lines, lineJSON{
			Number:    i + 1,
			Words:     l,
			Phonemes:  phonemes,
			Syllables: a.Profile.Syllables[i],
			Rhyme:     string(a.Profile.Rhymes[i]),
			Key:       a.Profile.Keys[i].String(),
		})
	}
	return lines
}

func toMismatchesJSON(ms []form.Mismatch) []mismatchJSON {
	out := make([]mismatchJSON, 0, len(ms))
	for _, m := range ms {
		out = append(out, mismatchJSON{
			Kind:     m.Kind.String(),
			Line:     m.Line,
			Other:    m.Other,
			Expected: m.Expected,
			Actual:   m.Actual,
			Message:  m.String(),
		})
	}
	return out
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.ErrorContext(r.Context(), "encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, r, status, errorResponse{Error: msg})
}

// writeAnalysisError writes the response for an error returned by the
// Checker.
func (s *Server) writeAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, poetry.ErrUnknownForm):
		s.writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, phoneme.ErrNotFound):
		s.writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{
			Error:   "words not found in dictionary",
			Missing: phoneme.Missing(err),
		})
	case errors.Is(err, prosody.ErrNoRhyme):
		s.writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		s.logger.ErrorContext(r.Context(), "analyzing poem", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// decodePoem decodes a poem request body. It writes an error response and
// returns false if the body is invalid.
func (s *Server) decodePoem(w http.ResponseWriter, r *http.Request, needForm bool) (*poemRequest, bool) {
	var req poemRequest
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("body exceeds %d bytes", maxErr.Limit))
			return nil, false
		}
		s.writeError(w, r, http.StatusBadRequest, "body must be JSON with a 'poem' field")
		return nil, false
	}
	if needForm && req.Form == "" {
		s.writeError(w, r, http.StatusBadRequest, "missing 'form' field")
		return nil, false
	}
	return &req, true
}

func (s *Server) handleForms(w http.ResponseWriter, r *http.Request) {
	forms := s.checker.Forms()
	out := make([]formJSON, 0, len(forms))
	for _, name := range forms.Names() {
		out = append(out, toFormJSON(forms[name]))
	}
	s.writeJSON(w, r, http.StatusOK, formsResponse{Forms: out})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePoem(w, r, false)
	if !ok {
		return
	}
	a, err := s.checker.Analyze(req.Poem)
	if err != nil {
		s.writeAnalysisError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, analyzeResponse{Lines: toLinesJSON(a)})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePoem(w, r, true)
	if !ok {
		return
	}
	report, err := s.checker.Check(req.Poem, req.Form)
	if err != nil {
		s.writeAnalysisError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, checkResponse{
		Form:       report.Form.Name,
		Status:     report.Result.Status().String(),
		OK:         report.OK(),
		Lines:      toLinesJSON(report.Analysis),
		Mismatches: toMismatchesJSON(report.Result.Mismatches),
	})
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePoem(w, r, false)
	if !ok {
		return
	}
	names, err := s.checker.Detect(req.Poem)
	if err != nil {
		s.writeAnalysisError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	s.writeJSON(w, r, http.StatusOK, detectResponse{Forms: names})
}

func (s *Server) handleRhymes(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		s.writeError(w, r, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	rhymes, err := s.checker.Rhymes(word)
	switch {
	case errors.Is(err, phoneme.ErrNotFound):
		s.writeError(w, r, http.StatusNotFound, err.Error())
		return
	case err != nil:
		s.writeAnalysisError(w, r, err)
		return
	}
	if rhymes == nil {
		rhymes = []string{}
	}
	s.writeJSON(w, r, http.StatusOK, rhymesResponse{Word: word, Rhymes: rhymes})
}
