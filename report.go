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
	"strings"

	"github.com/ianlewis/go-poetry/form"
)

// Report is the result of checking a poem against a form.
type Report struct {
	// Form is the form the poem was checked against.
	Form *form.Form

	// Analysis is the analysis of the poem.
	Analysis *Analysis

	// Result is the result of matching the poem against the form.
	Result *form.Result
}

// OK returns true if the poem conforms to the form.
func (r *Report) OK() bool {
	return r.Result.OK()
}

// String returns a plain text summary of the Report.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", r.Form.Name, r.Result.Status())
	for _, m := range r.Result.Mismatches {
		b.WriteString("\n  ")
		b.WriteString(m.String())
	}
	return b.String()
}
