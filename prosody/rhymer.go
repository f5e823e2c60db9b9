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

package prosody

import (
	"github.com/ianlewis/go-poetry/phoneme"
)

// Label is a rhyme label. Lines with the same label rhyme.
type Label string

// LabelAt returns the n-th (0-based) rhyme label: "A" through "Z" followed by
// "AA", "AB", and so on.
func LabelAt(n int) Label {
	var b []byte
	for n++; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return Label(b)
}

// Rhymer assigns rhyme labels to rhyme keys in order of first occurrence.
// The first distinct key gets "A", the next "B", and so on. A Rhymer is not
// safe for concurrent use.
type Rhymer struct {
	labels map[string]Label
	next   int
}

// NewRhymer returns a new Rhymer with no labels assigned.
func NewRhymer() *Rhymer {
	return &Rhymer{
		labels: map[string]Label{},
	}
}

// Label returns the label for key, assigning the next unused label if the key
// has not been seen before.
func (r *Rhymer) Label(key phoneme.Sequence) Label {
	k := key.String()
	if l, ok := r.labels[k]; ok {
		return l
	}
	l := LabelAt(r.next)
	r.labels[k] = l
	r.next++
	return l
}

// Labels returns the label of each key in order.
func (r *Rhymer) Labels(keys []phoneme.Sequence) []Label {
	labels := make([]Label, len(keys))
	for i, k := range keys {
		labels[i] = r.Label(k)
	}
	return labels
}

// Len returns the number of distinct labels assigned so far.
func (r *Rhymer) Len() int {
	return r.next
}
