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

// Package index implements a generic sorted array index.
package index

import (
	"slices"
	"sort"
	"strings"
)

// Index is a generic sorted array index. Items are ordered by their key and
// items with equal keys keep their original relative order.
type Index[V any] struct {
	items []V
	keys  []string
}

// New creates an index of items keyed by the given function.
func New[V any](items []V, key func(V) string) *Index[V] {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return strings.Compare(key(a), key(b))
	})

	keys := make([]string, len(sorted))
	for i, v := range sorted {
		keys[i] = key(v)
	}

	return &Index[V]{
		items: sorted,
		keys:  keys,
	}
}

// Len returns the number of items in the index.
func (idx *Index[V]) Len() int {
	return len(idx.items)
}

// Search performs a binary search over the index and returns the items whose
// key equals query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.keys), func(i int) int {
		return strings.Compare(query, idx.keys[i])
	})

	if !found {
		return nil
	}

	j := i
	//nolint:revive // This block increments j.
	for ; j < len(idx.keys) && idx.keys[j] == query; j++ {
	}
	return idx.items[i:j]
}
