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

// Package cmudict implements reading pronouncing dictionaries in the format of
// the CMU Pronouncing Dictionary.
//
// Each line of the file is a record of the form:
//
//	WORD  PHONEME PHONEME ...
//
// The first whitespace separated field is the word and the remaining fields
// are its phonemes. Lines starting with ";;;" in the first column are
// comments. Comments and blank lines are ignored. A ";;;" anywhere else is read
// as part of a record.
//
// Alternate pronunciations such as "HOUSE(2)" are kept as distinct words.
package cmudict
