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

// Package poetry implements a library for checking poems against poetic
// forms in pure Go.
//
// Checking a poem uses several inputs:
//  1. A pronouncing dictionary in the CMU Pronouncing Dictionary format that
//     maps words to phonemes. Vowel phonemes carry a stress digit. The
//     dictionary can be compressed using gzip, dictzip or xz.
//  2. A form description file giving each form's name followed by one line
//     per poem line with a syllable count and a rhyme symbol.
//  3. The poem text itself, either plain text or HTML.
//
// The poem is normalized to upper-case words, each word is resolved to its
// phonemes, and the syllables and rhyme scheme of each line are computed.
// That profile is then matched against a form. Lines rhyme when their last
// words share the same phonemes from the last vowel onward.
//
// More info on the dictionary format can be found at this URL:
// http://www.speech.cs.cmu.edu/cgi-bin/cmudict
package poetry
