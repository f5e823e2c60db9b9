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

	"github.com/urfave/cli/v2"
)

func rhymesCommand() *cli.Command {
	return &cli.Command{
		Name:      "rhymes",
		Usage:     "List dictionary words that rhyme with a word",
		ArgsUsage: "WORD",
		Action: func(c *cli.Context) error {
			a, err := args(c, 1)
			if err != nil {
				return err
			}

			e, err := loadEnv(c)
			if err != nil {
				return err
			}
			checker, _, err := e.checker("")
			if err != nil {
				return err
			}

			words, err := checker.Rhymes(a[0])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrPoetry, err)
			}
			for _, w := range words {
				fmt.Fprintln(c.App.Writer, w)
			}
			return nil
		},
	}
}
