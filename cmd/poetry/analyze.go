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

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Show the syllables and rhyme scheme of a poem",
		ArgsUsage: "POEM",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "phonemes",
				Usage:              "print the pronunciation of the poem",
				Aliases:            []string{"p"},
				DisableDefaultText: true,
			},
		},
		Action: func(c *cli.Context) error {
			a, err := args(c, 1)
			if err != nil {
				return err
			}

			e, err := loadEnv(c)
			if err != nil {
				return err
			}
			checker, text, err := e.checker(a[0])
			if err != nil {
				return err
			}

			analysis, err := checker.Analyze(text)
			if err != nil {
				return analysisError(err)
			}

			printAnalysis(c.App.Writer, analysis, nil)
			if c.Bool("phonemes") {
				fmt.Fprintln(c.App.Writer)
				fmt.Fprintln(c.App.Writer, analysis.Pronunciation)
			}
			return nil
		},
	}
}
