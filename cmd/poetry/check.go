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
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	poetry "github.com/ianlewis/go-poetry"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check a poem against a form",
		ArgsUsage: "FORM POEM",
		Description: "Check that the poem in the file POEM conforms to the form named FORM.\n" +
			"If POEM is - the poem is read from standard input.",
		Action: func(c *cli.Context) error {
			a, err := args(c, 2)
			if err != nil {
				return err
			}
			formName, poemPath := a[0], a[1]

			e, err := loadEnv(c)
			if err != nil {
				return err
			}
			checker, text, err := e.checker(poemPath)
			if err != nil {
				return err
			}

			e.logger.Debug("checking poem", "form", formName, "poem", poemPath)
			report, err := checker.Check(text, formName)
			if errors.Is(err, poetry.ErrUnknownForm) {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}
			if err != nil {
				return analysisError(err)
			}

			printAnalysis(c.App.Writer, report.Analysis, report.Form)
			fmt.Fprintln(c.App.Writer)
			fmt.Fprintln(c.App.Writer, report)

			if !report.OK() {
				return fmt.Errorf("%w: %s", ErrMismatch, report.Result.Status())
			}
			return nil
		},
	}
}
