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
	"github.com/urfave/cli/v2"
)

func formsCommand() *cli.Command {
	return &cli.Command{
		Name:  "forms",
		Usage: "List known forms",
		Action: func(c *cli.Context) error {
			if _, err := args(c, 0); err != nil {
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

			printForms(c.App.Writer, checker.Forms())
			return nil
		},
	}
}
