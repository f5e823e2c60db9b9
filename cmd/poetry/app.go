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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	poetry "github.com/ianlewis/go-poetry"
	"github.com/ianlewis/go-poetry/internal/config"
	"github.com/ianlewis/go-poetry/internal/logging"
	"github.com/ianlewis/go-poetry/phoneme"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeMismatch is the exit code when a poem does not conform to a
	// form or cannot be analyzed.
	ExitCodeMismatch

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrPoetry is a parent error for all command errors.
var ErrPoetry = errors.New("poetry")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrPoetry)

// ErrMismatch indicates that a poem does not conform to a form.
var ErrMismatch = fmt.Errorf("%w: poem does not match", ErrPoetry)

// ErrNoData indicates that a data file could not be found.
var ErrNoData = fmt.Errorf("%w: data file not found", ErrPoetry)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

// Default data file names searched for in the data locations.
var (
	dictNames  = []string{"cmudict.dict", "cmudict.dict.gz", "cmudict.dict.dz", "cmudict.dict.xz"}
	formsNames = []string{"forms.txt", "forms.txt.gz"}
)

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrMismatch), errors.Is(err, phoneme.ErrNotFound):
		return ExitCodeMismatch
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, ErrPoetry):
		return ExitCodeUnknownError
	default:
		// Errors from cli are flag and argument errors.
		return ExitCodeFlagParseError
	}
}

// findData returns the first file in the data locations with one of the
// given names.
func findData(names []string) (string, error) {
	for _, dir := range dataLocations() {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrNoData,
		strings.Join(names, ", "), strings.Join(dataLocations(), string(filepath.ListSeparator)))
}

// env is the environment shared by commands.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

// loadEnv loads the configuration and applies the global flags. The result is
// validated after the flags are applied so a flag can replace a bad value.
func loadEnv(c *cli.Context) (*env, error) {
	cfg, err := config.Read(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPoetry, err)
	}

	if c.IsSet("dict") {
		cfg.Data.Dictionary = c.String("dict")
	}
	if c.IsSet("forms") {
		cfg.Data.Forms = c.String("forms")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	if cfg.Data.Dictionary == "" {
		if cfg.Data.Dictionary, err = findData(dictNames); err != nil {
			return nil, err
		}
	}
	if cfg.Data.Forms == "" {
		if cfg.Data.Forms, err = findData(formsNames); err != nil {
			return nil, err
		}
	}

	return &env{
		cfg:    cfg,
		logger: logging.New(c.App.ErrWriter, cfg.Log),
	}, nil
}

// checker loads the dictionary and forms along with the poem at poemPath.
// poemPath may be empty.
func (e *env) checker(poemPath string) (*poetry.Checker, string, error) {
	r := &dataReader{
		FileReader: poetry.FileReader{
			Dictionary: e.cfg.Data.Dictionary,
			Forms:      e.cfg.Data.Forms,
			Poem:       poemPath,
		},
		logger: e.logger,
	}
	c, text, err := poetry.FromReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrPoetry, err)
	}
	return c, text, nil
}

// args returns the command's arguments, checking that there are n of them.
func args(c *cli.Context, n int) ([]string, error) {
	if c.NArg() != n {
		return nil, fmt.Errorf("%w: %s: expected %d arguments, got %d", ErrFlagParse, c.Command.Name, n, c.NArg())
	}
	return c.Args().Slice(), nil
}

func newPoetryApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Check poems against poetic forms.",
		Description: strings.Join([]string{
			"Poetry form checker written in Go.",
			"http://github.com/ianlewis/go-poetry",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
				EnvVars: []string{config.PathEnv},
			},
			&cli.StringFlag{
				Name:    "dict",
				Usage:   "read the pronouncing dictionary from `FILE`",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:    "forms",
				Usage:   "read form descriptions from `FILE`",
				Aliases: []string{"f"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log `FORMAT` (text, json)",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			checkCommand(),
			analyzeCommand(),
			detectCommand(),
			formsCommand(),
			rhymesCommand(),
			serveCommand(),
		},
		Writer:         os.Stdout,
		ErrWriter:      os.Stderr,
		ExitErrHandler: func(*cli.Context, error) {},
	}
}
