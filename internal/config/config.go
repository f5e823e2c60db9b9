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

// Package config loads the poetry command configuration from a YAML file and
// environment variables.
package config

import (
	"strings"
	"time"
)

// Config is the root configuration.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// DataConfig holds the locations of the data files. Empty paths are
// searched for in the default data directories.
type DataConfig struct {
	Dictionary string `yaml:"dictionary" env:"POETRY_DICTIONARY"`
	Forms      string `yaml:"forms"      env:"POETRY_FORMS"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"POETRY_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"POETRY_LOG_FORMAT" env-default:"text"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"POETRY_ADDR"             env-default:"localhost:8080"`
	CORSOrigins     string        `yaml:"cors_origins"     env:"POETRY_CORS_ORIGINS"     env-default:"*"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"POETRY_MAX_BODY_BYTES"   env-default:"1048576"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"POETRY_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"POETRY_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"POETRY_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Origins returns the allowed CORS origins.
func (s ServerConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(s.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
