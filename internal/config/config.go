// This file is part of bflamina - https://github.com/db47h/bflamina
//
// Copyright 2026 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads translation settings from CUE files.
//
// A configuration file may set any of the following fields:
//
//	tape_length: 30000     // number of tape cells, > 0
//	step_budget: 100000000 // maximum number of steps, > 0
//	input:       "abc"     // compile-time input
//	input_file:  "in.txt"  // more compile-time input, read after input
//	preset:      "small"   // "small", "default" or "large" tape
//
// Relative input_file paths are resolved against the directory of the
// configuration file. Unknown fields are rejected.
package config

import (
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/db47h/bflamina/vm"
	"github.com/pkg/errors"
)

const schema = `
tape_length?: int & >0
step_budget?: int & >0
input?:       string
input_file?:  string
preset?:      "small" | "default" | "large"
`

// Config holds translation settings. The zero value is the default
// configuration.
type Config struct {
	TapeLength int     `json:"tape_length,omitempty"`
	StepBudget int64   `json:"step_budget,omitempty"`
	Input      *string `json:"input,omitempty"`
	InputFile  string  `json:"input_file,omitempty"`
	Preset     string  `json:"preset,omitempty"`

	dir string
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return Parse(path, data)
}

// Parse parses configuration data. The name parameter is used in error
// messages and to resolve relative input_file paths.
func Parse(name string, data []byte) (*Config, error) {
	ctx := cuecontext.New()
	s := ctx.CompileString("close({" + schema + "})")
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "config schema")
	}
	v := ctx.CompileBytes(data, cue.Filename(name))
	if err := v.Err(); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	v = s.Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	c := new(Config)
	if err := v.Decode(c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	c.dir = filepath.Dir(name)
	return c, nil
}

// SetInputFile sets the input file, relative to the current directory.
func (c *Config) SetInputFile(path string) {
	c.InputFile = path
	c.dir = ""
}

// Options returns the tape machine options for c. Input from the input field
// and input file are concatenated.
func (c *Config) Options() ([]vm.Option, error) {
	var opts []vm.Option
	switch c.Preset {
	case "", "default":
	case "small":
		opts = append(opts, vm.Small())
	case "large":
		opts = append(opts, vm.Large())
	default:
		return nil, errors.Errorf("unknown preset %q", c.Preset)
	}
	if c.TapeLength != 0 {
		opts = append(opts, vm.TapeLength(c.TapeLength))
	}
	if c.StepBudget != 0 {
		opts = append(opts, vm.StepBudget(c.StepBudget))
	}
	var in []byte
	if c.Input != nil {
		in = []byte(*c.Input)
	}
	if c.InputFile != "" {
		path := c.InputFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.dir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read input file")
		}
		in = append(in, data...)
	}
	if len(in) > 0 {
		opts = append(opts, vm.InputBytes(in))
	}
	return opts, nil
}
