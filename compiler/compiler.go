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

// Package compiler ties together the stages of the Brainfuck to Lamina IR
// translation: parsing, running the program at compile time and emitting IR
// that replays its output.
package compiler

import (
	"io"
	"log/slog"

	"github.com/db47h/bflamina/bf"
	"github.com/db47h/bflamina/ir"
	"github.com/db47h/bflamina/vm"
	"github.com/pkg/errors"
)

// Option configures a translation.
type Option func(*config)

type config struct {
	log    *slog.Logger
	vmOpts []vm.Option
	dump   io.Writer
}

// Logger sets the logger used to report translation progress at debug level.
// By default, nothing is logged.
func Logger(l *slog.Logger) Option {
	return func(c *config) { c.log = l }
}

// VM appends options for the tape machine that runs the program.
func VM(opts ...vm.Option) Option {
	return func(c *config) { c.vmOpts = append(c.vmOpts, opts...) }
}

// Dump sets a writer that receives the tape machine state (see vm.Dump) when
// the program fails at run time.
func Dump(w io.Writer) Option {
	return func(c *config) { c.dump = w }
}

// Stats summarizes a translation.
type Stats struct {
	Commands   int
	Loops      int
	TapeLength int
	Budget     int64
	vm.Stats
	Ops int // number of IR ops emitted
}

// Result is the outcome of a successful translation.
type Result struct {
	Program bf.Program
	Trace   vm.Trace
	Module  *ir.Module
	Stats   Stats
}

// Translate compiles the Brainfuck source src to a Lamina IR module with a
// single main function. The name parameter is used in error positions.
//
// Translation either succeeds as a whole or fails with the first error;
// there is no partial result. Runtime errors are annotated with the source
// position of the failing instruction but keep their cause, so that
// vm.IsRetryable can be used to check if the translation may succeed with a
// larger step budget.
func Translate(name string, src []byte, opts ...Option) (*Result, error) {
	c := config{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&c)
	}
	log := c.log.With("file", name)

	p, err := bf.Parse(name, src)
	if err != nil {
		log.Debug("parse failed", "error", err)
		return nil, err
	}
	r := &Result{Program: p}
	r.Stats.Commands, r.Stats.Loops = bf.Count(p)
	log.Debug("parsed", "commands", r.Stats.Commands, "loops", r.Stats.Loops)

	i, err := vm.New(c.vmOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	r.Trace, err = i.Run(p)
	r.Stats.TapeLength, r.Stats.Budget = len(i.Tape), i.Budget()
	r.Stats.Stats = i.Stats()
	if err != nil {
		log.Debug("run failed", "status", r.Trace.Status, "steps", r.Trace.Steps, "error", err)
		if c.dump != nil {
			if e := i.Dump(c.dump); e != nil {
				log.Warn("machine state dump failed", "error", e)
			}
		}
		if re, ok := err.(*vm.RuntimeError); ok {
			return nil, errors.Wrap(err, bf.Position(name, src, re.Offset).String())
		}
		return nil, err
	}
	log.Debug("run completed", "steps", r.Stats.Steps, "output", r.Stats.OutputBytes)

	r.Module = ir.NewModule()
	main := r.Module.Func("main")
	if err = ir.Emit(r.Trace, main); err != nil {
		return nil, err
	}
	r.Stats.Ops = len(main.Ops)
	log.Debug("emitted", "ops", r.Stats.Ops)
	return r, nil
}
