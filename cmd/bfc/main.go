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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/db47h/bflamina/bf"
	"github.com/db47h/bflamina/compiler"
	"github.com/db47h/bflamina/internal/config"
	"github.com/db47h/bflamina/ir"
	"github.com/db47h/bflamina/vm"
	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
	"github.com/tebeka/atexit"
)

type options struct {
	configFile string
	tapeLen    int
	budget     int64
	input      string
	inputFile  string
	preset     string
	outFile    string
	printAST   bool
	stats      bool
	build      bool
	lamina     string
	replay     string
	logFile    string
	verbose    bool
	diag       io.Writer       // receives the machine state on runtime errors
	set        map[string]bool // flags set on the command line
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.configFile, "config", "", "load settings from CUE file `filename`")
	fs.IntVar(&o.tapeLen, "tape", vm.DefaultTapeLength, "number of tape cells")
	fs.Int64Var(&o.budget, "budget", vm.DefaultStepBudget, "maximum number of steps when running the program")
	fs.StringVar(&o.input, "input", "", "compile-time input")
	fs.StringVar(&o.inputFile, "input-file", "", "read compile-time input from `filename`")
	fs.StringVar(&o.preset, "preset", "", "tape size preset: small, default or large")
	fs.StringVar(&o.outFile, "o", "", "IR output `filename` (default: source file name with a .lamina extension)")
	fs.BoolVar(&o.printAST, "ast", false, "print the program tree")
	fs.BoolVar(&o.stats, "stats", false, "print translation statistics")
	fs.BoolVar(&o.build, "build", false, "build a binary with the lamina tool")
	fs.StringVar(&o.lamina, "lamina", "lamina", "lamina `command` used by -build")
	fs.StringVar(&o.replay, "replay", "", "execute the Lamina IR in `filename` and write its output to stdout")
	fs.StringVar(&o.logFile, "log", "", "also write JSON logs to `filename`")
	fs.BoolVar(&o.verbose, "v", false, "enable debug diagnostics")
}

// config merges the configuration file with the flags set on the command line.
func (o *options) config() (*config.Config, error) {
	c := new(config.Config)
	if o.configFile != "" {
		var err error
		if c, err = config.Load(o.configFile); err != nil {
			return nil, err
		}
	}
	if o.set["tape"] {
		c.TapeLength = o.tapeLen
	}
	if o.set["budget"] {
		c.StepBudget = o.budget
	}
	if o.set["input"] {
		s := o.input
		c.Input = &s
	}
	if o.set["input-file"] {
		c.SetInputFile(o.inputFile)
	}
	if o.set["preset"] {
		c.Preset = o.preset
	}
	return c, nil
}

func newLogger(w io.Writer, verbose bool, logFile string) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				// timestamps are noise on a terminal
				if len(groups) == 0 && a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		}),
	}
	closeFn := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closeFn = func() { f.Close() }
	}
	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}

// irFileName returns the IR file name for the given source file: the source
// file name with its extension replaced by .lamina.
func irFileName(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".lamina"
}

// binaryFileName returns the executable file name for the given source file.
func binaryFileName(src string) string {
	name := strings.TrimSuffix(src, filepath.Ext(src))
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return name
}

func writeIR(fileName string, m *ir.Module) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create IR file")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if e := w.Flush(); err == nil {
			err = e
		}
		if e := f.Close(); err == nil {
			err = e
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	return ir.Fprint(w, m)
}

func compile(o *options, name string, stdin *os.File, stdout io.Writer, log *slog.Logger) error {
	src, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "read source")
	}
	c, err := o.config()
	if err != nil {
		return err
	}
	vmOpts, err := c.Options()
	if err != nil {
		return err
	}
	if c.Input == nil && c.InputFile == "" && stdin != nil && !isTerminal(stdin) {
		log.Debug("reading compile-time input from stdin")
		vmOpts = append(vmOpts, vm.Input(stdin))
	}

	opts := []compiler.Option{compiler.Logger(log), compiler.VM(vmOpts...)}
	if o.diag != nil {
		opts = append(opts, compiler.Dump(o.diag))
	}
	r, err := compiler.Translate(name, src, opts...)
	if err != nil {
		return err
	}
	if o.printAST {
		if err = bf.Fprint(stdout, r.Program); err != nil {
			return err
		}
	}

	out := o.outFile
	if out == "" {
		out = irFileName(name)
	}
	if err = writeIR(out, r.Module); err != nil {
		return err
	}
	log.Info("IR written", "file", out, "bytes", len(r.Trace.Output))

	if o.stats {
		printStats(stdout, r.Stats)
	}

	if o.build {
		bin := binaryFileName(name)
		cmd := exec.Command(o.lamina, out, "-o", bin)
		cmd.Stdout, cmd.Stderr = os.Stderr, os.Stderr
		if err = cmd.Run(); err != nil {
			return errors.Wrapf(err, "%s failed, try building manually: %s %s -o %s", o.lamina, o.lamina, out, bin)
		}
		log.Info("binary built", "file", bin)
	}
	return nil
}

func replay(fileName string, stdout io.Writer) error {
	f, err := os.Open(fileName)
	if err != nil {
		return errors.Wrap(err, "open IR file")
	}
	defer f.Close()
	m, err := ir.Parse(fileName, bufio.NewReader(f))
	if err != nil {
		return err
	}
	return ir.Exec(m, stdout)
}

func atExit(o *options, err error) {
	if err == nil {
		atexit.Exit(0)
	}
	if !o.verbose {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	}
	if vm.IsRetryable(err) {
		fmt.Fprintln(os.Stderr, "the program may need a larger step budget, see the -budget flag")
	}
	atexit.Exit(1)
}

func main() {
	var o options
	o.register(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] file.b\n       %s -replay file.lamina\n\nFlags:\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	o.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	if o.verbose {
		o.diag = os.Stderr
	}

	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { stdout.Flush() })

	log, closeLog, err := newLogger(os.Stderr, o.verbose, o.logFile)
	if err != nil {
		atExit(&o, err)
	}
	atexit.Register(closeLog)

	if o.replay != "" {
		atExit(&o, replay(o.replay, stdout))
	}
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one source file")
		flag.Usage()
		atexit.Exit(2)
	}
	atExit(&o, compile(&o, flag.Arg(0), os.Stdin, stdout, log))
}
