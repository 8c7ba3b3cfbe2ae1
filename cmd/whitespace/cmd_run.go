// This file is part of whitespace-interpreter - https://github.com/squancy/whitespace-interpreter
//
// Copyright 2024 squancy
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
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/squancy/whitespace-interpreter/config"
	"github.com/squancy/whitespace-interpreter/internal/wsi"
	"github.com/squancy/whitespace-interpreter/lang/whitespace"
	"github.com/squancy/whitespace-interpreter/parser"
	"github.com/squancy/whitespace-interpreter/vm"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

type runCmd struct {
	inputs   fileList
	maxSteps uint64
	debug    bool
	cfgPath  string
}

func (*runCmd) Name() string { return "run" }

func (*runCmd) Synopsis() string { return "Run a Whitespace program." }

func (*runCmd) Usage() string {
	return `run [-input filename]... [-steps n] [-debug] program:
Parse the program file and execute it. Program input is read from the
-input files in order, then from the configured input file, if any, then
from stdin.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.inputs, "input", "read program input from `filename` (can be specified multiple times)")
	f.Uint64Var(&c.maxSteps, "steps", 0, "abort after `n` executed instructions, 0 to use the configured bound")
	f.BoolVar(&c.debug, "debug", false, "enable debug diagnostics")
	f.StringVar(&c.cfgPath, "config", "", "load configuration from `filename`")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitFailure
	}
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	src, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitFailure
	}
	prog, err := parser.Parse(string(src))
	if err != nil {
		atExit(nil, err, c.debug)
		return subcommands.ExitFailure
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()
	out := wsi.NewErrWriter(stdout)

	steps := c.maxSteps
	if steps == 0 {
		steps = cfg.Execution.MaxSteps
	}
	opts := []vm.Option{
		vm.Output(out),
		vm.MaxSteps(steps),
		vm.Input(os.Stdin),
	}
	if cfg.Execution.InputFile != "" {
		r, err := os.Open(cfg.Execution.InputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return subcommands.ExitFailure
		}
		defer r.Close()
		opts = append(opts, vm.Input(bufio.NewReader(r)))
	}
	// readers pushed last are consumed first; push the -input files in
	// reverse so they drain in command line order
	for n := len(c.inputs) - 1; n >= 0; n-- {
		r, err := os.Open(c.inputs[n])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return subcommands.ExitFailure
		}
		defer r.Close()
		opts = append(opts, vm.Input(bufio.NewReader(r)))
	}

	i, err := vm.New(prog, opts...)
	if err == nil {
		err = i.Run()
	}
	if err == nil {
		err = out.Err
	}
	if err != nil {
		stdout.Flush()
		atExit(i, err, c.debug || cfg.Display.Debug)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *runCmd) loadConfig() (*config.Config, error) {
	if c.cfgPath != "" {
		return config.LoadFrom(c.cfgPath)
	}
	return config.Load()
}

// atExit reports a failed parse or run on stderr, with pkg/errors stack
// traces and a VM state dump when debug diagnostics are on.
func atExit(i *vm.Instance, err error, debug bool) {
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	if i != nil {
		whitespace.DumpVM(i, os.Stderr)
	}
}
