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

	"github.com/squancy/whitespace-interpreter/parser"
)

type dumpCmd struct {
	debug bool
}

func (*dumpCmd) Name() string { return "dump" }

func (*dumpCmd) Synopsis() string { return "Disassemble a Whitespace program." }

func (*dumpCmd) Usage() string {
	return `dump program...:
Parse each program file and write its instruction listing to stdout.
`
}

func (c *dumpCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.debug, "debug", false, "enable debug diagnostics")
}

func (c *dumpCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, name := range f.Args() {
		src, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return subcommands.ExitFailure
		}
		prog, err := parser.Parse(string(src))
		if err != nil {
			atExit(nil, err, c.debug)
			return subcommands.ExitFailure
		}
		parser.DisassembleAll(prog, w)
	}
	return subcommands.ExitSuccess
}
