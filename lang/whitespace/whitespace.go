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

// Package whitespace runs Whitespace programs.
//
// It glues the parser and vm packages into the language-level contract: a
// program text and an input text go in, the program's complete output comes
// out. Interpret is a pure function; no state survives a call.
package whitespace

import (
	"strings"

	"github.com/squancy/whitespace-interpreter/parser"
	"github.com/squancy/whitespace-interpreter/vm"
)

// Interpret parses code and executes it with input as the program's input
// stream, returning everything the program wrote to its output stream.
//
// On a parse or runtime failure the output is empty, never partial, and the
// error's cause is one of the parser or vm error kinds.
func Interpret(code, input string) (string, error) {
	prog, err := parser.Parse(code)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	i, err := vm.New(prog,
		vm.Input(strings.NewReader(input)),
		vm.Output(&out))
	if err != nil {
		return "", err
	}
	if err = i.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}
