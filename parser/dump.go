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

package parser

import (
	"io"
	"strconv"

	"github.com/squancy/whitespace-interpreter/vm"
)

// Disassemble writes the instruction at index pc of the program to the
// specified io.Writer as a mnemonic with its decoded immediate, if any, and
// returns the index of the next instruction.
func Disassemble(p vm.Program, pc int, w io.Writer) (next int) {
	ins := p.Code[pc]
	io.WriteString(w, ins.Op.String())
	switch ins.Op {
	case vm.OpPush, vm.OpCopy, vm.OpSlide:
		w.Write([]byte{' '})
		io.WriteString(w, ins.Arg.String())
	case vm.OpMark, vm.OpCall, vm.OpJump, vm.OpJumpZ, vm.OpJumpN:
		w.Write([]byte{' '})
		io.WriteString(w, strconv.Quote(string(ins.Label)))
	}
	return pc + 1
}

// DisassembleAll writes a full program listing to the specified io.Writer,
// one "index: mnemonic" line per instruction.
func DisassembleAll(p vm.Program, w io.Writer) {
	for pc := 0; pc < len(p.Code); {
		io.WriteString(w, strconv.Itoa(pc))
		io.WriteString(w, ": ")
		pc = Disassemble(p, pc, w)
		w.Write([]byte{'\n'})
	}
}
