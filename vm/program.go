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

package vm

import "math/big"

// Opcode identifies a decoded Whitespace instruction.
type Opcode int

// Whitespace Virtual Machine Opcodes.
const (
	OpPush Opcode = iota
	OpCopy
	OpSlide
	OpDup
	OpSwap
	OpDrop
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpStore
	OpLoad
	OpOutChar
	OpOutNum
	OpInChar
	OpInNum
	OpMark
	OpCall
	OpJump
	OpJumpZ
	OpJumpN
	OpReturn
	OpEnd
)

var opcodes = [...]string{
	"push",
	"copy",
	"slide",
	"dup",
	"swap",
	"drop",
	"add",
	"sub",
	"mul",
	"div",
	"mod",
	"store",
	"load",
	"outchar",
	"outnum",
	"inchar",
	"innum",
	"mark",
	"call",
	"jmp",
	"jz",
	"jn",
	"ret",
	"end",
}

func (op Opcode) String() string {
	if op < 0 || int(op) >= len(opcodes) {
		return "unknown"
	}
	return opcodes[op]
}

// Label is a jump target identifier: the instruction's raw tab/space digit
// string with tabs written as 't' and spaces as 's'. Two labels are equal if
// and only if their digit strings match exactly. The empty label is valid.
type Label string

// Instruction is a single decoded instruction. Arg is set for push, copy and
// slide; Label is set for mark, call and the jumps. Arg values are never
// mutated by the VM.
type Instruction struct {
	Op    Opcode
	Arg   *big.Int
	Label Label
}

// Program is a parsed Whitespace program: a linear instruction sequence and
// the table mapping each marked label to the index of the instruction
// following its mark. A label whose mark is the last instruction maps to
// len(Code); jumping to it runs the program off the end.
type Program struct {
	Code   []Instruction
	Labels map[Label]int
}
