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
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/squancy/whitespace-interpreter/vm"
)

// The three significant characters. Everything else is a comment.
const (
	space    = ' '
	tab      = '\t'
	lineFeed = '\n'
)

// Parse error kinds. Parse wraps these with the filtered-source offset of
// the failure (a repeated label is wrapped with the label instead); use
// errors.Cause to match a kind.
var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidLabel  = errors.New("invalid label")
	ErrInvalidOp     = errors.New("invalid operation")
	ErrRepeatedLabel = errors.New("repeated label")
)

// IMP categories, used to name the failing instruction group in errors.
const (
	catStack = "stack manipulation"
	catArith = "arithmetic"
	catHeap  = "heap access"
	catIO    = "I/O"
	catFlow  = "flow control"
)

// Filter returns src with every rune outside the Whitespace alphabet
// (space, tab, line feed) removed. All other characters, including other
// whitespace variants, carry no meaning.
func Filter(src string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case space, tab, lineFeed:
			return r
		}
		return -1
	}, src)
}

type parser struct {
	code string
	pos  int
}

// at returns the code byte at offset off from the current position.
func (p *parser) at(off int) (byte, bool) {
	if p.pos+off >= len(p.code) {
		return 0, false
	}
	return p.code[p.pos+off], true
}

// parseNumber decodes a number literal at offset off from the current
// position: a sign character (space positive, tab negative), binary digits
// most significant first (space 0, tab 1) and a line feed terminator. The
// position is advanced past the terminator.
func (p *parser) parseNumber(off int) (*big.Int, error) {
	p.pos += off
	c, ok := p.at(0)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidNumber, "offset %d: unterminated", p.pos)
	}
	if c == lineFeed {
		return nil, errors.Wrapf(ErrInvalidNumber, "offset %d: starts with a line feed", p.pos)
	}
	neg := c == tab
	p.pos++
	var digits strings.Builder
	for {
		c, ok := p.at(0)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidNumber, "offset %d: unterminated", p.pos)
		}
		p.pos++
		if c == lineFeed {
			break
		}
		if c == tab {
			digits.WriteByte('1')
		} else {
			digits.WriteByte('0')
		}
	}
	n := new(big.Int)
	if digits.Len() > 0 {
		n.SetString(digits.String(), 2)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}

// parseLabel decodes a label at offset off from the current position: the
// raw digit string up to but not including the line feed terminator, with
// tabs written as 't' and spaces as 's'. The empty label is valid. The
// position is advanced past the terminator.
func (p *parser) parseLabel(off int) (vm.Label, error) {
	p.pos += off
	var digits strings.Builder
	for {
		c, ok := p.at(0)
		if !ok {
			return "", errors.Wrapf(ErrInvalidLabel, "offset %d: unterminated", p.pos)
		}
		p.pos++
		if c == lineFeed {
			break
		}
		if c == tab {
			digits.WriteByte('t')
		} else {
			digits.WriteByte('s')
		}
	}
	return vm.Label(digits.String()), nil
}

// invalidOp builds the parse error for an unrecognized or truncated
// instruction in the given IMP category.
func (p *parser) invalidOp(cat string) error {
	return errors.Wrapf(ErrInvalidOp, "%s, offset %d", cat, p.pos)
}

// Parse decodes a Whitespace program into a linear instruction sequence and
// a label table. The source is comment-filtered first; the filtered text is
// then walked once, recognizing the IMP and op prefix of each instruction
// and decoding its immediate, if any.
//
// Each mark binds its label to the index of the instruction that follows
// it, so jumps land just past the mark. Marking the same label twice is an
// error. Jumps to labels that are never marked are not detected here; they
// fail at jump time.
func Parse(src string) (vm.Program, error) {
	p := &parser{code: Filter(src)}
	prog := vm.Program{Labels: make(map[vm.Label]int)}

	emit := func(op vm.Opcode) {
		prog.Code = append(prog.Code, vm.Instruction{Op: op})
	}
	emitArg := func(op vm.Opcode, off int) error {
		n, err := p.parseNumber(off)
		if err != nil {
			return err
		}
		prog.Code = append(prog.Code, vm.Instruction{Op: op, Arg: n})
		return nil
	}
	emitLabel := func(op vm.Opcode, off int) (vm.Label, error) {
		l, err := p.parseLabel(off)
		if err != nil {
			return "", err
		}
		prog.Code = append(prog.Code, vm.Instruction{Op: op, Label: l})
		return l, nil
	}

	for p.pos < len(p.code) {
		c0 := p.code[p.pos]
		c1, ok1 := p.at(1)
		switch c0 {
		case space: // IMP - stack manipulation
			switch {
			case c1 == space:
				if err := emitArg(vm.OpPush, 2); err != nil {
					return vm.Program{}, err
				}
			case c1 == tab:
				c2, ok2 := p.at(2)
				if !ok2 || c2 == tab {
					return vm.Program{}, p.invalidOp(catStack)
				}
				op := vm.OpCopy
				if c2 == lineFeed {
					op = vm.OpSlide
				}
				if err := emitArg(op, 3); err != nil {
					return vm.Program{}, err
				}
			case c1 == lineFeed:
				c2, ok2 := p.at(2)
				if !ok2 {
					return vm.Program{}, p.invalidOp(catStack)
				}
				switch c2 {
				case space:
					emit(vm.OpDup)
				case tab:
					emit(vm.OpSwap)
				default:
					emit(vm.OpDrop)
				}
				p.pos += 3
			default: // lone trailing space
				return vm.Program{}, p.invalidOp(catStack)
			}

		case tab:
			if !ok1 {
				return vm.Program{}, p.invalidOp(catArith)
			}
			switch c1 {
			case space: // IMP - arithmetic
				c2, ok2 := p.at(2)
				c3, ok3 := p.at(3)
				if !ok2 || !ok3 {
					return vm.Program{}, p.invalidOp(catArith)
				}
				switch {
				case c2 == space && c3 == space:
					emit(vm.OpAdd)
				case c2 == space && c3 == tab:
					emit(vm.OpSub)
				case c2 == space && c3 == lineFeed:
					emit(vm.OpMul)
				case c2 == tab && c3 == space:
					emit(vm.OpDiv)
				case c2 == tab && c3 == tab:
					emit(vm.OpMod)
				default:
					return vm.Program{}, p.invalidOp(catArith)
				}
				p.pos += 4
			case tab: // IMP - heap access
				c2, ok2 := p.at(2)
				if !ok2 || c2 == lineFeed {
					return vm.Program{}, p.invalidOp(catHeap)
				}
				if c2 == space {
					emit(vm.OpStore)
				} else {
					emit(vm.OpLoad)
				}
				p.pos += 3
			default: // IMP - I/O
				c2, ok2 := p.at(2)
				c3, ok3 := p.at(3)
				if !ok2 || !ok3 {
					return vm.Program{}, p.invalidOp(catIO)
				}
				switch {
				case c2 == space && c3 == space:
					emit(vm.OpOutChar)
				case c2 == space && c3 == tab:
					emit(vm.OpOutNum)
				case c2 == tab && c3 == space:
					emit(vm.OpInChar)
				case c2 == tab && c3 == tab:
					emit(vm.OpInNum)
				default:
					return vm.Program{}, p.invalidOp(catIO)
				}
				p.pos += 4
			}

		default: // IMP - flow control
			c2, ok2 := p.at(2)
			if !ok1 || !ok2 {
				return vm.Program{}, p.invalidOp(catFlow)
			}
			switch {
			case c1 == space && c2 == space:
				l, err := emitLabel(vm.OpMark, 3)
				if err != nil {
					return vm.Program{}, err
				}
				if _, dup := prog.Labels[l]; dup {
					return vm.Program{}, errors.Wrapf(ErrRepeatedLabel, "%q", string(l))
				}
				prog.Labels[l] = len(prog.Code)
			case c1 == space && c2 == tab:
				if _, err := emitLabel(vm.OpCall, 3); err != nil {
					return vm.Program{}, err
				}
			case c1 == space && c2 == lineFeed:
				if _, err := emitLabel(vm.OpJump, 3); err != nil {
					return vm.Program{}, err
				}
			case c1 == tab && c2 == space:
				if _, err := emitLabel(vm.OpJumpZ, 3); err != nil {
					return vm.Program{}, err
				}
			case c1 == tab && c2 == tab:
				if _, err := emitLabel(vm.OpJumpN, 3); err != nil {
					return vm.Program{}, err
				}
			case c1 == tab && c2 == lineFeed:
				emit(vm.OpReturn)
				p.pos += 3
			case c1 == lineFeed && c2 == lineFeed:
				emit(vm.OpEnd)
				p.pos += 3
			default:
				return vm.Program{}, p.invalidOp(catFlow)
			}
		}
	}
	return prog, nil
}
