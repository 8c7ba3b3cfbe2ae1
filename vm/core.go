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

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// pop removes and returns the value on top of the data stack.
func (i *Instance) pop() (*big.Int, error) {
	if len(i.data) == 0 {
		return nil, ErrUnderflow
	}
	v := i.data[len(i.data)-1]
	i.data = i.data[:len(i.data)-1]
	return v, nil
}

// pop2 pops the top two values: a first, then b.
func (i *Instance) pop2() (a, b *big.Int, err error) {
	if len(i.data) < 2 {
		return nil, nil, ErrUnderflow
	}
	a = i.data[len(i.data)-1]
	b = i.data[len(i.data)-2]
	i.data = i.data[:len(i.data)-2]
	return a, b, nil
}

func (i *Instance) target(l Label) (int, error) {
	t, ok := i.prog.Labels[l]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownLabel, "%q", string(l))
	}
	return t, nil
}

// Run starts execution of the VM.
//
// If an error occurs, the PC will point to the instruction that triggered
// the error, and errors.Cause of the returned error is one of the kinds
// declared in errors.go.
//
// A program must terminate via the end instruction; running off the end of
// the instruction sequence returns ErrUncleanTermination.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%d/%d, stack %d, calls %d",
					i.PC, len(i.prog.Code), len(i.data), len(i.calls))
			default:
				panic(e)
			}
		}
	}()
	code := i.prog.Code
	for i.PC < len(code) && !i.halted {
		if i.maxSteps > 0 && i.steps >= i.maxSteps {
			return errors.Wrapf(ErrStepLimit, "%d instructions", i.maxSteps)
		}
		ins := &code[i.PC]
		if err = i.step(ins); err != nil {
			return errors.Wrapf(err, "%v @pc=%d", ins.Op, i.PC)
		}
		i.steps++
	}
	if !i.halted {
		return errors.Wrapf(ErrUncleanTermination, "pc=%d", i.PC)
	}
	return nil
}

// step executes a single instruction. As in most VM loops, the PC is not
// incremented in a single place: each opcode deals with the PC as needed.
func (i *Instance) step(ins *Instruction) error {
	switch ins.Op {
	case OpPush:
		i.Push(new(big.Int).Set(ins.Arg))
		i.PC++
	case OpCopy:
		if ins.Arg.Sign() < 0 {
			return errors.Wrapf(ErrNegativeCopy, "copy %s", ins.Arg)
		}
		depth := len(i.data)
		if !ins.Arg.IsInt64() || ins.Arg.Int64() >= int64(depth) {
			return errors.Wrapf(ErrUnderflow, "copy %s, depth %d", ins.Arg, depth)
		}
		i.Push(new(big.Int).Set(i.data[depth-1-int(ins.Arg.Int64())]))
		i.PC++
	case OpSlide:
		if err := i.slide(ins.Arg); err != nil {
			return err
		}
		i.PC++
	case OpDup:
		if len(i.data) == 0 {
			return errors.Wrap(ErrUnderflow, "dup")
		}
		i.Push(new(big.Int).Set(i.data[len(i.data)-1]))
		i.PC++
	case OpSwap:
		if len(i.data) < 2 {
			return errors.Wrap(ErrUnderflow, "swap")
		}
		l := len(i.data)
		i.data[l-1], i.data[l-2] = i.data[l-2], i.data[l-1]
		i.PC++
	case OpDrop:
		if _, err := i.pop(); err != nil {
			return err
		}
		i.PC++
	case OpAdd, OpSub, OpMul, OpDiv, OpMod:
		a, b, err := i.pop2()
		if err != nil {
			return err
		}
		v, err := arith(ins.Op, b, a)
		if err != nil {
			return err
		}
		i.Push(v)
		i.PC++
	case OpStore:
		a, b, err := i.pop2()
		if err != nil {
			return err
		}
		i.heap[b.String()] = a
		i.PC++
	case OpLoad:
		a, err := i.pop()
		if err != nil {
			return err
		}
		v, ok := i.heap[a.String()]
		if !ok {
			return errors.Wrapf(ErrUnsetAddress, "address %s", a)
		}
		i.Push(v)
		i.PC++
	case OpOutChar:
		n, err := i.pop()
		if err != nil {
			return err
		}
		if !n.IsInt64() || !validRune(n.Int64()) {
			return errors.Wrapf(ErrCodepoint, "value %s", n)
		}
		if _, err = i.output.WriteRune(rune(n.Int64())); err != nil {
			return errors.Wrap(err, "write failed")
		}
		i.PC++
	case OpOutNum:
		n, err := i.pop()
		if err != nil {
			return err
		}
		if _, err = io.WriteString(i.output, n.String()); err != nil {
			return errors.Wrap(err, "write failed")
		}
		i.PC++
	case OpInChar:
		b, err := i.pop()
		if err != nil {
			return err
		}
		r, err := i.readRune()
		if err != nil {
			return err
		}
		i.heap[b.String()] = big.NewInt(int64(r))
		i.PC++
	case OpInNum:
		b, err := i.pop()
		if err != nil {
			return err
		}
		n, err := i.readNumber()
		if err != nil {
			return err
		}
		i.heap[b.String()] = n
		i.PC++
	case OpMark:
		// label binding was resolved at parse time
		i.PC++
	case OpCall:
		t, err := i.target(ins.Label)
		if err != nil {
			return err
		}
		i.calls = append(i.calls, i.PC)
		i.PC = t
	case OpJump:
		t, err := i.target(ins.Label)
		if err != nil {
			return err
		}
		i.PC = t
	case OpJumpZ, OpJumpN:
		t, err := i.target(ins.Label)
		if err != nil {
			return err
		}
		a, err := i.pop()
		if err != nil {
			return err
		}
		if (ins.Op == OpJumpZ && a.Sign() == 0) || (ins.Op == OpJumpN && a.Sign() < 0) {
			i.PC = t
		} else {
			i.PC++
		}
	case OpReturn:
		if len(i.calls) == 0 {
			return ErrNoCallSite
		}
		i.PC = i.calls[len(i.calls)-1] + 1
		i.calls = i.calls[:len(i.calls)-1]
	case OpEnd:
		i.halted = true
	default:
		return errors.Errorf("invalid opcode %d", ins.Op)
	}
	return nil
}

// slide discards n values beneath TOS, preserving TOS. A negative n
// discards everything beneath TOS. Values are removed by reslicing so that
// zeros survive.
func (i *Instance) slide(n *big.Int) error {
	if n.Sign() < 0 {
		if l := len(i.data); l > 1 {
			i.data = append(i.data[:0], i.data[l-1])
		}
		return nil
	}
	if !n.IsInt64() || n.Int64()+1 > int64(len(i.data)) {
		return errors.Wrapf(ErrUnderflow, "slide %s, depth %d", n, len(i.data))
	}
	l := len(i.data)
	i.data = append(i.data[:l-1-int(n.Int64())], i.data[l-1])
	return nil
}

func arith(op Opcode, b, a *big.Int) (*big.Int, error) {
	switch op {
	case OpAdd:
		return new(big.Int).Add(b, a), nil
	case OpSub:
		return new(big.Int).Sub(b, a), nil
	case OpMul:
		return new(big.Int).Mul(b, a), nil
	case OpDiv:
		if a.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return floorDiv(b, a), nil
	default: // OpMod
		if a.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return floorMod(b, a), nil
	}
}

func validRune(n int64) bool {
	return 0 <= n && n <= 0x10FFFF && !(0xD800 <= n && n <= 0xDFFF)
}
