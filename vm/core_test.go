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

package vm_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squancy/whitespace-interpreter/vm"
)

type I []vm.Instruction

func op(o vm.Opcode) vm.Instruction { return vm.Instruction{Op: o} }

func arg(o vm.Opcode, n int64) vm.Instruction {
	return vm.Instruction{Op: o, Arg: big.NewInt(n)}
}

func ref(o vm.Opcode, l vm.Label) vm.Instruction {
	return vm.Instruction{Op: o, Label: l}
}

func push(n int64) vm.Instruction { return arg(vm.OpPush, n) }

func runVM(t *testing.T, code I, labels map[vm.Label]int, input string) (*vm.Instance, string, error) {
	t.Helper()
	if labels == nil {
		labels = make(map[vm.Label]int)
	}
	var out strings.Builder
	i, err := vm.New(vm.Program{Code: code, Labels: labels},
		vm.Input(strings.NewReader(input)),
		vm.Output(&out))
	require.NoError(t, err)
	err = i.Run()
	return i, out.String(), err
}

func checkStack(t *testing.T, i *vm.Instance, want []int64) {
	t.Helper()
	data := i.Data()
	require.Len(t, data, len(want))
	for n := range want {
		assert.Equal(t, want[n], data[n].Int64(), "stack slot %d", n)
	}
}

func TestCore(t *testing.T) {
	tests := []struct {
		name   string
		code   I
		labels map[vm.Label]int
		input  string
		stack  []int64
		out    string
		err    error
	}{
		{name: "push", code: I{push(25), op(vm.OpEnd)}, stack: []int64{25}},
		{name: "dup", code: I{push(42), op(vm.OpDup), op(vm.OpEnd)}, stack: []int64{42, 42}},
		{name: "dup empty", code: I{op(vm.OpDup)}, err: vm.ErrUnderflow},
		{name: "swap", code: I{push(1), push(2), op(vm.OpSwap), op(vm.OpEnd)}, stack: []int64{2, 1}},
		{name: "swap short", code: I{push(1), op(vm.OpSwap)}, err: vm.ErrUnderflow},
		{name: "drop", code: I{push(1), push(2), op(vm.OpDrop), op(vm.OpEnd)}, stack: []int64{1}},
		{name: "drop empty", code: I{op(vm.OpDrop)}, err: vm.ErrUnderflow},

		{name: "copy top", code: I{push(1), push(2), arg(vm.OpCopy, 0), op(vm.OpEnd)}, stack: []int64{1, 2, 2}},
		{name: "copy deep", code: I{push(1), push(2), push(3), arg(vm.OpCopy, 2), op(vm.OpEnd)}, stack: []int64{1, 2, 3, 1}},
		{name: "copy negative", code: I{push(1), arg(vm.OpCopy, -1)}, err: vm.ErrNegativeCopy},
		{name: "copy too deep", code: I{push(1), arg(vm.OpCopy, 1)}, err: vm.ErrUnderflow},

		{name: "slide", code: I{push(1), push(2), push(3), push(4), arg(vm.OpSlide, 2), op(vm.OpEnd)}, stack: []int64{1, 4}},
		{name: "slide zero", code: I{push(1), push(2), arg(vm.OpSlide, 0), op(vm.OpEnd)}, stack: []int64{1, 2}},
		{name: "slide negative drops all", code: I{push(1), push(2), push(3), arg(vm.OpSlide, -1), op(vm.OpEnd)}, stack: []int64{3}},
		{name: "slide keeps zero TOS", code: I{push(5), push(0), arg(vm.OpSlide, -1), op(vm.OpEnd)}, stack: []int64{0}},
		{name: "slide keeps zero TOS positive n", code: I{push(0), push(0), push(0), arg(vm.OpSlide, 2), op(vm.OpEnd)}, stack: []int64{0}},
		{name: "slide underflow", code: I{push(1), arg(vm.OpSlide, 1)}, err: vm.ErrUnderflow},

		{name: "add", code: I{push(2), push(3), op(vm.OpAdd), op(vm.OpEnd)}, stack: []int64{5}},
		{name: "sub", code: I{push(5), push(2), op(vm.OpSub), op(vm.OpEnd)}, stack: []int64{3}},
		{name: "mul", code: I{push(-4), push(3), op(vm.OpMul), op(vm.OpEnd)}, stack: []int64{-12}},
		{name: "div floors", code: I{push(-7), push(2), op(vm.OpDiv), op(vm.OpEnd)}, stack: []int64{-4}},
		{name: "mod divisor sign", code: I{push(7), push(-2), op(vm.OpMod), op(vm.OpEnd)}, stack: []int64{-1}},
		{name: "div by zero", code: I{push(1), push(0), op(vm.OpDiv)}, err: vm.ErrDivisionByZero},
		{name: "mod by zero", code: I{push(1), push(0), op(vm.OpMod)}, err: vm.ErrDivisionByZero},
		{name: "arith underflow", code: I{push(1), op(vm.OpAdd)}, err: vm.ErrUnderflow},

		{name: "store load", code: I{push(42), push(99), op(vm.OpStore), push(42), op(vm.OpLoad), op(vm.OpEnd)}, stack: []int64{99}},
		{name: "load unset", code: I{push(7), op(vm.OpLoad)}, err: vm.ErrUnsetAddress},
		{name: "store underflow", code: I{push(1), op(vm.OpStore)}, err: vm.ErrUnderflow},

		{name: "outchar", code: I{push(65), op(vm.OpOutChar), op(vm.OpEnd)}, out: "A"},
		{name: "outchar unicode", code: I{push(0x2603), op(vm.OpOutChar), op(vm.OpEnd)}, out: "☃"},
		{name: "outchar negative", code: I{push(-1), op(vm.OpOutChar)}, err: vm.ErrCodepoint},
		{name: "outchar too large", code: I{push(0x110000), op(vm.OpOutChar)}, err: vm.ErrCodepoint},
		{name: "outnum", code: I{push(-123), op(vm.OpOutNum), op(vm.OpEnd)}, out: "-123"},
		{name: "outnum zero", code: I{push(0), op(vm.OpOutNum), op(vm.OpEnd)}, out: "0"},

		{name: "inchar", code: I{push(0), op(vm.OpInChar), push(0), op(vm.OpLoad), op(vm.OpOutNum), op(vm.OpEnd)}, input: "A", out: "65"},
		{name: "inchar exhausted", code: I{push(0), op(vm.OpInChar)}, err: vm.ErrInputExhausted},
		{name: "innum", code: I{push(3), op(vm.OpInNum), push(3), op(vm.OpLoad), op(vm.OpOutNum), op(vm.OpEnd)}, input: "42\n", out: "42"},
		{name: "innum bad token", code: I{push(0), op(vm.OpInNum)}, input: "4x2\n", err: vm.ErrInputNumber},
		{name: "innum exhausted", code: I{push(0), op(vm.OpInNum)}, input: "42", err: vm.ErrInputExhausted},

		{name: "mark is a no-op", code: I{push(1), ref(vm.OpMark, "s"), push(2), op(vm.OpEnd)},
			labels: map[vm.Label]int{"s": 2}, stack: []int64{1, 2}},
		{name: "jump", code: I{ref(vm.OpJump, "s"), push(99), push(1), op(vm.OpEnd)},
			labels: map[vm.Label]int{"s": 2}, stack: []int64{1}},
		{name: "jump unknown label", code: I{ref(vm.OpJump, "t")}, err: vm.ErrUnknownLabel},
		{name: "jz taken", code: I{push(0), ref(vm.OpJumpZ, "s"), push(99), op(vm.OpEnd)},
			labels: map[vm.Label]int{"s": 3}, stack: []int64{}},
		{name: "jz not taken", code: I{push(1), ref(vm.OpJumpZ, "s"), push(99), op(vm.OpEnd)},
			labels: map[vm.Label]int{"s": 3}, stack: []int64{99}},
		{name: "jn taken", code: I{push(-1), ref(vm.OpJumpN, "s"), push(99), op(vm.OpEnd)},
			labels: map[vm.Label]int{"s": 3}, stack: []int64{}},
		{name: "jn not taken on zero", code: I{push(0), ref(vm.OpJumpN, "s"), push(99), op(vm.OpEnd)},
			labels: map[vm.Label]int{"s": 3}, stack: []int64{99}},
		{name: "jz underflow", code: I{ref(vm.OpJumpZ, "s")}, labels: map[vm.Label]int{"s": 0}, err: vm.ErrUnderflow},

		{name: "call ret", code: I{ref(vm.OpCall, "s"), op(vm.OpEnd), push(7), op(vm.OpReturn)},
			labels: map[vm.Label]int{"s": 2}, stack: []int64{7}},
		{name: "nested calls", code: I{
			ref(vm.OpCall, "s"),  // 0
			op(vm.OpEnd),         // 1
			push(1),              // 2
			ref(vm.OpCall, "st"), // 3
			op(vm.OpReturn),      // 4
			push(2),              // 5
			op(vm.OpReturn),      // 6
		}, labels: map[vm.Label]int{"s": 2, "st": 5}, stack: []int64{1, 2}},
		{name: "ret without call", code: I{op(vm.OpReturn)}, err: vm.ErrNoCallSite},
		{name: "call unknown label", code: I{ref(vm.OpCall, "sss")}, err: vm.ErrUnknownLabel},

		{name: "end halts", code: I{op(vm.OpEnd), push(99)}, stack: []int64{}},
		{name: "unclean termination", code: I{push(1)}, err: vm.ErrUncleanTermination},
		{name: "empty program", code: I{}, err: vm.ErrUncleanTermination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, out, err := runVM(t, tt.code, tt.labels, tt.input)
			if tt.err != nil {
				require.Error(t, err)
				assert.Equal(t, tt.err, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, i.Halted())
			assert.Equal(t, tt.out, out)
			if tt.stack != nil {
				checkStack(t, i, tt.stack)
			}
		})
	}
}

// recursion must work: sum(n) = n + sum(n-1), sum(0) = 0, computed with a
// genuinely recursive subroutine.
func TestCore_recursion(t *testing.T) {
	code := I{
		push(10),              // 0
		ref(vm.OpCall, "s"),   // 1
		op(vm.OpOutNum),       // 2
		op(vm.OpEnd),          // 3
		op(vm.OpDup),          // 4: sum: n n
		ref(vm.OpJumpZ, "st"), // 5: n
		op(vm.OpDup),          // 6: n n
		push(1),               // 7
		op(vm.OpSub),          // 8: n n-1
		ref(vm.OpCall, "s"),   // 9: n sum(n-1)
		op(vm.OpAdd),          // 10
		op(vm.OpReturn),       // 11
		push(0),               // 12: base case: stack held 0
		op(vm.OpAdd),          // 13
		op(vm.OpReturn),       // 14
	}
	labels := map[vm.Label]int{"s": 4, "st": 12}
	_, out, err := runVM(t, code, labels, "")
	require.NoError(t, err)
	assert.Equal(t, "55", out)
}

// stack and heap values are arbitrary precision end to end.
func TestCore_bigValues(t *testing.T) {
	huge, ok := new(big.Int).SetString("340282366920938463463374607431768211456", 10) // 2^128
	require.True(t, ok)
	code := I{
		{Op: vm.OpPush, Arg: huge},
		{Op: vm.OpPush, Arg: huge},
		op(vm.OpMul),
		op(vm.OpOutNum),
		op(vm.OpEnd),
	}
	want := new(big.Int).Mul(huge, huge)
	_, out, err := runVM(t, code, nil, "")
	require.NoError(t, err)
	assert.Equal(t, want.String(), out)
}
