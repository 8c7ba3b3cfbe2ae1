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
)

// Option interface
type Option func(*Instance) error

// Input pushes the given Reader on top of the input stack. The reader pushed
// last is consumed first; inchar and innum fall back to the previously
// pushed reader once it is exhausted.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output sets the output Writer.
func Output(w io.Writer) Option {
	return func(i *Instance) error { i.output = newWriter(w); return nil }
}

// MaxSteps bounds the number of instructions a single Run may execute.
// Zero, the default, means no bound.
func MaxSteps(n uint64) Option {
	return func(i *Instance) error { i.maxSteps = n; return nil }
}

// Instance represents a Whitespace VM instance.
type Instance struct {
	// PC is the instruction pointer: the index into the program of the next
	// instruction to execute.
	PC int

	prog     Program
	data     []*big.Int
	calls    []int
	heap     map[string]*big.Int
	input    io.RuneReader
	output   runeWriter
	steps    uint64
	maxSteps uint64
	halted   bool
}

// New creates a new Whitespace Virtual Machine instance running the given
// program.
func New(p Program, opts ...Option) (*Instance, error) {
	i := &Instance{
		prog: p,
		heap: make(map[string]*big.Int),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.output == nil {
		i.output = newWriter(io.Discard)
	}
	return i, nil
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// Data returns the data stack. The returned slice aliases the instance's
// stack up to the next push; treat it as read-only.
func (i *Instance) Data() []*big.Int {
	return i.data
}

// Calls returns the saved call sites, oldest first. Each entry is the index
// of a call instruction awaiting its ret.
func (i *Instance) Calls() []int {
	return i.calls
}

// HeapAt returns the heap value stored at address a, or false if the address
// was never stored.
func (i *Instance) HeapAt(a *big.Int) (*big.Int, bool) {
	v, ok := i.heap[a.String()]
	return v, ok
}

// Steps returns the number of instructions executed so far.
func (i *Instance) Steps() uint64 {
	return i.steps
}

// Halted reports whether the program terminated cleanly via end.
func (i *Instance) Halted() bool {
	return i.halted
}

// Push pushes the argument on top of the data stack.
func (i *Instance) Push(v *big.Int) {
	i.data = append(i.data, v)
}

// Depth returns the data stack depth.
func (i *Instance) Depth() int {
	return len(i.data)
}
