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

import "github.com/pkg/errors"

// Runtime error kinds. Run wraps these with the faulting program counter and
// instruction; use errors.Cause to match a kind.
var (
	// ErrUnderflow is returned when an instruction needs more values than
	// the data stack holds.
	ErrUnderflow = errors.New("not enough values on the stack")

	// ErrNegativeCopy is returned by copy when the pick depth is negative.
	ErrNegativeCopy = errors.New("out of bounds index")

	// ErrDivisionByZero is returned by div and mod on a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnsetAddress is returned by load when the address was never stored.
	ErrUnsetAddress = errors.New("address does not exist in heap")

	// ErrUnknownLabel is returned by call and the jumps when the target
	// label was never marked.
	ErrUnknownLabel = errors.New("label not found")

	// ErrInputExhausted is returned when inchar or innum reads past the end
	// of the input stream.
	ErrInputExhausted = errors.New("input stream exhausted")

	// ErrInputNumber is returned when innum reads a token that does not
	// parse as an integer in its base.
	ErrInputNumber = errors.New("invalid number on input stream")

	// ErrCodepoint is returned by outchar when the popped value is not a
	// valid Unicode code point.
	ErrCodepoint = errors.New("codepoint out of range")

	// ErrNoCallSite is returned by ret when no call site has been saved.
	ErrNoCallSite = errors.New("return without call")

	// ErrUncleanTermination is returned when the program counter runs off
	// the end of the program without executing end.
	ErrUncleanTermination = errors.New("unclean termination")

	// ErrStepLimit is returned when the instance executes more instructions
	// than allowed by the MaxSteps option.
	ErrStepLimit = errors.New("step limit exceeded")
)
