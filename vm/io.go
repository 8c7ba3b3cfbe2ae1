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
	"strings"

	"github.com/pkg/errors"
)

// PushInput sets r as the current input reader for the VM. When this reader
// reaches EOF, the previously pushed reader will be used.
func (i *Instance) PushInput(r io.Reader) {
	rr := newRuneReader(r)
	switch in := i.input.(type) {
	case nil:
		i.input = rr
	case *multiRuneReader:
		in.pushReader(rr)
	default:
		i.input = &multiRuneReader{readers: []io.RuneReader{rr, in}}
	}
}

// readRune consumes one character from the input stream.
func (i *Instance) readRune() (rune, error) {
	if i.input == nil {
		return 0, errors.Wrap(ErrInputExhausted, "no input")
	}
	r, _, err := i.input.ReadRune()
	if err != nil {
		return 0, errors.Wrap(ErrInputExhausted, "reading character")
	}
	return r, nil
}

// readNumber consumes one integer literal terminated by a line feed from the
// input stream and returns its value. The terminator is consumed, the
// literal may carry a base prefix:
//
//	0x  hexadecimal
//	0b  binary
//	0   octal
//
// and is otherwise decimal. A '-' sign is honored after prefix stripping.
func (i *Instance) readNumber() (*big.Int, error) {
	var tok strings.Builder
	for {
		r, err := i.readRune()
		if err != nil {
			return nil, err
		}
		if r == '\n' {
			break
		}
		tok.WriteRune(r)
	}
	s := tok.String()
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0b"):
		base, s = 2, s[2:]
	case strings.HasPrefix(s, "0"):
		base, s = 8, s[1:]
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, errors.Wrapf(ErrInputNumber, "%q (base %d)", tok.String(), base)
	}
	return n, nil
}
