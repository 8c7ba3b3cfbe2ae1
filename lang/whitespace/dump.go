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

package whitespace

import (
	"io"
	"math/big"
	"strconv"

	"github.com/squancy/whitespace-interpreter/vm"
)

func dumpInts(w io.Writer, prefix string, a []*big.Int) error {
	if _, err := io.WriteString(w, prefix); err != nil {
		return err
	}
	for n, v := range a {
		if n > 0 {
			if _, err := w.Write([]byte{' '}); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, v.String()); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

// DumpVM dumps the virtual machine data stack and saved call sites to the
// specified io.Writer. Intended for diagnostics after a failed run.
func DumpVM(i *vm.Instance, w io.Writer) error {
	if err := dumpInts(w, "stack: ", i.Data()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "calls: "); err != nil {
		return err
	}
	for n, c := range i.Calls() {
		if n > 0 {
			if _, err := w.Write([]byte{' '}); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, strconv.Itoa(c)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\npc: "+strconv.Itoa(i.PC)+
		", steps: "+strconv.FormatUint(i.Steps(), 10)+"\n")
	return err
}
