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

package whitespace_test

import (
	"fmt"

	"github.com/squancy/whitespace-interpreter/lang/whitespace"
)

// Runs a minimal program: push 1, print it as a number, end. Anything that
// is not a space, tab or line feed is a comment.
func ExampleInterpret() {
	code := "push:   \t\n" + "print:\t\n \t" + "end:\n\n\n"
	out, err := whitespace.Interpret(code, "")
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// 1
}

// Programs read their input stream through the inchar and innum
// instructions; innum understands 0x, 0b and 0 base prefixes.
func ExampleInterpret_input() {
	// innum into heap[0], load it back, print, end
	code := "  " + " \n" + // push 0
		"\t\n\t\t" + // innum
		"  " + " \n" + // push 0
		"\t\t\t" + // load
		"\t\n \t" + // outnum
		"\n\n\n" // end
	out, err := whitespace.Interpret(code, "0x2a\n")
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// 42
}
