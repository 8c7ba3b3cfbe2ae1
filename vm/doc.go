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

// Package vm implements the Whitespace virtual machine.
//
// The VM executes a parsed Program (see the parser package) against a data
// stack of arbitrary-precision signed integers, a sparse heap mapping
// integer addresses to integer values, a stack of saved call sites, an input
// stream and an output stream. Stack and heap values have no fixed width;
// programs may push and multiply integers of any magnitude.
//
// A note for anyone hacking on the VM code itself: the PC (aka. instruction
// pointer) is not incremented in a single place, rather each opcode deals
// with the PC as needed. Mark instructions are runtime no-ops since all
// label binding happens at parse time; call and the jumps transfer control
// directly to parse-time label targets, and ret resumes just after the most
// recently saved call site.
//
// Unlike the single return-site register found in some Whitespace
// implementations, call sites are kept on a stack, so subroutines may nest
// and recurse. A ret with no saved call site is an error.
//
// Input is plugged in with the Input option and may be stacked: the reader
// pushed last is drained first. The inchar instruction consumes single
// characters; innum consumes integer literals terminated by a line feed,
// with optional 0x/0b/0 base prefixes.
//
// Division and modulo floor their results, with the remainder taking the
// sign of the divisor, matching the reference semantics of the language
// rather than Go's truncating operators.
package vm
