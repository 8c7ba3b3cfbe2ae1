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

// Package parser decodes Whitespace source text into programs for the vm
// package.
//
// Whitespace source uses exactly three significant characters: space, tab
// and line feed. Every other character is a comment and is stripped before
// parsing (see Filter). Each instruction starts with an instruction
// modification parameter (IMP) selecting its category, followed by an
// operation prefix and, for some operations, an immediate:
//
//	IMP          category
//	[Space]      stack manipulation
//	[Tab][Space] arithmetic
//	[Tab][Tab]   heap access
//	[Tab][LF]    I/O
//	[LF]         flow control
//
// Number immediates are a sign character (space positive, tab negative)
// followed by binary digits (space 0, tab 1), most significant first, and a
// line feed terminator. A sign immediately followed by the terminator
// denotes zero. Numbers have arbitrary precision.
//
// Label immediates are a possibly empty string of space/tab digits followed
// by a line feed; two labels are the same exactly when their digit strings
// match. A mark instruction binds its label to the index of the instruction
// after it, so both forward and backward references work. Marking a label
// twice is a parse error, while jumping to a label that is never marked is
// reported at run time, not here.
//
// Disassemble and DisassembleAll render decoded programs as mnemonic
// listings, which is as close to a readable form as Whitespace gets.
package parser
