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

// whitespace is a command line interpreter for the Whitespace programming
// language.
//
//	whitespace run [-input file]... [-steps n] [-debug] program.ws
//	whitespace dump program.ws
//	whitespace version
//
// run executes a program. Its input stream is the concatenation of the
// -input files, the configured input file if one is set, and stdin; output
// goes to stdout. A step bound
// guards against non-terminating programs and can be set per run with
// -steps or persistently in the config file (see the config package).
//
// dump prints the decoded instruction listing of a program, which is the
// practical way to inspect source that consists entirely of spaces, tabs
// and line feeds.
package main
