// This file is part of bflamina - https://github.com/db47h/bflamina
//
// Copyright 2026 Denis Bernard <db047h@gmail.com>
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

// The bfc command line tool compiles Brainfuck programs to Lamina IR.
//
// The program is run at compile time and the generated IR replays its output,
// so bfc needs to know the program's input beforehand. Input comes from the
// -input and -input-file flags or the configuration file. If none is set and
// stdin is not a terminal, stdin is used instead.
//
// Usage:
//
//	bfc [flags] file.b
//	bfc -replay file.lamina
//
// Flags:
//
//	-ast
//		  print the program tree
//	-budget int
//		  maximum number of steps when running the program (default 100000000)
//	-build
//		  build a binary with the lamina tool
//	-config filename
//		  load settings from CUE file filename
//	-input string
//		  compile-time input
//	-input-file filename
//		  read compile-time input from filename
//	-lamina command
//		  lamina command used by -build (default "lamina")
//	-log filename
//		  also write JSON logs to filename
//	-o filename
//		  IR output filename (default: source file name with a .lamina extension)
//	-preset name
//		  tape size preset: small, default or large
//	-replay filename
//		  execute the Lamina IR in filename and write its output to stdout
//	-stats
//		  print translation statistics
//	-tape int
//		  number of tape cells (default 30000)
//	-v
//		  enable debug diagnostics
//
// -config: settings are read from a CUE file, with fields tape_length,
// step_budget, input, input_file and preset. Command line flags take
// precedence over the file.
//
// -budget: programs that do not terminate within the step budget fail to
// compile. Use a larger budget for long running programs.
//
// -build: after writing the IR file, bfc runs "lamina file.lamina -o file" to
// build an executable. The lamina tool must be installed separately.
//
// -v: lowers the log level to debug and prints full error details, including
// stack traces.
package main
