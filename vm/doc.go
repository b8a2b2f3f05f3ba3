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

// Package vm implements the Brainfuck tape machine used to run programs at
// compile time.
//
// An Instance owns a tape of 8 bit cells (30000 by default) and a pointer into
// it. Cell arithmetic wraps around in both directions, but the pointer does
// not: moving it off either end of the tape is an error. Running a program
// records every output byte in a Trace, which package ir replays as Lamina IR.
//
// Since Brainfuck is Turing complete, running a program at compile time may
// never terminate. Every command and every loop condition check consumes one
// step of a configurable step budget; running out of steps aborts the run with
// ErrStepBudgetExceeded, the only error that a caller may sensibly retry (with
// a larger budget).
//
// Input instructions read from a closed input stream known at compile time.
// Once the stream is exhausted, Input stores 0 in the current cell.
//
// An Instance must not be used concurrently, but separate instances share no
// state.
package vm
