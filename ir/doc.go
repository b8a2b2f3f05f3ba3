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

// Package ir builds Lamina IR from compile-time execution traces.
//
// The IR generated for a program is a flat replay of its recorded output: for
// every output byte, one instruction binds the byte as a constant and a second
// one writes it. The IR has no branches, loops or memory since every data
// dependent decision was already taken when running the program at compile
// time. As a consequence, programs that need actual runtime input cannot be
// compiled faithfully: their input was fixed when the trace was recorded.
//
// The ops are otherwise opaque to the compiler. They are handed over to a
// Sink, which may be a *Function collecting them or any other consumer. Fprint
// renders a Module in Lamina text form:
//
//	fn @main() -> void {
//	  entry:
//	    %v0 = add.i8 72, 0
//	    %w0 = writebyte %v0
//	    ret.void
//	}
//
// Parse reads this form back, and Exec replays a module, which is how the
// tests check that the IR reproduces a trace.
package ir
