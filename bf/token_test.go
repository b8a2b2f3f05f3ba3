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

package bf_test

import (
	"slices"
	"testing"

	"github.com/db47h/bflamina/bf"
)

func TestTokens(t *testing.T) {
	src := []byte("é> <\t+ - . , [ ]x")
	want := []bf.Token{
		{Instr: bf.MoveRight, Offset: 2},
		{Instr: bf.MoveLeft, Offset: 4},
		{Instr: bf.Increment, Offset: 6},
		{Instr: bf.Decrement, Offset: 8},
		{Instr: bf.Output, Offset: 10},
		{Instr: bf.Input, Offset: 12},
		{Instr: bf.LoopStart, Offset: 14},
		{Instr: bf.LoopEnd, Offset: 16},
	}
	seq := bf.Tokens(src)
	// each iteration must start over
	for pass := 0; pass < 2; pass++ {
		got := slices.Collect(seq)
		if !slices.Equal(got, want) {
			t.Fatalf("pass %d: expected %v, got %v", pass, want, got)
		}
	}
}

func TestTokens_stop(t *testing.T) {
	var n int
	for range bf.Tokens([]byte("++++")) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("expected 2 iterations, got %d", n)
	}
}

func TestScanner(t *testing.T) {
	s := bf.NewScanner([]byte("comment only"))
	if tok, ok := s.Next(); ok {
		t.Fatalf("unexpected token %v", tok)
	}
	s = bf.NewScanner([]byte("a+b"))
	for pass := 0; pass < 2; pass++ {
		tok, ok := s.Next()
		if !ok || tok != (bf.Token{Instr: bf.Increment, Offset: 1}) {
			t.Fatalf("pass %d: got %v, %v", pass, tok, ok)
		}
		if _, ok = s.Next(); ok {
			t.Fatalf("pass %d: expected end of source", pass)
		}
		s.Reset()
	}
}

func TestInstruction_String(t *testing.T) {
	for _, test := range []struct {
		in   bf.Instruction
		name string
		char byte
	}{
		{bf.MoveRight, "right", '>'},
		{bf.MoveLeft, "left", '<'},
		{bf.Increment, "inc", '+'},
		{bf.Decrement, "dec", '-'},
		{bf.Output, "output", '.'},
		{bf.Input, "input", ','},
		{bf.LoopStart, "loop", '['},
		{bf.LoopEnd, "end", ']'},
		{bf.Instruction(42), "instruction(42)", 0},
	} {
		if s := test.in.String(); s != test.name {
			t.Errorf("%d: expected name %q, got %q", test.in, test.name, s)
		}
		if c := test.in.Char(); c != test.char {
			t.Errorf("%d: expected char %q, got %q", test.in, test.char, c)
		}
	}
}
