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

package bf

import (
	"fmt"
	"iter"
)

// Instruction is a Brainfuck instruction.
type Instruction uint8

// Brainfuck instructions.
const (
	MoveRight Instruction = iota // >
	MoveLeft                     // <
	Increment                    // +
	Decrement                    // -
	Output                       // .
	Input                        // ,
	LoopStart                    // [
	LoopEnd                      // ]
)

var instructions = [...]struct {
	name string
	char byte
}{
	{"right", '>'},
	{"left", '<'},
	{"inc", '+'},
	{"dec", '-'},
	{"output", '.'},
	{"input", ','},
	{"loop", '['},
	{"end", ']'},
}

// lookup maps source bytes to instructions. Entries for non-instruction bytes
// are set to noInstruction.
var lookup [256]Instruction

const noInstruction Instruction = 0xff

func init() {
	for i := range lookup {
		lookup[i] = noInstruction
	}
	for i, in := range instructions {
		lookup[in.char] = Instruction(i)
	}
}

func (in Instruction) String() string {
	if int(in) < len(instructions) {
		return instructions[in].name
	}
	return fmt.Sprintf("instruction(%d)", int(in))
}

// Char returns the source character for the instruction.
func (in Instruction) Char() byte {
	if int(in) < len(instructions) {
		return instructions[in].char
	}
	return 0
}

// Token is an instruction found in source text, along with its byte offset.
type Token struct {
	Instr  Instruction
	Offset int
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%c", t.Offset, t.Instr.Char())
}

// Scanner is a cursor over Brainfuck source text. The zero value is not
// usable, use NewScanner.
type Scanner struct {
	src []byte
	pos int
}

// NewScanner returns a new Scanner reading from src. The Scanner does not copy
// src, so it should not be modified until scanning is complete.
func NewScanner(src []byte) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next instruction token. The boolean result is false once
// the end of the source text has been reached.
func (s *Scanner) Next() (Token, bool) {
	for s.pos < len(s.src) {
		off := s.pos
		s.pos++
		// multi-byte UTF-8 sequences never contain ASCII bytes, so scanning
		// bytes is exact.
		if in := lookup[s.src[off]]; in != noInstruction {
			return Token{in, off}, true
		}
	}
	return Token{}, false
}

// Reset rewinds the scanner to the start of the source text.
func (s *Scanner) Reset() { s.pos = 0 }

// Tokens returns the sequence of instruction tokens in src. Each iteration
// over the returned sequence starts over from the beginning of src.
func Tokens(src []byte) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		s := NewScanner(src)
		for t, ok := s.Next(); ok; t, ok = s.Next() {
			if !yield(t) {
				return
			}
		}
	}
}
