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
	"iter"
	"text/scanner"
	"unicode/utf8"
)

// Node is a node in a program tree, either a *Command or a *Loop.
type Node interface {
	// Pos returns the byte offset of the node's instruction in the source
	// text. For loops, this is the offset of the opening bracket.
	Pos() int
	node()
}

// Command is a single non-loop instruction.
type Command struct {
	Instr  Instruction
	Offset int
}

// Loop is a loop body, executed while the current cell is not zero.
type Loop struct {
	Body   []Node
	Offset int
}

func (c *Command) Pos() int { return c.Offset }
func (l *Loop) Pos() int    { return l.Offset }
func (*Command) node()      {}
func (*Loop) node()         {}

// Program is the root node sequence of a program tree.
type Program []Node

type frame struct {
	body   []Node
	offset int
}

// Build builds a program tree from a token sequence.
//
// Loop brackets are matched with a stack: '[' opens a new body, ']' closes the
// innermost open body and appends the completed loop to its parent. A ']'
// without a matching '[' fails with ErrUnmatchedLoopEnd at the offset of the
// ']'. If any loop is still open at the end of the sequence, Build fails with
// ErrUnmatchedLoopStart at the offset of the outermost unclosed '['.
func Build(tokens iter.Seq[Token]) (Program, error) {
	stack := []frame{{offset: -1}}
	for t := range tokens {
		switch t.Instr {
		case LoopStart:
			stack = append(stack, frame{offset: t.Offset})
		case LoopEnd:
			if len(stack) == 1 {
				return nil, &SyntaxError{Err: ErrUnmatchedLoopEnd, Pos: scanner.Position{Offset: t.Offset}}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			p := &stack[len(stack)-1]
			p.body = append(p.body, &Loop{Body: top.body, Offset: top.offset})
		default:
			p := &stack[len(stack)-1]
			p.body = append(p.body, &Command{Instr: t.Instr, Offset: t.Offset})
		}
	}
	if len(stack) > 1 {
		return nil, &SyntaxError{Err: ErrUnmatchedLoopStart, Pos: scanner.Position{Offset: stack[1].offset}}
	}
	return Program(stack[0].body), nil
}

// Parse tokenizes and builds the program in src. The name parameter is used
// as the file name in error positions.
func Parse(name string, src []byte) (Program, error) {
	p, err := Build(Tokens(src))
	if err != nil {
		if e, ok := err.(*SyntaxError); ok {
			e.Pos = Position(name, src, e.Pos.Offset)
		}
		return nil, err
	}
	return p, nil
}

// Position converts a byte offset in src to a full position. Columns count
// characters, as with text/scanner.
func Position(name string, src []byte, offset int) scanner.Position {
	pos := scanner.Position{Filename: name, Offset: offset, Line: 1}
	if offset > len(src) {
		offset = len(src)
	}
	lineStart := 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			pos.Line++
			lineStart = i + 1
		}
	}
	pos.Column = utf8.RuneCount(src[lineStart:offset]) + 1
	return pos
}

// Count returns the number of commands and loops in the program tree.
func Count(p Program) (commands, loops int) {
	for _, n := range p {
		switch n := n.(type) {
		case *Command:
			commands++
		case *Loop:
			c, l := Count(n.Body)
			commands += c
			loops += l + 1
		}
	}
	return commands, loops
}
