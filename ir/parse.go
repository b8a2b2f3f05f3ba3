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

package ir

import (
	"fmt"
	"io"
	"strconv"
	"text/scanner"
)

// ParseError is returned by Parse for malformed input.
type ParseError struct {
	Pos scanner.Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

type parser struct {
	s    scanner.Scanner
	tok  rune
	err  error
	vals map[string]bool // values defined in the current function
}

// Parse reads a module in the text form written by Fprint. The name parameter
// is used as the file name in error positions. Comments use the Go syntax.
//
// Each value may only be assigned once per function. Values are not checked
// for being defined before use; Exec reports those.
func Parse(name string, r io.Reader) (*Module, error) {
	p := new(parser)
	p.s.Init(r)
	p.s.Filename = name
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanComments | scanner.SkipComments
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.errorf("%s", msg)
	}
	p.next()

	m := NewModule()
	for p.err == nil && p.tok != scanner.EOF {
		p.function(m)
	}
	if p.err != nil {
		return nil, p.err
	}
	return m, nil
}

func (p *parser) next() { p.tok = p.s.Scan() }

func (p *parser) errorf(format string, args ...interface{}) {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.errorAt(pos, format, args...)
}

func (p *parser) errorAt(pos scanner.Position, format string, args ...interface{}) {
	if p.err == nil {
		p.err = &ParseError{pos, fmt.Sprintf(format, args...)}
	}
}

// found describes the current token for error messages.
func (p *parser) found() string {
	if p.tok == scanner.EOF {
		return "EOF"
	}
	return strconv.Quote(p.s.TokenText())
}

func (p *parser) expect(tok rune) {
	if p.tok != tok {
		p.errorf("expected %s, found %s", scanner.TokenString(tok), p.found())
		return
	}
	p.next()
}

func (p *parser) keyword(kw string) {
	if p.tok != scanner.Ident || p.s.TokenText() != kw {
		p.errorf("expected %s, found %s", kw, p.found())
		return
	}
	p.next()
}

func (p *parser) ident() string {
	if p.tok != scanner.Ident {
		p.errorf("expected identifier, found %s", p.found())
		return ""
	}
	s := p.s.TokenText()
	p.next()
	return s
}

// adjacent checks that the current token immediately follows the single
// character token prev found at pos, as in "->" or "-1".
func (p *parser) adjacent(prev rune, pos scanner.Position) {
	if p.err == nil && p.s.Position.Offset != pos.Offset+1 {
		p.errorf("unexpected space after %s", scanner.TokenString(prev))
	}
}

func (p *parser) isKeyword(kw string) bool {
	return p.tok == scanner.Ident && p.s.TokenText() == kw
}

// int8 reads an i8 literal. Values up to 255 are accepted and taken as their
// two's complement equivalent.
func (p *parser) int8() int {
	neg := p.tok == '-'
	if neg {
		pos := p.s.Position
		p.next()
		p.adjacent('-', pos)
		if p.err != nil {
			return 0
		}
	}
	if p.tok != scanner.Int {
		p.errorf("expected integer, found %s", p.found())
		return 0
	}
	v, err := strconv.Atoi(p.s.TokenText())
	if neg {
		v = -v
	}
	if err != nil || v < -128 || v > 255 {
		p.errorf("i8 value out of range: %s", p.s.TokenText())
		return 0
	}
	p.next()
	return v
}

func (p *parser) function(m *Module) {
	p.keyword("fn")
	p.expect('@')
	namePos := p.s.Position
	name := p.ident()
	p.expect('(')
	p.expect(')')
	arrow := p.s.Position
	p.expect('-')
	p.adjacent('-', arrow)
	p.expect('>')
	p.keyword("void")
	p.expect('{')
	if p.err != nil {
		return
	}
	if m.Lookup(name) != nil {
		p.errorAt(namePos, "function @%s redefined", name)
		return
	}
	f := m.Func(name)
	p.vals = make(map[string]bool)
	// block label
	if p.tok == scanner.Ident && !p.isKeyword("ret") {
		p.next()
		p.expect(':')
	}
	for p.err == nil && p.tok != '}' && p.tok != scanner.EOF {
		p.statement(f)
	}
	p.expect('}')
}

func (p *parser) statement(f *Function) {
	switch {
	case p.tok == '%':
		p.next()
		dstPos := p.s.Position
		dst := p.ident()
		p.expect('=')
		if p.err != nil {
			return
		}
		if p.vals[dst] {
			p.errorAt(dstPos, "value %%%s redefined", dst)
			return
		}
		p.vals[dst] = true
		opPos := p.s.Position
		switch op := p.ident(); op {
		case "add":
			p.expect('.')
			p.keyword("i8")
			a := p.int8()
			p.expect(',')
			b := p.int8()
			if p.err == nil {
				f.Emit(ConstByte{Dst: dst, Value: byte(a + b)})
			}
		case "writebyte":
			p.expect('%')
			src := p.ident()
			if p.err == nil {
				f.Emit(WriteByte{Dst: dst, Src: src})
			}
		default:
			p.errorAt(opPos, "unknown instruction %s", op)
		}
	case p.isKeyword("ret"):
		p.next()
		p.expect('.')
		p.keyword("void")
		if p.err == nil {
			f.Emit(RetVoid{})
		}
	default:
		p.errorf("unexpected %s", p.found())
	}
}
