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
	"strconv"

	"github.com/db47h/bflamina/vm"
	"github.com/pkg/errors"
)

// ErrIncompleteTrace is returned by Emit for traces of failed runs.
var ErrIncompleteTrace = errors.New("incomplete trace")

// Op is an IR instruction.
type Op interface {
	String() string
	op()
}

// ConstByte binds the constant Value to Dst.
type ConstByte struct {
	Dst   string
	Value byte
}

// WriteByte writes the byte bound to Src to standard output. Dst receives the
// result of the write.
type WriteByte struct {
	Dst string
	Src string
}

// RetVoid returns from a void function.
type RetVoid struct{}

func (ConstByte) op() {}
func (WriteByte) op() {}
func (RetVoid) op()   {}

// Lamina has no unsigned types, bytes are written as i8 values.
func (o ConstByte) String() string {
	return "%" + o.Dst + " = add.i8 " + strconv.Itoa(int(int8(o.Value))) + ", 0"
}

func (o WriteByte) String() string {
	return "%" + o.Dst + " = writebyte %" + o.Src
}

func (RetVoid) String() string { return "ret.void" }

// Sink consumes IR ops in order.
type Sink interface {
	Emit(op Op) error
}

// Function is a void function without parameters. It implements Sink by
// appending ops to its body.
type Function struct {
	Name string
	Ops  []Op
}

// Emit appends op to the function body.
func (f *Function) Emit(op Op) error {
	f.Ops = append(f.Ops, op)
	return nil
}

// Module is a list of functions.
type Module struct {
	Funcs []*Function
}

// NewModule returns a new empty module.
func NewModule() *Module {
	return &Module{}
}

// Func returns the function with the given name, creating it if needed.
func (m *Module) Func(name string) *Function {
	if f := m.Lookup(name); f != nil {
		return f
	}
	f := &Function{Name: name}
	m.Funcs = append(m.Funcs, f)
	return f
}

// Lookup returns the function with the given name or nil if there is none.
func (m *Module) Lookup(name string) *Function {
	for _, f := range m.Funcs {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Emit emits the IR replaying the output of trace t to s. For every output
// byte, it emits a ConstByte followed by a WriteByte, and terminates the
// sequence with a RetVoid. Values are named v0, v1, ... and the results of
// writes w0, w1, ...
//
// Only traces of successful runs can be emitted.
func Emit(t vm.Trace, s Sink) error {
	if t.Status != vm.Completed {
		return errors.Wrapf(ErrIncompleteTrace, "run %s", t.Status)
	}
	for k, b := range t.Output {
		n := strconv.Itoa(k)
		if err := s.Emit(ConstByte{Dst: "v" + n, Value: b}); err != nil {
			return err
		}
		if err := s.Emit(WriteByte{Dst: "w" + n, Src: "v" + n}); err != nil {
			return err
		}
	}
	return s.Emit(RetVoid{})
}
