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

package ir_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/bflamina/bf"
	"github.com/db47h/bflamina/ir"
	"github.com/db47h/bflamina/vm"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func trace(t *testing.T, src string) vm.Trace {
	t.Helper()
	p, err := bf.Parse(t.Name(), []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	i, err := vm.New()
	if err != nil {
		t.Fatal(err)
	}
	tr, err := i.Run(p)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestEmit(t *testing.T) {
	f := &ir.Function{Name: "main"}
	if err := ir.Emit(vm.Trace{Output: []byte{2, 200}, Status: vm.Completed}, f); err != nil {
		t.Fatal(err)
	}
	want := []ir.Op{
		ir.ConstByte{Dst: "v0", Value: 2},
		ir.WriteByte{Dst: "w0", Src: "v0"},
		ir.ConstByte{Dst: "v1", Value: 200},
		ir.WriteByte{Dst: "w1", Src: "v1"},
		ir.RetVoid{},
	}
	if d := cmp.Diff(want, f.Ops); d != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", d)
	}
}

func TestEmit_empty(t *testing.T) {
	f := &ir.Function{Name: "main"}
	if err := ir.Emit(trace(t, ""), f); err != nil {
		t.Fatal(err)
	}
	if len(f.Ops) != 1 || f.Ops[0] != (ir.RetVoid{}) {
		t.Fatalf("expected a single ret.void, got %v", f.Ops)
	}
}

func TestEmit_incomplete(t *testing.T) {
	for _, s := range []vm.Status{vm.BudgetExceeded, vm.Failed} {
		f := &ir.Function{Name: "main"}
		err := ir.Emit(vm.Trace{Status: s}, f)
		if errors.Cause(err) != ir.ErrIncompleteTrace {
			t.Errorf("%v: expected %v, got %v", s, ir.ErrIncompleteTrace, err)
		}
		if len(f.Ops) != 0 {
			t.Errorf("%v: ops emitted for incomplete trace", s)
		}
	}
}

type failSink struct {
	n int
}

var errSink = errors.New("sink full")

func (s *failSink) Emit(ir.Op) error {
	if s.n == 0 {
		return errSink
	}
	s.n--
	return nil
}

func TestEmit_sinkError(t *testing.T) {
	for n := 0; n < 5; n++ {
		err := ir.Emit(vm.Trace{Output: []byte("ab"), Status: vm.Completed}, &failSink{n})
		if err != errSink {
			t.Errorf("%d: expected %v, got %v", n, errSink, err)
		}
	}
}

func TestFprint(t *testing.T) {
	m := ir.NewModule()
	if err := ir.Emit(vm.Trace{Output: []byte{'H', 0xff}, Status: vm.Completed}, m.Func("main")); err != nil {
		t.Fatal(err)
	}
	exp := `fn @main() -> void {
  entry:
    %v0 = add.i8 72, 0
    %w0 = writebyte %v0
    %v1 = add.i8 -1, 0
    %w1 = writebyte %v1
    ret.void
}
`
	if s := m.String(); s != exp {
		t.Fatalf("expected:\n%s\ngot:\n%s", exp, s)
	}
}

func TestReplay(t *testing.T) {
	for _, src := range []string{
		"",
		"++.",
		"++[>++<-]>.",
		"-.+.", // 255 and 0
		"++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.",
	} {
		tr := trace(t, src)
		m := ir.NewModule()
		if err := ir.Emit(tr, m.Func("main")); err != nil {
			t.Fatal(err)
		}
		var out bytes.Buffer
		if err := ir.Exec(m, &out); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if !bytes.Equal(out.Bytes(), tr.Output) {
			t.Fatalf("%q: expected %q, got %q", src, tr.Output, out.Bytes())
		}

		// same through the text form
		m2, err := ir.Parse("replay", strings.NewReader(m.String()))
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		out.Reset()
		if err = ir.Exec(m2, &out); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if !bytes.Equal(out.Bytes(), tr.Output) {
			t.Fatalf("%q: expected %q after parse, got %q", src, tr.Output, out.Bytes())
		}
	}
}

func TestParse(t *testing.T) {
	code := `// hand written
fn @main() -> void {
  entry:
    %a = add.i8 60, 5   // 'A'
    %r = writebyte %a
    %b = add.i8 -56, 0
    %s = writebyte %b
    ret.void
}

fn @unused() -> void {
    %a = add.i8 0, 0
    ret.void
}
`
	m, err := ir.Parse("hand", strings.NewReader(code))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Funcs) != 2 || m.Lookup("unused") == nil {
		t.Fatalf("bad module %v", m)
	}
	var out bytes.Buffer
	if err = ir.Exec(m, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "A\xc8" {
		t.Fatalf("got %q", out.String())
	}
}

func TestParse_errors(t *testing.T) {
	for _, test := range []struct {
		code string
		msg  string
	}{
		{"fn main", `errs:1:4: expected "@", found "main"`},
		{"fn @main() -> void {\n  %v = mul.i8 1, 2\n}", "errs:2:8: unknown instruction mul"},
		{"fn @main() -> void {\n  %v = add.i8 1, 256\n}", "errs:2:18: i8 value out of range: 256"},
		{"fn @main() -> void {\n  ret.void\n", `expected "}", found EOF`},
		{"fn @f() -> void {}\nfn @f() -> void {}", "errs:2:5: function @f redefined"},
		{"func", `errs:1:1: expected fn, found "func"`},
		{"fn @main() - > void {}", `errs:1:14: unexpected space after "-"`},
		{"fn @main() -> void {\n  %v = add.i8 - 5, 0\n}", `errs:2:17: unexpected space after "-"`},
		{"fn @main() -> void {\n  %v = add.i8 1, 0\n  %v = add.i8 2, 0\n}", "errs:3:4: value %v redefined"},
	} {
		_, err := ir.Parse("errs", strings.NewReader(test.code))
		if err == nil {
			t.Errorf("%q: expected error", test.code)
			continue
		}
		if _, ok := err.(*ir.ParseError); !ok {
			t.Errorf("%q: expected *ir.ParseError, got %T", test.code, err)
		}
		if !strings.HasSuffix(err.Error(), test.msg) {
			t.Errorf("%q: expected %q, got %q", test.code, test.msg, err.Error())
		}
	}
}

func TestExec_errors(t *testing.T) {
	if err := ir.Exec(ir.NewModule(), &bytes.Buffer{}); err != ir.ErrNoMain {
		t.Errorf("expected %v, got %v", ir.ErrNoMain, err)
	}
	m := ir.NewModule()
	m.Func("main").Emit(ir.WriteByte{Dst: "w", Src: "nope"})
	if err := ir.Exec(m, &bytes.Buffer{}); errors.Cause(err) != ir.ErrUndefined {
		t.Errorf("expected %v, got %v", ir.ErrUndefined, err)
	}
}
