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
	"io"
	"strings"

	"github.com/db47h/bflamina/internal/bfi"
)

// Fprint writes an indented listing of the program tree to w, one instruction
// per line. Loop bodies are indented by two spaces per nesting level.
func Fprint(w io.Writer, p Program) error {
	ew := bfi.NewErrWriter(w)
	fprint(ew, p, 0)
	return ew.Err
}

func fprint(ew *bfi.ErrWriter, nodes []Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		if ew.Err != nil {
			return
		}
		switch n := n.(type) {
		case *Command:
			ew.WriteString(indent)
			ew.Write([]byte{n.Instr.Char(), ' '})
			ew.WriteString(n.Instr.String())
			ew.Write([]byte{'\n'})
		case *Loop:
			ew.WriteString(indent)
			ew.WriteString("[ loop\n")
			fprint(ew, n.Body, depth+1)
			ew.WriteString(indent)
			ew.WriteString("]\n")
		}
	}
}
