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
	"io"
	"strings"

	"github.com/db47h/bflamina/internal/bfi"
)

// Fprint writes m to w in Lamina text form.
func Fprint(w io.Writer, m *Module) error {
	ew := bfi.NewErrWriter(w)
	for k, f := range m.Funcs {
		if k > 0 {
			ew.Write([]byte{'\n'})
		}
		ew.WriteString("fn @")
		ew.WriteString(f.Name)
		ew.WriteString("() -> void {\n  entry:\n")
		for _, op := range f.Ops {
			ew.WriteString("    ")
			ew.WriteString(op.String())
			ew.Write([]byte{'\n'})
		}
		ew.WriteString("}\n")
		if ew.Err != nil {
			break
		}
	}
	return ew.Err
}

func (m *Module) String() string {
	var sb strings.Builder
	Fprint(&sb, m)
	return sb.String()
}
