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

	"github.com/db47h/bflamina/internal/bfi"
	"github.com/pkg/errors"
)

// Exec errors.
var (
	ErrNoMain    = errors.New("no main function")
	ErrUndefined = errors.New("undefined value")
)

// Exec replays the main function of module m, writing its output to w.
func Exec(m *Module, w io.Writer) error {
	f := m.Lookup("main")
	if f == nil {
		return ErrNoMain
	}
	ew := bfi.NewErrWriter(w)
	vals := make(map[string]byte)
	for _, op := range f.Ops {
		switch op := op.(type) {
		case ConstByte:
			vals[op.Dst] = op.Value
		case WriteByte:
			v, ok := vals[op.Src]
			if !ok {
				return errors.Wrapf(ErrUndefined, "%%%s", op.Src)
			}
			if _, err := ew.Write([]byte{v}); err != nil {
				return err
			}
			vals[op.Dst] = 1
		case RetVoid:
			return nil
		default:
			return errors.Errorf("unsupported op %v", op)
		}
	}
	return nil
}
