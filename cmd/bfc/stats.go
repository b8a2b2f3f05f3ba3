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

package main

import (
	"io"

	"github.com/db47h/bflamina/compiler"
	"github.com/jedib0t/go-pretty/v6/table"
)

func printStats(w io.Writer, s compiler.Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Statistic", "Value"})
	t.AppendRows([]table.Row{
		{"Commands", s.Commands},
		{"Loops", s.Loops},
		{"Tape cells", s.TapeLength},
		{"Step budget", s.Budget},
		{"Steps", s.Steps},
		{"Loop checks", s.LoopChecks},
		{"Loop iterations", s.LoopIterations},
		{"Output bytes", s.OutputBytes},
		{"IR ops", s.Ops},
	})
	t.Render()
}
