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

package vm

import (
	"github.com/db47h/bflamina/bf"
	"github.com/pkg/errors"
)

// Status describes how a run ended.
type Status int

// Run status values.
const (
	Completed Status = iota
	BudgetExceeded
	Failed
)

var statusNames = [...]string{"completed", "budget exceeded", "failed"}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Trace is the result of a run.
type Trace struct {
	Output []byte // Output bytes, nil unless Status is Completed
	Steps  int64
	Status Status
}

func (i *Instance) reset() {
	if len(i.Tape) != i.tapeLen {
		i.Tape = make([]byte, i.tapeLen)
	} else {
		clear(i.Tape)
	}
	i.Ptr = 0
	i.steps = 0
	i.loopChecks = 0
	i.loopIters = 0
	i.output = nil
	i.in = i.newInput()
}

// Run runs the program p from a zeroed tape with the pointer on the first
// cell, and returns the resulting trace.
//
// If an error occurs, the output recorded so far is discarded: the returned
// Trace only reports the number of steps executed and the failure status. Ptr
// and Tape are left as they were when the error occurred.
func (i *Instance) Run(p bf.Program) (t Trace, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("%v", e)
		}
		t.Steps = i.steps
		if err != nil {
			t.Status = Failed
			if IsRetryable(err) {
				t.Status = BudgetExceeded
			}
			t.Output = nil
			i.output = nil
		}
	}()
	i.reset()
	if err = i.exec(p); err != nil {
		return t, err
	}
	return Trace{Output: i.output, Status: Completed}, nil
}

func (i *Instance) fail(err error, n bf.Node) error {
	return &RuntimeError{Err: err, Offset: n.Pos(), Step: i.steps, Ptr: i.Ptr}
}

// step consumes one step of the budget.
func (i *Instance) step(n bf.Node) error {
	if i.steps >= i.budget {
		return i.fail(ErrStepBudgetExceeded, n)
	}
	i.steps++
	return nil
}

func (i *Instance) exec(nodes []bf.Node) error {
	for _, n := range nodes {
		if err := i.step(n); err != nil {
			return err
		}
		switch n := n.(type) {
		case *bf.Command:
			switch n.Instr {
			case bf.MoveRight:
				if i.Ptr+1 >= len(i.Tape) {
					return i.fail(ErrPointerOutOfBounds, n)
				}
				i.Ptr++
			case bf.MoveLeft:
				if i.Ptr == 0 {
					return i.fail(ErrPointerOutOfBounds, n)
				}
				i.Ptr--
			case bf.Increment:
				i.Tape[i.Ptr]++
			case bf.Decrement:
				i.Tape[i.Ptr]--
			case bf.Output:
				i.output = append(i.output, i.Tape[i.Ptr])
			case bf.Input:
				c, err := i.readByte()
				if err != nil {
					return i.fail(errors.Wrap(err, "input read failed"), n)
				}
				i.Tape[i.Ptr] = c
			default:
				return i.fail(errors.Errorf("invalid instruction %v", n.Instr), n)
			}
		case *bf.Loop:
			// the first condition check consumed the step above, subsequent
			// checks consume theirs at the bottom of the loop.
			for {
				i.loopChecks++
				if i.Tape[i.Ptr] == 0 {
					break
				}
				i.loopIters++
				if err := i.exec(n.Body); err != nil {
					return err
				}
				if err := i.step(n); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
