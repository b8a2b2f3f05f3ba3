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

// Package bf implements the front end of the Brainfuck to Lamina IR compiler:
// a tokenizer that maps source text to the eight Brainfuck instructions, and a
// program builder that turns the resulting token stream into a tree of
// commands and loops.
//
// Any character outside of the instruction alphabet
//
//	>  <  +  -  .  ,  [  ]
//
// is a comment and silently skipped. Building a program checks that loop
// brackets are balanced and properly nested; once built, a Program is never
// modified and can be shared freely between goroutines.
//
// The tree is consumed by package vm, which runs it at compile time, and
// package ir, which turns the resulting output trace into IR.
package bf
