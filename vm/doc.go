// This file is part of bfvm - https://github.com/db47h/bfvm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

// Package vm implements a tape based virtual machine for the eight instruction
// language made of the characters > < + - . , [ and ].
//
// The VM owns two cursor addressed buffers: the program, which is never
// modified once the Instance is created, and the memory tape, a fixed length
// array of byte cells initialized to zero. Cells wrap modulo 256 on increment
// and decrement.
//
// Loops are resolved at run time by scanning the program forward or backward
// from the bracket being executed while tracking the nesting depth. There is
// no jump table: the cost of crossing a loop boundary is linear in the size of
// the loop body. The observable behavior is the same as with a precomputed
// table for any balanced program.
//
// Execution stops once the program counter runs past the last instruction, or
// on the first error. Errors are typed: a *BoundsError is returned when the
// memory cursor would leave the tape, a *BracketError for unbalanced loops and
// ErrInputExhausted (possibly wrapped, use errors.Cause from
// github.com/pkg/errors) when an input instruction hits the end of input.
package vm
