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

package vm

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInputExhausted is the root cause of the error returned when an input
// instruction is executed and no more input is available.
var ErrInputExhausted = errors.New("input exhausted")

// BoundsError is returned when a cursor move would take the memory cursor
// outside of the tape.
type BoundsError struct {
	PC     int         // position of the offending instruction
	Op     Instruction // OpLeft or OpRight
	Cursor int         // cursor position the move would have produced
	Size   int         // tape size
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("memory cursor out of bounds: %v at pc %d moves to cell %d, tape size is %d",
		e.Op, e.PC, e.Cursor, e.Size)
}

// BracketError is returned when no matching bracket can be found for the loop
// instruction at PC.
type BracketError struct {
	PC int
	Op Instruction
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("unbalanced %v at pc %d", e.Op, e.PC)
}
