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

import "github.com/pkg/errors"

// Step executes the instruction at the program counter. It does nothing if the
// program is finished.
//
// If an error occurs, the program counter and memory are left untouched and
// the PC points to the instruction that triggered the error.
func (i *Instance) Step() (err error) {
	if i.Finished() {
		return nil
	}
	op := i.prog.Read()
	switch op {
	case OpRight:
		if i.mem.Pos() >= i.mem.Len()-1 {
			return i.boundsError(op, i.mem.Pos()+1)
		}
		i.mem.Right()
		i.prog.Right()
	case OpLeft:
		if i.mem.Pos() <= 0 {
			return i.boundsError(op, i.mem.Pos()-1)
		}
		i.mem.Left()
		i.prog.Right()
	case OpInc:
		i.mem.Write(i.mem.Read() + 1)
		i.prog.Right()
	case OpDec:
		i.mem.Write(i.mem.Read() - 1)
		i.prog.Right()
	case OpPut:
		if err = i.put(); err != nil {
			return err
		}
		i.prog.Right()
	case OpGet:
		if err = i.get(); err != nil {
			return err
		}
		i.prog.Right()
	case OpBegin:
		if err = i.begin(); err != nil {
			return err
		}
	case OpEnd:
		if err = i.end(); err != nil {
			return err
		}
	default:
		return errors.Errorf("invalid instruction %v at pc %d", op, i.PC())
	}
	i.insCount++
	return nil
}

func (i *Instance) boundsError(op Instruction, cursor int) error {
	return &BoundsError{PC: i.PC(), Op: op, Cursor: cursor, Size: i.mem.Len()}
}

// begin enters the loop if the current cell is not zero, or skips past the
// matching OpEnd.
func (i *Instance) begin() error {
	start := i.prog.Pos()
	pc := start + 1
	if i.mem.Read() != 0 {
		i.prog.Seek(pc)
		return nil
	}
	depth := 0
	for pc < i.prog.Len() {
		op := i.prog.At(pc)
		pc++
		switch op {
		case OpBegin:
			depth++
		case OpEnd:
			depth--
		}
		if depth < 0 {
			i.prog.Seek(pc)
			return nil
		}
	}
	return &BracketError{PC: start, Op: OpBegin}
}

// end exits the loop if the current cell is zero, or jumps back to the first
// instruction after the matching OpBegin.
func (i *Instance) end() error {
	start := i.prog.Pos()
	if i.mem.Read() == 0 {
		i.prog.Seek(start + 1)
		return nil
	}
	depth := 0
	for pc := start - 1; pc >= 0; pc-- {
		switch i.prog.At(pc) {
		case OpEnd:
			depth++
		case OpBegin:
			depth--
		}
		if depth < 0 {
			i.prog.Seek(pc + 1)
			return nil
		}
	}
	return &BracketError{PC: start, Op: OpEnd}
}

// Run executes the program until the program counter reaches the end of the
// program or an error occurs. If an error occurs, the PC will point to the
// instruction that triggered the error.
//
// If tracing is enabled with the Verbose option, a trace line is written to
// the trace output before each step.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("%v", e)
		}
		if ferr := i.flush(); err == nil {
			err = ferr
		}
	}()
	i.insCount = 0
	for !i.Finished() {
		if i.verbose {
			if err = i.Trace(i.trace); err != nil {
				return errors.Wrap(err, "trace failed")
			}
		}
		if err = i.Step(); err != nil {
			return err
		}
	}
	return nil
}
