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

import "strconv"

// Instruction is a single VM instruction. Instructions carry no argument.
type Instruction byte

// VM instructions.
const (
	OpRight Instruction = iota // move the memory cursor right
	OpLeft                     // move the memory cursor left
	OpInc                      // increment current cell
	OpDec                      // decrement current cell
	OpPut                      // write current cell to output
	OpGet                      // read one byte of input into current cell
	OpBegin                    // loop begin
	OpEnd                      // loop end
)

var opcodes = [...]byte{'>', '<', '+', '-', '.', ',', '[', ']'}

var opcodeIndex [256]int8

func init() {
	for i := range opcodeIndex {
		opcodeIndex[i] = -1
	}
	for i, c := range opcodes {
		opcodeIndex[c] = int8(i)
	}
}

// Byte returns the canonical character for op.
func (op Instruction) Byte() byte {
	if int(op) < len(opcodes) {
		return opcodes[op]
	}
	return '?'
}

func (op Instruction) String() string {
	if int(op) < len(opcodes) {
		return string(opcodes[op])
	}
	return "Instruction(" + strconv.Itoa(int(op)) + ")"
}

// Decode returns the instruction for the character r. The ok result is false
// if r does not map to any instruction.
func Decode(r rune) (op Instruction, ok bool) {
	if r < 0 || r >= rune(len(opcodeIndex)) {
		return 0, false
	}
	i := opcodeIndex[r]
	if i < 0 {
		return 0, false
	}
	return Instruction(i), true
}
