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

package asm

import (
	"bufio"
	"io"
	"os"

	"github.com/db47h/bfvm/internal/bfi"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

// Parse returns the instructions found in src, in order. All other characters
// are discarded. The result may be empty.
func Parse(src string) []vm.Instruction {
	prog := make([]vm.Instruction, 0, len(src))
	for _, r := range src {
		if op, ok := vm.Decode(r); ok {
			prog = append(prog, op)
		}
	}
	return prog
}

// Assemble parses source read from the supplied io.Reader.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
func Assemble(name string, r io.Reader) ([]vm.Instruction, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: read failed", name)
	}
	return Parse(string(src)), nil
}

// Load parses the source file fileName.
func Load(fileName string) ([]vm.Instruction, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	return Assemble(fileName, bufio.NewReader(f))
}

// Disassemble writes the instruction at position pc in the given slice to the
// specified io.Writer and returns the position of the next instruction and any
// write error.
func Disassemble(prog []vm.Instruction, pc int, w io.Writer) (next int, err error) {
	ew := bfi.NewErrWriter(w)
	ew.WriteByte(prog[pc].Byte())
	return pc + 1, ew.Err
}

// DisassembleAll writes all instructions in the given slice to the specified
// io.Writer, starting a new line every width instructions. If width is 0, the
// program is written on a single line. A trailing newline is always written.
// It will return any write error.
func DisassembleAll(prog []vm.Instruction, width int, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	for pc := 0; pc < len(prog); {
		if width > 0 && pc > 0 && pc%width == 0 {
			ew.WriteByte('\n')
		}
		pc, _ = Disassemble(prog, pc, ew)
		if ew.Err != nil {
			return ew.Err
		}
	}
	ew.WriteByte('\n')
	return ew.Err
}
