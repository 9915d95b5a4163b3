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
	"io"
	"os"
	"strconv"

	"github.com/db47h/bfvm/internal/bfi"
	"github.com/pkg/errors"
)

// DefaultTapeSize is the number of memory cells allocated when no TapeSize
// option is given.
const DefaultTapeSize = 30000

// Instance represents a VM instance.
type Instance struct {
	prog     *Buffer[Instruction]
	mem      *Buffer[byte]
	tapeSize int
	insCount int64
	verbose  bool
	trace    io.Writer
	window   int
	input    io.ByteReader
	output   io.ByteWriter
}

// Option interface
type Option func(*Instance) error

// TapeSize sets the number of memory cells. The default is DefaultTapeSize.
func TapeSize(size int) Option {
	return func(i *Instance) error {
		if size <= 0 {
			return errors.Errorf("invalid tape size %d", size)
		}
		i.tapeSize = size
		return nil
	}
}

// Input pushes the given Reader on top of the input stack.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output sets the output sink. Without it, output instructions are no-ops.
//
// If w has a Flush method, it is called before each input instruction and
// when Run returns.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = newWriter(w)
		return nil
	}
}

// Verbose enables or disables tracing. When enabled, Run writes a trace line
// to the trace output before each step.
func Verbose(verbose bool) Option {
	return func(i *Instance) error { i.verbose = verbose; return nil }
}

// TraceOutput sets the io.Writer trace lines are written to. The default is
// os.Stderr.
func TraceOutput(w io.Writer) Option {
	return func(i *Instance) error {
		if w == nil {
			return errors.New("nil trace output")
		}
		i.trace = w
		return nil
	}
}

// TraceWindow limits the number of memory cells shown in trace lines to the
// first n cells of the tape. If n is 0, the whole tape is shown.
func TraceWindow(n int) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("invalid trace window %d", n)
		}
		i.window = n
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance for the given program. The program is copied
// and the memory tape is allocated and zeroed.
//
// Options will be set by calling SetOptions.
func New(prog []Instruction, opts ...Option) (*Instance, error) {
	p := make([]Instruction, len(prog))
	copy(p, prog)
	i := &Instance{
		prog:     NewBuffer(p),
		tapeSize: DefaultTapeSize,
		trace:    os.Stderr,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	i.mem = NewBuffer(make([]byte, i.tapeSize))
	return i, nil
}

// PC returns the program counter.
func (i *Instance) PC() int { return i.prog.Pos() }

// Program returns the program being executed. It must not be modified.
func (i *Instance) Program() []Instruction { return i.prog.Values() }

// Memory returns the memory tape. Its cursor is the VM memory cursor.
func (i *Instance) Memory() *Buffer[byte] { return i.mem }

// Finished returns true if the program counter is past the last instruction.
func (i *Instance) Finished() bool { return i.prog.Pos() >= i.prog.Len() }

// InstructionCount returns the number of instructions executed by the last
// call to Run.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Dump writes the program counter, memory cursor and tape contents to w. The
// tape is dumped up to the last non-zero cell or the memory cursor, whichever
// comes last.
func (i *Instance) Dump(w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	ew.WriteString("pc: " + strconv.Itoa(i.PC()) + " cursor: " + strconv.Itoa(i.mem.Pos()) + "\n")
	end := i.mem.Pos()
	for k := i.mem.Len() - 1; k > end; k-- {
		if i.mem.At(k) != 0 {
			end = k
			break
		}
	}
	var b []byte
	for k := 0; k <= end; k++ {
		if k > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(i.mem.At(k)), 10)
	}
	ew.Write(append(b, '\n'))
	return ew.Err
}
