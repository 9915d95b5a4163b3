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
	"strconv"

	"github.com/db47h/bfvm/internal/bfi"
)

// Trace writes a single line describing the current state of the VM to w:
// the program counter and instruction, the memory cursor, then the memory
// tape (or the first cells of it, see TraceWindow) with the current cell
// surrounded by asterisks:
//
//	12: [@1 [0 *3* 0 ...]
//
// Trace does not change the state of the VM.
func (i *Instance) Trace(w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	b := strconv.AppendInt(nil, int64(i.PC()), 10)
	b = append(b, ':', ' ')
	if i.Finished() {
		b = append(b, '-')
	} else {
		b = append(b, i.prog.Read().Byte())
	}
	b = append(b, '@')
	b = strconv.AppendInt(b, int64(i.mem.Pos()), 10)
	b = append(b, ' ', '[')
	n := i.mem.Len()
	if i.window > 0 && i.window < n {
		n = i.window
	}
	for k := 0; k < n; k++ {
		if k > 0 {
			b = append(b, ' ')
		}
		if k == i.mem.Pos() {
			b = append(b, '*')
			b = strconv.AppendInt(b, int64(i.mem.At(k)), 10)
			b = append(b, '*')
		} else {
			b = strconv.AppendInt(b, int64(i.mem.At(k)), 10)
		}
	}
	if n < i.mem.Len() {
		b = append(b, " ..."...)
	}
	b = append(b, ']', '\n')
	ew.Write(b)
	return ew.Err
}
