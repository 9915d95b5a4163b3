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

package asm_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/db47h/bfvm/asm"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	assert.Equal(t,
		[]vm.Instruction{vm.OpInc, vm.OpDec, vm.OpRight, vm.OpLeft, vm.OpPut, vm.OpGet, vm.OpBegin, vm.OpEnd},
		asm.Parse("+-><test test.,[]"))
}

func TestParse_comments(t *testing.T) {
	assert.Empty(t, asm.Parse(""))
	assert.Empty(t, asm.Parse("no instructions here\n\t!"))
	// non ASCII runes are comments too
	assert.Equal(t, []vm.Instruction{vm.OpInc, vm.OpEnd}, asm.Parse("é+→]ÿ"))
}

func TestRoundTrip(t *testing.T) {
	var tests = []string{
		"",
		"+-><.,[]",
		"++++++++++ [[>+>+<<-] >>[<<+>>-] <<-]",
		"comments, are. dropped [once] - and + only <once>",
	}
	for _, src := range tests {
		prog := asm.Parse(src)
		var b bytes.Buffer
		require.NoError(t, asm.DisassembleAll(prog, 0, &b))
		assert.Equal(t, prog, asm.Parse(b.String()), src)

		for k, op := range prog {
			d, ok := vm.Decode(rune(op.Byte()))
			require.True(t, ok)
			assert.Equal(t, op, d, "%s: instruction %d", src, k)
		}
	}
}

func TestDisassemble(t *testing.T) {
	prog := asm.Parse("+[-]")
	var b bytes.Buffer
	next, err := asm.Disassemble(prog, 1, &b)
	require.NoError(t, err)
	assert.Equal(t, 2, next)
	assert.Equal(t, "[", b.String())
}

func TestDisassembleAll(t *testing.T) {
	prog := asm.Parse("+++++ +++++ ++")
	var b bytes.Buffer
	require.NoError(t, asm.DisassembleAll(prog, 5, &b))
	assert.Equal(t, "+++++\n+++++\n++\n", b.String())

	boom := errors.New("boom")
	err := asm.DisassembleAll(prog, 0, failWriter{boom})
	assert.Equal(t, boom, errors.Cause(err))
}

type failWriter struct{ err error }

func (w failWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestAssemble(t *testing.T) {
	prog, err := asm.Assemble("test", strings.NewReader("+ comment ."))
	require.NoError(t, err)
	assert.Equal(t, []vm.Instruction{vm.OpInc, vm.OpPut}, prog)

	_, err = asm.Assemble("test_errors", iotest.ErrReader(errors.New("boom")))
	require.Error(t, err)
	assert.Equal(t, "test_errors: read failed: boom", err.Error())
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.bf")
	require.NoError(t, os.WriteFile(fn, []byte("[-]\n+ add one\n"), 0644))
	prog, err := asm.Load(fn)
	require.NoError(t, err)
	assert.Equal(t, []vm.Instruction{vm.OpBegin, vm.OpDec, vm.OpEnd, vm.OpInc}, prog)

	_, err = asm.Load(filepath.Join(t.TempDir(), "missing.bf"))
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
