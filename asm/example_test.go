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
	"os"

	"github.com/db47h/bfvm/asm"
)

// Parse drops comments, DisassembleAll writes back the canonical form.
func ExampleDisassembleAll() {
	prog := asm.Parse(`
		++++ set cell 0 to 4
		[>++<-] double it into cell 1
	`)
	if err := asm.DisassembleAll(prog, 8, os.Stdout); err != nil {
		panic(err)
	}

	// Output:
	// ++++[>++
	// <-]
}
