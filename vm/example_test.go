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

package vm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/bfvm/asm"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

// Shows how to parse a program and run it with custom input and output.
func ExampleInstance_Run() {
	// 8*9 = 72 = 'H', then 72+33 = 105 = 'i'
	code := "++++++++[>+++++++++<-]>." + strings.Repeat("+", 33) + "."
	prog := asm.Parse(code)

	i, err := vm.New(prog, vm.Output(os.Stdout))
	if err == nil {
		err = i.Run()
	}
	if err != nil {
		panic(err)
	}
	fmt.Println()
	fmt.Println(i.Memory().At(1))

	// Output:
	// Hi
	// 105
}

// Shows how to trace execution.
func ExampleVerbose() {
	i, err := vm.New(asm.Parse("++[-]"),
		vm.TapeSize(4),
		vm.Verbose(true),
		vm.TraceOutput(os.Stdout))
	if err != nil {
		panic(err)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}

	// Output:
	// 0: +@0 [*0* 0 0 0]
	// 1: +@0 [*1* 0 0 0]
	// 2: [@0 [*2* 0 0 0]
	// 3: -@0 [*2* 0 0 0]
	// 4: ]@0 [*1* 0 0 0]
	// 3: -@0 [*1* 0 0 0]
	// 4: ]@0 [*0* 0 0 0]
}

// Shows how to tell errors apart.
func ExampleBoundsError() {
	i, err := vm.New(asm.Parse("+++>>"), vm.TapeSize(2))
	if err != nil {
		panic(err)
	}
	err = i.Run()
	switch e := errors.Cause(err).(type) {
	case *vm.BoundsError:
		fmt.Println("bounds error at pc", e.PC)
	case *vm.BracketError:
		fmt.Println("unbalanced loop at pc", e.PC)
	default:
		if errors.Cause(err) == vm.ErrInputExhausted {
			fmt.Println("end of input")
		}
	}
	fmt.Println(err)

	// Output:
	// bounds error at pc 4
	// memory cursor out of bounds: > at pc 4 moves to cell 2, tape size is 2
}
