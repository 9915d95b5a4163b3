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

// Package asm provides utility functions to parse and render VM programs.
//
// Supported instructions:
//
//	char	instruction	description
//	----	-----------	-----------------------------------------------------------------
//	>	vm.OpRight	move the memory cursor one cell to the right
//	<	vm.OpLeft	move the memory cursor one cell to the left
//	+	vm.OpInc	increment the current cell, 255 wraps to 0
//	-	vm.OpDec	decrement the current cell, 0 wraps to 255
//	.	vm.OpPut	write the current cell to the output
//	,	vm.OpGet	read one byte of input into the current cell
//	[	vm.OpBegin	if the current cell is 0, jump past the matching ]
//	]	vm.OpEnd	if the current cell is not 0, jump back after the matching [
//
// Any other character is a comment and is ignored by the parser. Brackets are
// not checked for balance when parsing; unbalanced loops are reported by the
// VM when executed.
package asm
