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

// The bf command line tool runs programs for the bfvm virtual machine.
//
// Usage:
//
//	bf [flags] program.bf
//	bf [flags] -e 'source'
//
//	-config filename
//		  read default settings from TOML file filename
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump the program counter, memory cursor and tape upon exit
//	-e source
//		  run source instead of loading a program file
//	-noraw
//		  disable raw terminal IO
//	-size int
//		  memory tape size in cells (default 30000)
//	-trace
//		  write a trace line to stderr before each instruction
//	-window int
//		  number of tape cells shown in trace lines, 0 for all
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//
// -debug: log diagnostics to stderr and print a full stacktrace should the VM
// fail.
//
// -noraw: upon startup, bf switches the terminal to non canonical mode unless
// stdin has been redirected, so that input instructions see each key as soon
// as it is typed. This flag disables this behavior. In raw mode, CTRL-D ends
// the input.
//
// -with: the specified file is fed to the VM as input before stdin. If
// specified multiple times, files will be fed to the VM in order of appearance
// on the command line.
//
// -config: the configuration file may set any of the following keys. Flags
// given on the command line take precedence.
//
//	size = 30000
//	trace = false
//	window = 20
//	noraw = false
//	debug = false
//	dump = false
//	with = ["input.txt"]
package main
