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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/db47h/bfvm/asm"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

// ttyReader reports CTRL-D as the end of input. In raw tty mode, we need to
// handle it ourselves.
type ttyReader struct {
	r io.Reader
}

func (t *ttyReader) Read(p []byte) (n int, err error) {
	n, err = t.r.Read(p)
	for k := 0; k < n; k++ {
		if p[k] == 4 {
			if k == 0 {
				return 0, io.EOF
			}
			return k, nil
		}
	}
	return n, err
}

func loadProgram(source string, args []string) ([]vm.Instruction, error) {
	switch {
	case source != "" && len(args) == 0:
		return asm.Parse(source), nil
	case source == "" && len(args) == 1:
		return asm.Load(args[0])
	default:
		return nil, errors.New("expected exactly one program file or an -e argument")
	}
}

func atExit(i *vm.Instance, debug bool, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		mem := i.Memory()
		if !i.Finished() {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), cursor: %v, cell: %v\n", i.PC(), i.Program()[i.PC()], mem.Pos(), mem.Read())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, cursor: %v, cell: %v\n", i.PC(), mem.Pos(), mem.Read())
		}
	}
	os.Exit(1)
}

func main() {
	// check exit condition
	var err error
	var i *vm.Instance

	cfg := defaultConfig()
	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		if err == nil && cfg.Dump && i != nil {
			err = i.Dump(os.Stdout)
		}
		atExit(i, cfg.Debug, err)
	}()

	var configFile = flag.String("config", "", "read default settings from TOML file `filename`")
	var source = flag.String("e", "", "run `source` instead of loading a program file")
	flag.IntVar(&cfg.Size, "size", cfg.Size, "memory tape size in cells")
	flag.BoolVar(&cfg.Trace, "trace", false, "write a trace line to stderr before each instruction")
	flag.IntVar(&cfg.Window, "window", 0, "number of tape cells shown in trace lines, 0 for all")
	flag.BoolVar(&cfg.Dump, "dump", false, "dump the program counter, memory cursor and tape upon exit")
	flag.Var(&cfg.With, "with", "Add `filename` to the input list (can be specified multiple times)")
	flag.BoolVar(&cfg.NoRaw, "noraw", false, "disable raw terminal IO")
	flag.BoolVar(&cfg.Debug, "debug", false, "enable debug diagnostics")

	flag.Parse()

	if *configFile != "" {
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if err = cfg.merge(*configFile, set); err != nil {
			return
		}
	}
	setupLogging(cfg.Debug)

	prog, err := loadProgram(*source, flag.Args())
	if err != nil {
		return
	}
	log.Debugf("loaded %d instructions", len(prog))

	var opts = []vm.Option{
		vm.TapeSize(cfg.Size),
		vm.Output(stdout),
		vm.Verbose(cfg.Trace),
		vm.TraceOutput(os.Stderr),
		vm.TraceWindow(cfg.Window),
	}

	// try to switch the terminal to raw mode.
	var tearDown func()
	if !cfg.NoRaw {
		var rerr error
		if tearDown, rerr = setRawIO(); rerr != nil {
			log.Debugf("raw IO disabled: %v", rerr)
		}
	}
	if tearDown != nil {
		defer tearDown()
		opts = append(opts, vm.Input(&ttyReader{os.Stdin}))
	} else {
		opts = append(opts, vm.Input(bufio.NewReader(os.Stdin)))
	}

	// append -with files to input stack in reverse order so that they load
	// in order of appearance on the command line.
	for n := len(cfg.With) - 1; n >= 0; n-- {
		var f *os.File
		f, err = os.Open(cfg.With[n])
		if err != nil {
			return
		}
		opts = append(opts, vm.Input(bufio.NewReader(f)))
	}

	i, err = vm.New(prog, opts...)
	if err != nil {
		return
	}
	err = i.Run()
	log.Debugf("executed %d instructions", i.InstructionCount())
}
