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
	"github.com/BurntSushi/toml"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

type config struct {
	Size   int      `toml:"size"`
	Trace  bool     `toml:"trace"`
	Window int      `toml:"window"`
	NoRaw  bool     `toml:"noraw"`
	Debug  bool     `toml:"debug"`
	Dump   bool     `toml:"dump"`
	With   fileList `toml:"with"`
}

func defaultConfig() config {
	return config{Size: vm.DefaultTapeSize}
}

// merge sets the fields of c that have not been set on the command line from
// the keys defined in TOML file fileName. set holds the names of the flags
// that were given on the command line.
func (c *config) merge(fileName string, set map[string]bool) error {
	var fc config
	md, err := toml.DecodeFile(fileName, &fc)
	if err != nil {
		return errors.Wrap(err, "config")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return errors.Errorf("config %s: unknown key %q", fileName, keys[0].String())
	}
	use := func(key string) bool { return md.IsDefined(key) && !set[key] }
	if use("size") {
		c.Size = fc.Size
	}
	if use("trace") {
		c.Trace = fc.Trace
	}
	if use("window") {
		c.Window = fc.Window
	}
	if use("noraw") {
		c.NoRaw = fc.NoRaw
	}
	if use("debug") {
		c.Debug = fc.Debug
	}
	if use("dump") {
		c.Dump = fc.Dump
	}
	if use("with") {
		c.With = fc.With
	}
	return nil
}
