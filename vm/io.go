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

	"github.com/pkg/errors"
)

type flusher interface {
	Flush() error
}

type byteWriterWrapper struct {
	io.Writer
}

func (w *byteWriterWrapper) WriteByte(c byte) error {
	_, err := w.Writer.Write([]byte{c})
	return err
}

func (w *byteWriterWrapper) Flush() error {
	if f, ok := w.Writer.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// newWriter returns either w if it implements io.ByteWriter or wraps it up
// into a byteWriterWrapper
func newWriter(w io.Writer) io.ByteWriter {
	switch ww := w.(type) {
	case nil:
		return nil
	case io.ByteWriter:
		return ww
	default:
		return &byteWriterWrapper{w}
	}
}

// byteReaderWrapper wraps a basic reader into a io.ByteReader and io.Closer
type byteReaderWrapper struct {
	io.Reader
}

func (r *byteReaderWrapper) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r.Reader, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *byteReaderWrapper) Close() error {
	if c, ok := r.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func newByteReader(r io.Reader) io.ByteReader {
	switch rr := r.(type) {
	case nil:
		return nil
	case io.ByteReader:
		return rr
	default:
		return &byteReaderWrapper{r}
	}
}

type multiByteReader struct {
	readers []io.ByteReader
}

func (mr *multiByteReader) ReadByte() (c byte, err error) {
	for len(mr.readers) > 0 {
		c, err = mr.readers[0].ReadByte()
		if err != io.EOF {
			return
		}
		// discard the reader and optionally close it
		if cl, ok := mr.readers[0].(io.Closer); ok {
			cl.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, io.EOF
}

func (mr *multiByteReader) pushReader(r io.Reader) {
	mr.readers = append([]io.ByteReader{newByteReader(r)}, mr.readers...)
}

// PushInput sets r as the current input Reader for the VM. When this reader
// reaches EOF, the previously pushed reader will be used.
func (i *Instance) PushInput(r io.Reader) {
	if r == nil {
		return
	}
	// dont use a multi reader unless necessary
	switch in := i.input.(type) {
	case nil: // no input yet, single assign
		i.input = newByteReader(r)
	case *multiByteReader:
		in.pushReader(r)
	default:
		i.input = &multiByteReader{[]io.ByteReader{newByteReader(r), i.input}}
	}
}

func (i *Instance) flush() error {
	if f, ok := i.output.(flusher); ok {
		return errors.Wrap(f.Flush(), "output flush failed")
	}
	return nil
}

func (i *Instance) put() error {
	if i.output == nil {
		return nil
	}
	return errors.Wrapf(i.output.WriteByte(i.mem.Read()), "output failed at pc %d", i.PC())
}

func (i *Instance) get() error {
	// interactive programs usually print a prompt before reading
	if err := i.flush(); err != nil {
		return err
	}
	if i.input == nil {
		return errors.Wrapf(ErrInputExhausted, "no input at pc %d", i.PC())
	}
	c, err := i.input.ReadByte()
	switch err {
	case nil:
		i.mem.Write(c)
		return nil
	case io.EOF:
		return errors.Wrapf(ErrInputExhausted, "end of input at pc %d", i.PC())
	default:
		return errors.Wrapf(err, "input failed at pc %d", i.PC())
	}
}
