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

// Buffer is a fixed length sequence of values with a single read/write cursor.
//
// Cursor moves are not bounds checked. Reading or writing at an out of range
// cursor position panics like any out of range slice access, so callers must
// check Pos against Len before moving.
type Buffer[T any] struct {
	v   []T
	pos int
}

// NewBuffer returns a Buffer wrapping v with its cursor set to 0. The buffer
// uses v as storage.
func NewBuffer[T any](v []T) *Buffer[T] {
	return &Buffer[T]{v: v}
}

// Right moves the cursor one position to the right.
func (b *Buffer[T]) Right() { b.pos++ }

// Left moves the cursor one position to the left.
func (b *Buffer[T]) Left() { b.pos-- }

// Read returns the value under the cursor.
func (b *Buffer[T]) Read() T { return b.v[b.pos] }

// Write replaces the value under the cursor.
func (b *Buffer[T]) Write(v T) { b.v[b.pos] = v }

// At returns the value at position i, regardless of the cursor position.
func (b *Buffer[T]) At(i int) T { return b.v[i] }

// Set sets the value at position i, regardless of the cursor position.
func (b *Buffer[T]) Set(i int, v T) { b.v[i] = v }

// Pos returns the cursor position.
func (b *Buffer[T]) Pos() int { return b.pos }

// Seek moves the cursor to position pos.
func (b *Buffer[T]) Seek(pos int) { b.pos = pos }

// Len returns the buffer length.
func (b *Buffer[T]) Len() int { return len(b.v) }

// Values returns the underlying storage. Changes to its elements are reflected
// in the buffer.
func (b *Buffer[T]) Values() []T { return b.v }
