// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package indexing

import "go.uber.org/atomic"

// buffer is a copy-on-write slice. Copies made with share point at the same
// backing array until one of them asks for mutable values, which first
// takes a private copy while the array is shared. Holders that are dropped
// without writing are not tracked, so a write may copy once more than
// strictly needed.
type buffer[T any] struct {
	values []T
	refs   *atomic.Int32
}

func newBuffer[T any](values []T) buffer[T] {
	return buffer[T]{values: values, refs: atomic.NewInt32(1)}
}

func (b buffer[T]) len() int {
	return len(b.values)
}

func (b buffer[T]) share() buffer[T] {
	if b.refs != nil {
		b.refs.Inc()
	}
	return b
}

func (b buffer[T]) shared() bool {
	return b.refs != nil && b.refs.Load() > 1
}

func (b *buffer[T]) mutable() []T {
	if b.shared() {
		cloned := make([]T, len(b.values))
		copy(cloned, b.values)
		b.refs.Dec()
		*b = newBuffer(cloned)
	}
	return b.values
}
