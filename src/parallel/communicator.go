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

package parallel

import (
	"fmt"

	xerrors "github.com/reductionkit/reduce/src/x/errors"
)

// Communicator identifies the local rank within a fixed size group of ranks.
type Communicator interface {
	// Rank returns the zero based rank of the local process.
	Rank() int

	// Size returns the number of ranks, at least 1.
	Size() int

	// Equal returns whether the other communicator denotes the same rank
	// of a group of the same size.
	Equal(other Communicator) bool
}

type communicator struct {
	rank int
	size int
}

// NewCommunicator returns a communicator for the given rank out of size ranks.
func NewCommunicator(rank, size int) (Communicator, error) {
	if size < 1 {
		return nil, xerrors.NewInvalidParamsError(
			fmt.Errorf("communicator size must be at least 1: size=%d", size))
	}
	if rank < 0 || rank >= size {
		return nil, xerrors.NewInvalidParamsError(
			fmt.Errorf("communicator rank out of range: rank=%d, size=%d", rank, size))
	}
	return communicator{rank: rank, size: size}, nil
}

// NewSerialCommunicator returns the communicator of a single process run.
func NewSerialCommunicator() Communicator {
	return communicator{rank: 0, size: 1}
}

func (c communicator) Rank() int { return c.rank }
func (c communicator) Size() int { return c.size }

func (c communicator) Equal(other Communicator) bool {
	if other == nil {
		return false
	}
	return c.rank == other.Rank() && c.size == other.Size()
}

func (c communicator) String() string {
	return fmt.Sprintf("Communicator{rank=%d, size=%d}", c.rank, c.size)
}
