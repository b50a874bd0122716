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

// Package runner runs a function once per rank of a communicator inside a
// single process, one goroutine per rank.
package runner

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/reductionkit/reduce/src/parallel"
	xerrors "github.com/reductionkit/reduce/src/x/errors"
)

// Fn is run once per rank with that rank's communicator.
type Fn func(comm parallel.Communicator) error

var defaultSizes = []int{2, 3, 4}

// Run runs fn concurrently for every rank of a communicator of the given
// size and waits for all of them. A single failing rank's error is returned
// as is, failures on several ranks are returned together as a
// MultiError. A panic on a rank is reported as that rank's error.
func Run(size int, fn Fn) error {
	if size < 1 {
		return xerrors.NewInvalidParamsError(
			fmt.Errorf("runner: communicator size must be at least 1: size=%d", size))
	}

	var (
		g        errgroup.Group
		mu       sync.Mutex
		multiErr = xerrors.NewMultiError()
	)
	for rank := 0; rank < size; rank++ {
		comm, err := parallel.NewCommunicator(rank, size)
		if err != nil {
			return err
		}
		g.Go(func() error {
			err := runRank(comm, fn)
			if err != nil {
				mu.Lock()
				multiErr = multiErr.Add(err)
				mu.Unlock()
			}
			return err
		})
	}
	if err := g.Wait(); err == nil {
		return nil
	}
	return multiErr.FinalError()
}

// RunSerialAndParallel runs fn on a single rank and then for every given
// communicator size, stopping at the first size that fails. With no sizes
// it runs for 2, 3 and 4 ranks.
func RunSerialAndParallel(fn Fn, sizes ...int) error {
	if len(sizes) == 0 {
		sizes = defaultSizes
	}
	if err := Run(1, fn); err != nil {
		return err
	}
	for _, size := range sizes {
		if err := Run(size, fn); err != nil {
			return err
		}
	}
	return nil
}

func runRank(comm parallel.Communicator, fn Fn) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rank %d of %d panicked: %v", comm.Rank(), comm.Size(), r)
		}
	}()
	if err := fn(comm); err != nil {
		return fmt.Errorf("rank %d of %d: %w", comm.Rank(), comm.Size(), err)
	}
	return nil
}
