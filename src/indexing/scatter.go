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

import (
	"fmt"

	"github.com/reductionkit/reduce/src/parallel"
	xerrors "github.com/reductionkit/reduce/src/x/errors"
)

// Scatter converts a Cloned index into the Distributed index local to its
// communicator's rank: rank r keeps global index i iff i mod size == r, in
// ascending order, and the global size is preserved. Indices of a single
// rank communicator and Distributed indices are returned as copies
// unchanged. MasterOnly indices cannot be scattered.
func Scatter(info *IndexInfo) (*IndexInfo, error) {
	if info.comm.Size() == 1 {
		return info.Clone(), nil
	}
	switch info.mode {
	case parallel.StorageModeDistributed:
		return info.Clone(), nil
	case parallel.StorageModeMasterOnly:
		return nil, xerrors.NewUnsupportedError(fmt.Errorf(
			"cannot scatter IndexInfo with unsupported storage mode %s", info.mode))
	}
	return partition(info, parallel.StorageModeDistributed), nil
}

// partition returns the entries of full, which holds every global entry,
// that the local rank stores under mode.
func partition(full *IndexInfo, mode parallel.StorageMode) *IndexInfo {
	var (
		size    = full.Size()
		rank    = full.comm.Rank()
		ranks   = full.comm.Size()
		indices []int
	)
	switch mode {
	case parallel.StorageModeDistributed:
		indices = make([]int, 0, size/ranks+1)
		for i := 0; i < size; i++ {
			if RankOf(i, ranks) == rank {
				indices = append(indices, i)
			}
		}
	case parallel.StorageModeMasterOnly:
		if rank == 0 {
			indices = identity(size)
		}
	default:
		indices = identity(size)
	}

	result := full.selectIndices(indices)
	result.mode = mode
	result.globalSize = size
	return result
}

// RankOf returns the rank that stores globalIndex in a Distributed
// index spread over ranks ranks.
func RankOf(globalIndex, ranks int) int {
	return globalIndex % ranks
}

func identity(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}
