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

	xerrors "github.com/reductionkit/reduce/src/x/errors"
)

// Extract returns a new index whose entry k is the entry indices[k] of
// source. Indices may reorder the source, select a subset of it or repeat
// entries, the output follows their order exactly.
func Extract(source *IndexInfo, indices []int) (*IndexInfo, error) {
	for _, idx := range indices {
		if err := source.checkIndex(idx); err != nil {
			return nil, err
		}
	}
	return source.selectIndices(indices), nil
}

// ExtractRange returns a new index holding the source entries minIndex to
// maxIndex inclusive, in ascending order.
func ExtractRange(source *IndexInfo, minIndex, maxIndex int) (*IndexInfo, error) {
	if minIndex > maxIndex {
		return nil, xerrors.NewInvalidParamsError(fmt.Errorf(
			"invalid index range: min=%d, max=%d", minIndex, maxIndex))
	}
	if err := source.checkIndex(minIndex); err != nil {
		return nil, err
	}
	if err := source.checkIndex(maxIndex); err != nil {
		return nil, err
	}
	indices := make([]int, 0, maxIndex-minIndex+1)
	for i := minIndex; i <= maxIndex; i++ {
		indices = append(indices, i)
	}
	return Extract(source, indices)
}

// selectIndices copies the given entries, which must be in range, into a
// new index with the same storage mode and communicator.
func (info *IndexInfo) selectIndices(indices []int) *IndexInfo {
	var (
		n       = len(indices)
		numbers = make([]SpectrumNumber, n)
		hasIDs  = info.hasDetectorIDs()
		ids     [][]DetectorID
	)
	if hasIDs {
		ids = make([][]DetectorID, n)
	}
	for k, idx := range indices {
		numbers[k] = info.numberAt(idx)
		if hasIDs {
			ids[k] = info.detectorIDsAt(idx)
		}
	}

	result := &IndexInfo{
		numbers:    newBuffer(numbers),
		globalSize: n,
		mode:       info.mode,
		comm:       info.comm,
	}
	if hasIDs {
		result.detectorIDs = newBuffer(ids)
	}
	if info.definitions != nil {
		source := info.definitions.values
		definitions := make([]SpectrumDefinition, n)
		for k, idx := range indices {
			definitions[k] = source[idx]
		}
		b := newBuffer(definitions)
		result.definitions = &b
	}
	return result
}
