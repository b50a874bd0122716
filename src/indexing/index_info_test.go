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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/reductionkit/reduce/src/parallel"
	xerrors "github.com/reductionkit/reduce/src/x/errors"
)

func def(detectorIndices ...int) SpectrumDefinition {
	contributions := make([]Contribution, 0, len(detectorIndices))
	for _, idx := range detectorIndices {
		contributions = append(contributions, Contribution{DetectorIndex: idx})
	}
	return NewSpectrumDefinition(contributions...)
}

func newTestIndexInfo(t *testing.T) *IndexInfo {
	info, err := NewIndexInfo([]SpectrumNumber{1, 2, 3}, parallel.StorageModeCloned, nil)
	require.NoError(t, err)
	require.NoError(t, info.SetSpectrumDefinitions([]SpectrumDefinition{def(10), def(20), def(30)}))
	return info
}

func requireDefinitions(t *testing.T, expected []SpectrumDefinition, info *IndexInfo) {
	if diff := cmp.Diff(expected, info.SpectrumDefinitions()); diff != "" {
		require.FailNow(t, "spectrum definitions mismatch", diff)
	}
}

type hostSpectra struct {
	numbers []SpectrumNumber
	ids     [][]DetectorID
}

func (h *hostSpectra) view() IndexView {
	return ViewFuncs{
		SizeFn:           func() int { return len(h.numbers) },
		SpectrumNumberFn: func(i int) SpectrumNumber { return h.numbers[i] },
		DetectorIDsFn:    func(i int) []DetectorID { return h.ids[i] },
	}
}

func TestIndexInfoAccessors(t *testing.T) {
	info, err := NewIndexInfo([]SpectrumNumber{5, 7, 9}, parallel.StorageModeCloned, nil)
	require.NoError(t, err)

	require.Equal(t, 3, info.Size())
	require.Equal(t, 3, info.GlobalSize())
	require.Equal(t, parallel.StorageModeCloned, info.StorageMode())
	require.True(t, info.Communicator().Equal(parallel.NewSerialCommunicator()))
	require.Equal(t, []SpectrumNumber{5, 7, 9}, info.SpectrumNumbers())

	number, err := info.SpectrumNumber(1)
	require.NoError(t, err)
	require.Equal(t, SpectrumNumber(7), number)

	_, err = info.SpectrumNumber(3)
	require.True(t, xerrors.IsOutOfRange(err))
	_, err = info.SpectrumNumber(-1)
	require.True(t, xerrors.IsOutOfRange(err))

	ids, err := info.DetectorIDs(0)
	require.NoError(t, err)
	require.Empty(t, ids)
	_, err = info.DetectorIDs(3)
	require.True(t, xerrors.IsOutOfRange(err))

	require.False(t, info.HasSpectrumDefinitions())
	require.Nil(t, info.SpectrumDefinitions())
}

func TestNewIndexInfoRejectsDuplicates(t *testing.T) {
	_, err := NewIndexInfo([]SpectrumNumber{1, 2, 1}, parallel.StorageModeCloned, nil)
	require.True(t, xerrors.IsInvalidParams(err))

	_, err = NewIndexInfoWithSize(-1, parallel.StorageModeCloned, nil)
	require.True(t, xerrors.IsInvalidParams(err))

	_, err = NewIndexInfoFromView(nil, parallel.StorageModeCloned, nil)
	require.True(t, xerrors.IsInvalidParams(err))
}

func TestNewIndexInfoWithSizePartitions(t *testing.T) {
	comm, err := parallel.NewCommunicator(1, 3)
	require.NoError(t, err)

	cloned, err := NewIndexInfoWithSize(7, parallel.StorageModeCloned, comm)
	require.NoError(t, err)
	require.Equal(t, []SpectrumNumber{1, 2, 3, 4, 5, 6, 7}, cloned.SpectrumNumbers())

	distributed, err := NewIndexInfoWithSize(7, parallel.StorageModeDistributed, comm)
	require.NoError(t, err)
	require.Equal(t, []SpectrumNumber{2, 5}, distributed.SpectrumNumbers())
	require.Equal(t, 7, distributed.GlobalSize())
	require.Equal(t, parallel.StorageModeDistributed, distributed.StorageMode())

	masterOnly, err := NewIndexInfoWithSize(7, parallel.StorageModeMasterOnly, comm)
	require.NoError(t, err)
	require.Equal(t, 0, masterOnly.Size())
	require.Equal(t, 7, masterOnly.GlobalSize())

	root, err := parallel.NewCommunicator(0, 3)
	require.NoError(t, err)
	masterOnly, err = NewIndexInfoWithSize(7, parallel.StorageModeMasterOnly, root)
	require.NoError(t, err)
	require.Equal(t, 7, masterOnly.Size())
}

func TestSetters(t *testing.T) {
	info := newTestIndexInfo(t)

	require.True(t, xerrors.IsInvalidParams(info.SetSpectrumNumbers([]SpectrumNumber{1})))
	require.True(t, xerrors.IsInvalidParams(info.SetSpectrumNumbers([]SpectrumNumber{4, 4, 5})))

	numbers := []SpectrumNumber{4, 5, 6}
	require.NoError(t, info.SetSpectrumNumbers(numbers))
	numbers[0] = 100
	require.Equal(t, []SpectrumNumber{4, 5, 6}, info.SpectrumNumbers())

	require.True(t, xerrors.IsInvalidParams(info.SetDetectorIDs([][]DetectorID{{1}})))
	require.NoError(t, info.SetDetectorIDs([][]DetectorID{{3, 1, 3}, nil, {7}}))
	ids, err := info.DetectorIDs(0)
	require.NoError(t, err)
	require.Equal(t, []DetectorID{1, 3}, ids)

	require.True(t, xerrors.IsInvalidParams(info.SetSpectrumDefinitions([]SpectrumDefinition{def(1)})))
	require.NoError(t, info.SetSpectrumDefinitions(nil))
	require.False(t, info.HasSpectrumDefinitions())
	require.True(t, xerrors.IsInvalidParams(info.SetSpectrumDefinition(0, def(1))))
}

func TestCloneIsCopyOnWrite(t *testing.T) {
	info := newTestIndexInfo(t)
	clone := info.Clone()
	require.True(t, clone.Equal(info))
	require.True(t, info.definitions.shared())
	require.True(t, &info.definitions.values[0] == &clone.definitions.values[0])

	require.NoError(t, clone.SetSpectrumDefinition(1, def(21, 22)))
	requireDefinitions(t, []SpectrumDefinition{def(10), def(20), def(30)}, info)
	requireDefinitions(t, []SpectrumDefinition{def(10), def(21, 22), def(30)}, clone)
	require.False(t, clone.definitions.shared())
	require.False(t, clone.Equal(info))

	// The original is now the only holder of its buffer and writes in place.
	require.False(t, info.definitions.shared())
	before := &info.definitions.values[0]
	require.NoError(t, info.SetSpectrumDefinition(0, def(11)))
	require.True(t, before == &info.definitions.values[0])
	requireDefinitions(t, []SpectrumDefinition{def(11), def(20), def(30)}, info)
	requireDefinitions(t, []SpectrumDefinition{def(10), def(21, 22), def(30)}, clone)

	require.True(t, xerrors.IsOutOfRange(info.SetSpectrumDefinition(3, def(1))))
}

func TestViewBackedIndexInfo(t *testing.T) {
	host := &hostSpectra{
		numbers: []SpectrumNumber{3, 1, 2},
		ids:     [][]DetectorID{{30, 31}, {10}, {}},
	}
	viewed, err := NewIndexInfoFromView(host.view(), parallel.StorageModeCloned, nil)
	require.NoError(t, err)

	owned, err := NewIndexInfo([]SpectrumNumber{3, 1, 2}, parallel.StorageModeCloned, nil)
	require.NoError(t, err)
	require.NoError(t, owned.SetDetectorIDs([][]DetectorID{{31, 30}, {10}, nil}))

	require.True(t, viewed.Equal(owned))
	require.True(t, owned.Equal(viewed))
	require.Equal(t, owned.SpectrumNumbers(), viewed.SpectrumNumbers())
	for i := 0; i < owned.Size(); i++ {
		a, err := viewed.DetectorIDs(i)
		require.NoError(t, err)
		b, err := owned.DetectorIDs(i)
		require.NoError(t, err)
		require.Equal(t, b, a)
	}
	_, err = viewed.SpectrumNumber(3)
	require.True(t, xerrors.IsOutOfRange(err))
	idx, err := viewed.IndexOf(2)
	require.NoError(t, err)
	require.Equal(t, 2, idx)

	// The view reads live from the host, a clone is decoupled from it.
	clone := viewed.Clone()
	require.Nil(t, clone.view)
	host.numbers[0] = 4
	number, err := viewed.SpectrumNumber(0)
	require.NoError(t, err)
	require.Equal(t, SpectrumNumber(4), number)
	number, err = clone.SpectrumNumber(0)
	require.NoError(t, err)
	require.Equal(t, SpectrumNumber(3), number)

	// Setters materialize the view.
	require.NoError(t, viewed.SetSpectrumNumbers([]SpectrumNumber{7, 8, 9}))
	require.Nil(t, viewed.view)
	host.numbers[1] = 42
	require.Equal(t, []SpectrumNumber{7, 8, 9}, viewed.SpectrumNumbers())
	ids, err := viewed.DetectorIDs(0)
	require.NoError(t, err)
	require.Equal(t, []DetectorID{30, 31}, ids)
}

func TestIndexLookups(t *testing.T) {
	info, err := NewIndexInfo([]SpectrumNumber{10, 30, 20, 40}, parallel.StorageModeCloned, nil)
	require.NoError(t, err)

	idx, err := info.IndexOf(20)
	require.NoError(t, err)
	require.Equal(t, 2, idx)
	_, err = info.IndexOf(50)
	require.True(t, xerrors.IsOutOfRange(err))

	indices, err := info.MakeIndexSet(40, 10)
	require.NoError(t, err)
	require.Equal(t, []int{3, 0}, indices)
	_, err = info.MakeIndexSet(10, 11)
	require.True(t, xerrors.IsOutOfRange(err))

	indices, err = info.MakeIndexRange(15, 35)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, indices)
	_, err = info.MakeIndexRange(35, 15)
	require.True(t, xerrors.IsInvalidParams(err))
}

func TestSpectrumDefinition(t *testing.T) {
	a := NewSpectrumDefinition(Contribution{DetectorIndex: 1, TimeIndex: 2})
	b := def(3, 4)
	merged := a.Merge(b)
	require.Equal(t, 3, merged.Size())
	require.Equal(t, Contribution{DetectorIndex: 1, TimeIndex: 2}, merged.At(0))
	require.Equal(t, "{(1,2),(3,0),(4,0)}", merged.String())
	require.True(t, merged.Equal(NewSpectrumDefinition(merged.Contributions()...)))
	require.False(t, merged.Equal(b))
	require.Equal(t, 1, a.Size())
	require.Equal(t, 0, SpectrumDefinition{}.Size())

	contributions := merged.Contributions()
	contributions[0].DetectorIndex = 99
	require.Equal(t, 1, merged.At(0).DetectorIndex)
}
