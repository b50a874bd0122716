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
	"errors"
	"fmt"

	"github.com/reductionkit/reduce/src/parallel"
	xerrors "github.com/reductionkit/reduce/src/x/errors"
)

var errNilView = errors.New("index info view must not be nil")

// IndexView gives live access to the spectra of a host object. An IndexInfo
// backed by a view reads through it on every query.
type IndexView interface {
	// Size returns the number of local spectra.
	Size() int

	// SpectrumNumber returns the spectrum number at local index i.
	SpectrumNumber(i int) SpectrumNumber

	// DetectorIDs returns the detector IDs at local index i.
	DetectorIDs(i int) []DetectorID
}

// ViewFuncs adapts accessor functions of a host object into an IndexView.
type ViewFuncs struct {
	SizeFn           func() int
	SpectrumNumberFn func(i int) SpectrumNumber
	DetectorIDsFn    func(i int) []DetectorID
}

// Size implements IndexView.
func (f ViewFuncs) Size() int { return f.SizeFn() }

// SpectrumNumber implements IndexView.
func (f ViewFuncs) SpectrumNumber(i int) SpectrumNumber { return f.SpectrumNumberFn(i) }

// DetectorIDs implements IndexView.
func (f ViewFuncs) DetectorIDs(i int) []DetectorID {
	if f.DetectorIDsFn == nil {
		return nil
	}
	return f.DetectorIDsFn(i)
}

// IndexInfo maps a contiguous range of local indices to spectrum numbers,
// detector IDs and spectrum definitions. It is either backed by owned
// copy-on-write buffers or by a live IndexView, all queries behave the
// same regardless of the backing. Use Clone to take a value copy.
type IndexInfo struct {
	view        IndexView
	numbers     buffer[SpectrumNumber]
	detectorIDs buffer[[]DetectorID]
	definitions *buffer[SpectrumDefinition]
	globalSize  int
	mode        parallel.StorageMode
	comm        parallel.Communicator
}

// NewIndexInfo returns the local part of an index over the given global
// spectrum numbers, partitioned according to mode: every rank keeps all of
// them when Cloned, rank r keeps global index i iff i mod size == r when
// Distributed, only rank 0 keeps them when MasterOnly. A nil communicator
// means a serial run.
func NewIndexInfo(
	numbers []SpectrumNumber,
	mode parallel.StorageMode,
	comm parallel.Communicator,
) (*IndexInfo, error) {
	if err := validateUnique(numbers); err != nil {
		return nil, err
	}
	cloned := make([]SpectrumNumber, len(numbers))
	copy(cloned, numbers)
	full := newOwned(cloned, comm)
	return partition(full, mode), nil
}

// NewIndexInfoWithSize returns the local part of an index over global
// spectrum numbers 1 to globalSize, partitioned as in NewIndexInfo.
func NewIndexInfoWithSize(
	globalSize int,
	mode parallel.StorageMode,
	comm parallel.Communicator,
) (*IndexInfo, error) {
	if globalSize < 0 {
		return nil, xerrors.NewInvalidParamsError(
			fmt.Errorf("index info size must not be negative: size=%d", globalSize))
	}
	numbers := make([]SpectrumNumber, globalSize)
	for i := range numbers {
		numbers[i] = SpectrumNumber(i + 1)
	}
	return partition(newOwned(numbers, comm), mode), nil
}

// NewIndexInfoFromView returns an index reading through view. The view
// describes the local spectra, the global size reported equals the local
// size.
func NewIndexInfoFromView(
	view IndexView,
	mode parallel.StorageMode,
	comm parallel.Communicator,
) (*IndexInfo, error) {
	if view == nil {
		return nil, xerrors.NewInvalidParamsError(errNilView)
	}
	if comm == nil {
		comm = parallel.NewSerialCommunicator()
	}
	return &IndexInfo{view: view, mode: mode, comm: comm}, nil
}

func newOwned(numbers []SpectrumNumber, comm parallel.Communicator) *IndexInfo {
	if comm == nil {
		comm = parallel.NewSerialCommunicator()
	}
	return &IndexInfo{
		numbers:    newBuffer(numbers),
		globalSize: len(numbers),
		mode:       parallel.StorageModeCloned,
		comm:       comm,
	}
}

// Size returns the number of local spectra.
func (info *IndexInfo) Size() int {
	if info.view != nil {
		return info.view.Size()
	}
	return info.numbers.len()
}

// GlobalSize returns the number of spectra across all ranks. Instances
// derived by Extract or Group from Distributed data cannot know it without
// communication and report their local size.
func (info *IndexInfo) GlobalSize() int {
	if info.view != nil {
		return info.view.Size()
	}
	return info.globalSize
}

// StorageMode returns the storage mode.
func (info *IndexInfo) StorageMode() parallel.StorageMode {
	return info.mode
}

// SetStorageMode tags the index with a storage mode, no spectra are moved.
func (info *IndexInfo) SetStorageMode(mode parallel.StorageMode) {
	info.mode = mode
}

// Communicator returns the communicator.
func (info *IndexInfo) Communicator() parallel.Communicator {
	return info.comm
}

// SpectrumNumber returns the spectrum number at local index i.
func (info *IndexInfo) SpectrumNumber(i int) (SpectrumNumber, error) {
	if err := info.checkIndex(i); err != nil {
		return 0, err
	}
	return info.numberAt(i), nil
}

// SpectrumNumbers returns a copy of all local spectrum numbers.
func (info *IndexInfo) SpectrumNumbers() []SpectrumNumber {
	n := info.Size()
	numbers := make([]SpectrumNumber, n)
	for i := 0; i < n; i++ {
		numbers[i] = info.numberAt(i)
	}
	return numbers
}

// DetectorIDs returns the detector IDs at local index i, which may be
// empty. The returned slice must not be modified.
func (info *IndexInfo) DetectorIDs(i int) ([]DetectorID, error) {
	if err := info.checkIndex(i); err != nil {
		return nil, err
	}
	return info.detectorIDsAt(i), nil
}

// SpectrumDefinitions returns the spectrum definitions aligned with the
// local indices, or nil when none were set. The returned slice must not be
// modified, use SetSpectrumDefinition instead.
func (info *IndexInfo) SpectrumDefinitions() []SpectrumDefinition {
	if info.definitions == nil {
		return nil
	}
	return info.definitions.values
}

// HasSpectrumDefinitions returns whether spectrum definitions were set.
func (info *IndexInfo) HasSpectrumDefinitions() bool {
	return info.definitions != nil
}

// SetSpectrumNumbers replaces the local spectrum numbers. A view backed
// index is materialized first.
func (info *IndexInfo) SetSpectrumNumbers(numbers []SpectrumNumber) error {
	if len(numbers) != info.Size() {
		return xerrors.NewInvalidParamsError(fmt.Errorf(
			"size mismatch when setting spectrum numbers: expected=%d, actual=%d",
			info.Size(), len(numbers)))
	}
	if err := validateUnique(numbers); err != nil {
		return err
	}
	info.materialize()
	cloned := make([]SpectrumNumber, len(numbers))
	copy(cloned, numbers)
	info.numbers = newBuffer(cloned)
	return nil
}

// SetDetectorIDs replaces the local detector IDs, one set per spectrum.
// Each set is stored sorted without duplicates. A view backed index is
// materialized first.
func (info *IndexInfo) SetDetectorIDs(ids [][]DetectorID) error {
	if len(ids) != info.Size() {
		return xerrors.NewInvalidParamsError(fmt.Errorf(
			"size mismatch when setting detector IDs: expected=%d, actual=%d",
			info.Size(), len(ids)))
	}
	info.materialize()
	sets := make([][]DetectorID, len(ids))
	for i := range ids {
		sets[i] = sortedDetectorIDs(ids[i])
	}
	info.detectorIDs = newBuffer(sets)
	return nil
}

// SetSpectrumDefinitions attaches spectrum definitions, one per local index.
// Passing nil detaches them.
func (info *IndexInfo) SetSpectrumDefinitions(definitions []SpectrumDefinition) error {
	if definitions == nil {
		info.definitions = nil
		return nil
	}
	if len(definitions) != info.Size() {
		return xerrors.NewInvalidParamsError(fmt.Errorf(
			"size mismatch when setting spectrum definitions: expected=%d, actual=%d",
			info.Size(), len(definitions)))
	}
	cloned := make([]SpectrumDefinition, len(definitions))
	copy(cloned, definitions)
	b := newBuffer(cloned)
	info.definitions = &b
	return nil
}

// SetSpectrumDefinition replaces the definition at local index i. The
// definitions are copied first if they are shared with another instance.
func (info *IndexInfo) SetSpectrumDefinition(i int, definition SpectrumDefinition) error {
	if info.definitions == nil {
		return xerrors.NewInvalidParamsError(errors.New("spectrum definitions are not set"))
	}
	if err := info.checkIndex(i); err != nil {
		return err
	}
	info.definitions.mutable()[i] = definition
	return nil
}

// IndexOf returns the local index of the given spectrum number.
func (info *IndexInfo) IndexOf(number SpectrumNumber) (int, error) {
	n := info.Size()
	for i := 0; i < n; i++ {
		if info.numberAt(i) == number {
			return i, nil
		}
	}
	return 0, xerrors.NewOutOfRangeError(
		fmt.Errorf("spectrum number %d not found in index", number))
}

// MakeIndexSet returns the local indices of the given spectrum numbers, in
// the order given.
func (info *IndexInfo) MakeIndexSet(numbers ...SpectrumNumber) ([]int, error) {
	lookup := info.numberLookup()
	indices := make([]int, 0, len(numbers))
	for _, number := range numbers {
		idx, ok := lookup[number]
		if !ok {
			return nil, xerrors.NewOutOfRangeError(
				fmt.Errorf("spectrum number %d not found in index", number))
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// MakeIndexRange returns the local indices, in ascending order, of all
// spectra whose number lies in [minNumber, maxNumber].
func (info *IndexInfo) MakeIndexRange(minNumber, maxNumber SpectrumNumber) ([]int, error) {
	if minNumber > maxNumber {
		return nil, xerrors.NewInvalidParamsError(fmt.Errorf(
			"invalid spectrum number range: min=%d, max=%d", minNumber, maxNumber))
	}
	var (
		n       = info.Size()
		indices []int
	)
	for i := 0; i < n; i++ {
		if number := info.numberAt(i); number >= minNumber && number <= maxNumber {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// GlobalIndex returns the global index of local index i. Distributed
// indices follow the round-robin layout of Scatter, any other index is
// its own global index.
func (info *IndexInfo) GlobalIndex(i int) (int, error) {
	if err := info.checkIndex(i); err != nil {
		return 0, err
	}
	if info.mode == parallel.StorageModeDistributed {
		return i*info.comm.Size() + info.comm.Rank(), nil
	}
	return i, nil
}

// Clone returns a value copy. Owned buffers are shared until either side
// writes, a view backed index is materialized into owned buffers.
func (info *IndexInfo) Clone() *IndexInfo {
	if info.view != nil {
		c := *info
		c.materialize()
		if info.definitions != nil {
			d := info.definitions.share()
			c.definitions = &d
		}
		return &c
	}
	c := *info
	c.numbers = info.numbers.share()
	c.detectorIDs = info.detectorIDs.share()
	if info.definitions != nil {
		d := info.definitions.share()
		c.definitions = &d
	}
	return &c
}

// Equal returns whether both indices hold the same spectra, storage mode
// and communicator.
func (info *IndexInfo) Equal(other *IndexInfo) bool {
	if other == nil {
		return false
	}
	if info.Size() != other.Size() ||
		info.GlobalSize() != other.GlobalSize() ||
		info.mode != other.mode ||
		!info.comm.Equal(other.comm) ||
		info.HasSpectrumDefinitions() != other.HasSpectrumDefinitions() {
		return false
	}
	for i := 0; i < info.Size(); i++ {
		if info.numberAt(i) != other.numberAt(i) {
			return false
		}
		if !equalDetectorIDs(info.detectorIDsAt(i), other.detectorIDsAt(i)) {
			return false
		}
	}
	if info.definitions == nil {
		return true
	}
	for i, d := range info.definitions.values {
		if !d.Equal(other.definitions.values[i]) {
			return false
		}
	}
	return true
}

func (info *IndexInfo) String() string {
	return fmt.Sprintf("IndexInfo{size=%d, globalSize=%d, storageMode=%s, rank=%d, commSize=%d}",
		info.Size(), info.GlobalSize(), info.mode, info.comm.Rank(), info.comm.Size())
}

func (info *IndexInfo) materialize() {
	if info.view == nil {
		return
	}
	var (
		view    = info.view
		n       = view.Size()
		numbers = make([]SpectrumNumber, n)
		ids     = make([][]DetectorID, n)
	)
	for i := 0; i < n; i++ {
		numbers[i] = view.SpectrumNumber(i)
		ids[i] = sortedDetectorIDs(view.DetectorIDs(i))
	}
	info.view = nil
	info.numbers = newBuffer(numbers)
	info.detectorIDs = newBuffer(ids)
	info.globalSize = n
}

func (info *IndexInfo) checkIndex(i int) error {
	if size := info.Size(); i < 0 || i >= size {
		return xerrors.NewOutOfRangeError(
			fmt.Errorf("index %d out of range [0, %d)", i, size))
	}
	return nil
}

func (info *IndexInfo) numberAt(i int) SpectrumNumber {
	if info.view != nil {
		return info.view.SpectrumNumber(i)
	}
	return info.numbers.values[i]
}

func (info *IndexInfo) hasDetectorIDs() bool {
	return info.view != nil || info.detectorIDs.values != nil
}

func (info *IndexInfo) detectorIDsAt(i int) []DetectorID {
	if info.view != nil {
		return sortedDetectorIDs(info.view.DetectorIDs(i))
	}
	if info.detectorIDs.values == nil {
		return nil
	}
	return info.detectorIDs.values[i]
}

func (info *IndexInfo) numberLookup() map[SpectrumNumber]int {
	n := info.Size()
	lookup := make(map[SpectrumNumber]int, n)
	for i := 0; i < n; i++ {
		if _, ok := lookup[info.numberAt(i)]; !ok {
			lookup[info.numberAt(i)] = i
		}
	}
	return lookup
}

func validateUnique(numbers []SpectrumNumber) error {
	seen := make(map[SpectrumNumber]struct{}, len(numbers))
	for _, number := range numbers {
		if _, ok := seen[number]; ok {
			return xerrors.NewInvalidParamsError(
				fmt.Errorf("duplicate spectrum number: %d", number))
		}
		seen[number] = struct{}{}
	}
	return nil
}

func equalDetectorIDs(a, b []DetectorID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
