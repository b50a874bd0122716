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

// Package indexing maps the local spectra of a workspace to spectrum
// numbers, detector IDs and spectrum definitions, and reshapes that mapping
// by extraction, grouping and scattering across ranks.
package indexing

import (
	"fmt"
	"sort"
	"strings"
)

// SpectrumNumber is the stable, user facing identifier of a spectrum.
type SpectrumNumber int32

// DetectorID identifies a physical detector element.
type DetectorID int32

// Contribution is a single (detector index, time index) pair contributing
// to a spectrum.
type Contribution struct {
	DetectorIndex int `yaml:"detectorIndex"`
	TimeIndex     int `yaml:"timeIndex"`
}

// SpectrumDefinition is the ordered list of contributions that define a
// spectrum. It is immutable, all operations return new definitions.
type SpectrumDefinition struct {
	contributions []Contribution
}

// NewSpectrumDefinition returns a definition made of the given contributions.
func NewSpectrumDefinition(contributions ...Contribution) SpectrumDefinition {
	if len(contributions) == 0 {
		return SpectrumDefinition{}
	}
	cloned := make([]Contribution, len(contributions))
	copy(cloned, contributions)
	return SpectrumDefinition{contributions: cloned}
}

// Size returns the number of contributions.
func (d SpectrumDefinition) Size() int {
	return len(d.contributions)
}

// At returns the i-th contribution.
func (d SpectrumDefinition) At(i int) Contribution {
	return d.contributions[i]
}

// Contributions returns a copy of the contributions.
func (d SpectrumDefinition) Contributions() []Contribution {
	return NewSpectrumDefinition(d.contributions...).contributions
}

// Merge returns the concatenation of d followed by others, in order.
func (d SpectrumDefinition) Merge(others ...SpectrumDefinition) SpectrumDefinition {
	n := len(d.contributions)
	for _, o := range others {
		n += len(o.contributions)
	}
	merged := make([]Contribution, 0, n)
	merged = append(merged, d.contributions...)
	for _, o := range others {
		merged = append(merged, o.contributions...)
	}
	return SpectrumDefinition{contributions: merged}
}

// Equal returns whether both definitions hold the same contributions in
// the same order.
func (d SpectrumDefinition) Equal(other SpectrumDefinition) bool {
	if len(d.contributions) != len(other.contributions) {
		return false
	}
	for i := range d.contributions {
		if d.contributions[i] != other.contributions[i] {
			return false
		}
	}
	return true
}

func (d SpectrumDefinition) String() string {
	strs := make([]string, 0, len(d.contributions))
	for _, c := range d.contributions {
		strs = append(strs, fmt.Sprintf("(%d,%d)", c.DetectorIndex, c.TimeIndex))
	}
	return fmt.Sprintf("{%s}", strings.Join(strs, ","))
}

// sortedDetectorIDs returns a sorted copy of ids without duplicates.
func sortedDetectorIDs(ids []DetectorID) []DetectorID {
	if len(ids) == 0 {
		return nil
	}
	sorted := make([]DetectorID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	unique := sorted[:1]
	for _, id := range sorted[1:] {
		if id != unique[len(unique)-1] {
			unique = append(unique, id)
		}
	}
	return unique
}
