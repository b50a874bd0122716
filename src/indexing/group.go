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

	xerrors "github.com/reductionkit/reduce/src/x/errors"
)

var errGroupSizeMismatch = errors.New("size mismatch between spectrum number and grouping vectors")

// Group returns a new index whose entry k has spectrum number numbers[k]
// and merges the source entries listed in grouping[k]: its definition is
// the concatenation of their definitions in listed order and its detector
// IDs are the union of theirs. A group of a single entry keeps that
// entry's definition as is, an empty group yields an empty definition.
// Neither numbers nor grouping are modified.
func Group(source *IndexInfo, numbers []SpectrumNumber, grouping [][]int) (*IndexInfo, error) {
	if len(numbers) != len(grouping) {
		return nil, xerrors.NewInvalidParamsError(errGroupSizeMismatch)
	}
	if err := validateUnique(numbers); err != nil {
		return nil, err
	}
	for k, group := range grouping {
		for _, idx := range group {
			if err := source.checkIndex(idx); err != nil {
				return nil, fmt.Errorf("group %d: %w", k, err)
			}
		}
	}

	var (
		n       = len(numbers)
		hasIDs  = source.hasDetectorIDs()
		grouped = make([]SpectrumNumber, n)
		ids     [][]DetectorID
	)
	copy(grouped, numbers)
	if hasIDs {
		ids = make([][]DetectorID, n)
		for k, group := range grouping {
			var merged []DetectorID
			for _, idx := range group {
				merged = append(merged, source.detectorIDsAt(idx)...)
			}
			ids[k] = sortedDetectorIDs(merged)
		}
	}

	result := &IndexInfo{
		numbers:    newBuffer(grouped),
		globalSize: n,
		mode:       source.mode,
		comm:       source.comm,
	}
	if hasIDs {
		result.detectorIDs = newBuffer(ids)
	}
	if source.definitions != nil {
		var (
			sourceDefs  = source.definitions.values
			definitions = make([]SpectrumDefinition, n)
		)
		for k, group := range grouping {
			switch len(group) {
			case 0:
				definitions[k] = SpectrumDefinition{}
			case 1:
				definitions[k] = sourceDefs[group[0]]
			default:
				members := make([]SpectrumDefinition, 0, len(group)-1)
				for _, idx := range group[1:] {
					members = append(members, sourceDefs[idx])
				}
				definitions[k] = sourceDefs[group[0]].Merge(members...)
			}
		}
		b := newBuffer(definitions)
		result.definitions = &b
	}
	return result, nil
}
