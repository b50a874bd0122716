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

// IndexConfiguration describes the global spectra of an index.
type IndexConfiguration struct {
	// SpectrumNumbers lists the global spectrum numbers.
	SpectrumNumbers []SpectrumNumber `yaml:"spectrumNumbers"`

	// NumSpectra is used to number spectra 1 to NumSpectra when no
	// spectrum numbers are listed.
	NumSpectra int `yaml:"numSpectra" validate:"min=0"`

	// DetectorIDs optionally lists the detector IDs of each spectrum.
	DetectorIDs [][]DetectorID `yaml:"detectorIDs"`

	// StorageMode is how the spectra are spread across ranks.
	StorageMode parallel.StorageMode `yaml:"storageMode"`
}

// NewIndexInfo returns the part of the configured index local to comm.
// Spectrum i is defined by the single contribution of detector index i.
func (c IndexConfiguration) NewIndexInfo(comm parallel.Communicator) (*IndexInfo, error) {
	numbers := c.SpectrumNumbers
	switch {
	case len(numbers) == 0:
		numbers = make([]SpectrumNumber, c.NumSpectra)
		for i := range numbers {
			numbers[i] = SpectrumNumber(i + 1)
		}
	case c.NumSpectra != 0 && c.NumSpectra != len(numbers):
		return nil, xerrors.NewInvalidParamsError(fmt.Errorf(
			"numSpectra does not match spectrumNumbers: numSpectra=%d, spectrumNumbers=%d",
			c.NumSpectra, len(numbers)))
	}

	full, err := NewIndexInfo(numbers, parallel.StorageModeCloned, comm)
	if err != nil {
		return nil, err
	}
	if len(c.DetectorIDs) != 0 {
		if err := full.SetDetectorIDs(c.DetectorIDs); err != nil {
			return nil, err
		}
	}
	definitions := make([]SpectrumDefinition, full.Size())
	for i := range definitions {
		definitions[i] = NewSpectrumDefinition(Contribution{DetectorIndex: i})
	}
	if err := full.SetSpectrumDefinitions(definitions); err != nil {
		return nil, err
	}
	return partition(full, c.StorageMode), nil
}
