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

package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/reductionkit/reduce/src/indexing"
	"github.com/reductionkit/reduce/src/parallel"
	"github.com/reductionkit/reduce/src/parallel/runner"
)

type partitionOptions struct {
	ranks   int
	extract []int
	groups  [][]int
}

// parseGroups parses groups of index lists separated by ';', e.g. "0-1;3;2".
func parseGroups(str string) ([][]int, error) {
	var groups [][]int
	for i, token := range strings.Split(str, ";") {
		indices, err := indexing.ParseIndexList(token)
		if err != nil {
			return nil, errors.Wrapf(err, "group %d", i)
		}
		groups = append(groups, indices)
	}
	return groups, nil
}

// partitionIndex builds the configured index on every rank, applies the
// optional extraction and grouping and scatters the result. The returned
// slice is ordered by rank.
func partitionIndex(cfg Configuration, opts partitionOptions) ([]*indexing.IndexInfo, error) {
	ranks := opts.ranks
	if ranks <= 0 {
		ranks = cfg.Communicator.Size
	}
	if ranks <= 0 {
		ranks = 1
	}

	var (
		mu      sync.Mutex
		results = make([]*indexing.IndexInfo, ranks)
	)
	err := runner.Run(ranks, func(comm parallel.Communicator) error {
		info, err := partitionRank(cfg.Index, comm, opts)
		if err != nil {
			return err
		}
		mu.Lock()
		results[comm.Rank()] = info
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func partitionRank(
	cfg indexing.IndexConfiguration,
	comm parallel.Communicator,
	opts partitionOptions,
) (*indexing.IndexInfo, error) {
	info, err := cfg.NewIndexInfo(comm)
	if err != nil {
		return nil, errors.Wrap(err, "could not build index")
	}
	if len(opts.extract) > 0 {
		if info, err = indexing.Extract(info, opts.extract); err != nil {
			return nil, errors.Wrap(err, "could not extract spectra")
		}
	}
	if len(opts.groups) > 0 {
		numbers := make([]indexing.SpectrumNumber, len(opts.groups))
		for i := range numbers {
			numbers[i] = indexing.SpectrumNumber(i + 1)
		}
		if info, err = indexing.Group(info, numbers, opts.groups); err != nil {
			return nil, errors.Wrap(err, "could not group spectra")
		}
	}
	scattered, err := indexing.Scatter(info)
	if err != nil {
		return nil, errors.Wrap(err, "could not scatter index")
	}
	return scattered, nil
}

func writeResults(w io.Writer, results []*indexing.IndexInfo) error {
	for rank, info := range results {
		if _, err := fmt.Fprintf(w, "rank %d/%d %s %v\n",
			rank, len(results), info.StorageMode(), info.SpectrumNumbers()); err != nil {
			return err
		}
		for i, def := range info.SpectrumDefinitions() {
			if _, err := fmt.Fprintf(w, "  %d: %s\n", info.SpectrumNumbers()[i], def); err != nil {
				return err
			}
		}
	}
	return nil
}
