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
	"strconv"
	"strings"

	xerrors "github.com/reductionkit/reduce/src/x/errors"
)

// maxIndexListRange bounds the number of indices a single range expands to.
const maxIndexListRange = 1 << 20

var errEmptyIndexList = errors.New("empty index list")

// ParseIndexList parses a comma separated list of indices and inclusive
// ascending ranges, e.g. "4,0-3" yields [4 0 1 2 3]. Order and repeats are
// kept as written.
func ParseIndexList(str string) ([]int, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, xerrors.NewInvalidParamsError(errEmptyIndexList)
	}

	var indices []int
	for _, token := range strings.Split(str, ",") {
		token = strings.TrimSpace(token)
		bounds := strings.SplitN(token, "-", 2)
		first, err := parseIndex(bounds[0], token)
		if err != nil {
			return nil, err
		}
		if len(bounds) == 1 {
			indices = append(indices, first)
			continue
		}
		last, err := parseIndex(bounds[1], token)
		if err != nil {
			return nil, err
		}
		if first > last {
			return nil, xerrors.NewInvalidParamsError(
				fmt.Errorf("descending range in index list: %q", token))
		}
		if last-first >= maxIndexListRange {
			return nil, xerrors.NewInvalidParamsError(fmt.Errorf(
				"range in index list exceeds %d indices: %q", maxIndexListRange, token))
		}
		for i := first; i < last; i++ {
			indices = append(indices, i)
		}
		indices = append(indices, last)
	}
	return indices, nil
}

func parseIndex(str, token string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil || idx < 0 {
		return 0, xerrors.NewInvalidParamsError(
			fmt.Errorf("invalid index %q in index list", token))
	}
	return idx, nil
}
