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

package algorithm

import (
	"errors"

	"github.com/reductionkit/reduce/src/indexing"
	"github.com/reductionkit/reduce/src/parallel"
	xerrors "github.com/reductionkit/reduce/src/x/errors"
)

var errNilIndexInfo = errors.New("workspace index info must not be nil")

type workspace struct {
	info *indexing.IndexInfo
}

// NewWorkspace returns a workspace holding nothing but its index.
func NewWorkspace(info *indexing.IndexInfo) (Workspace, error) {
	if info == nil {
		return nil, xerrors.NewInvalidParamsError(errNilIndexInfo)
	}
	return &workspace{info: info.Clone()}, nil
}

func (w *workspace) StorageMode() parallel.StorageMode {
	return w.info.StorageMode()
}

func (w *workspace) IndexInfo() *indexing.IndexInfo {
	return w.info.Clone()
}

func (w *workspace) SetIndexInfo(info *indexing.IndexInfo) error {
	if info == nil {
		return xerrors.NewInvalidParamsError(errNilIndexInfo)
	}
	w.info = info.Clone()
	return nil
}
