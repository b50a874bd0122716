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

// Package algorithm resolves, per algorithm invocation, how an algorithm
// executes across ranks from the storage modes of its input workspaces,
// and runs it accordingly.
package algorithm

import (
	"github.com/reductionkit/reduce/src/indexing"
	"github.com/reductionkit/reduce/src/parallel"
)

// Direction is the direction of a workspace property.
type Direction int

const (
	// Input is a property read by the algorithm.
	Input Direction = iota
	// Output is a property produced by the algorithm.
	Output
	// InOut is a property read and replaced by the algorithm.
	InOut
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Input:
		return "Input"
	case Output:
		return "Output"
	case InOut:
		return "InOut"
	}
	return "Unknown"
}

// Optionality is whether a workspace property must be set.
type Optionality int

const (
	// Mandatory properties must be set.
	Mandatory Optionality = iota
	// Optional properties may be left unset.
	Optional
)

// String returns the string representation of the optionality.
func (o Optionality) String() string {
	switch o {
	case Mandatory:
		return "Mandatory"
	case Optional:
		return "Optional"
	}
	return "Unknown"
}

// Workspace is the data an algorithm reads and produces, as far as
// execution mode resolution is concerned.
type Workspace interface {
	// StorageMode returns how the workspace is spread across ranks.
	StorageMode() parallel.StorageMode

	// IndexInfo returns a copy of the workspace's index.
	IndexInfo() *indexing.IndexInfo

	// SetIndexInfo replaces the workspace's index.
	SetIndexInfo(info *indexing.IndexInfo) error
}

// State is the terminal state of an algorithm invocation.
type State int

const (
	// Failed means the invocation failed, before or during execution.
	Failed State = iota
	// Succeeded means the algorithm executed and its outputs were tagged.
	Succeeded
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Failed:
		return "Failed"
	case Succeeded:
		return "Succeeded"
	}
	return "Unknown"
}

// Result is the outcome of an algorithm invocation.
type Result struct {
	State State
	Mode  parallel.ExecutionMode
}
