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
	"github.com/reductionkit/reduce/src/indexing"
	"github.com/reductionkit/reduce/src/parallel"
	xlog "github.com/reductionkit/reduce/src/x/log"
)

// Configuration is the configuration of the spectra partition tool.
type Configuration struct {
	// Logging configures the tool logger.
	Logging xlog.Configuration `yaml:"logging"`

	// Communicator sets the number of ranks the index is partitioned over.
	Communicator parallel.CommunicatorConfiguration `yaml:"communicator"`

	// Index describes the full index before partitioning.
	Index indexing.IndexConfiguration `yaml:"index"`
}
