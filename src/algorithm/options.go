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
	"github.com/reductionkit/reduce/src/parallel"
	"github.com/reductionkit/reduce/src/x/instrument"
)

// Options represents the options for an executor.
type Options interface {
	// SetCommunicator sets the communicator the executor runs on.
	SetCommunicator(value parallel.Communicator) Options

	// Communicator returns the communicator the executor runs on.
	Communicator() parallel.Communicator

	// SetInstrumentOptions sets the instrument options.
	SetInstrumentOptions(value instrument.Options) Options

	// InstrumentOptions returns the instrument options.
	InstrumentOptions() instrument.Options
}

type options struct {
	comm        parallel.Communicator
	instrumentO instrument.Options
}

// NewOptions creates new executor options running on a single rank.
func NewOptions() Options {
	return &options{
		comm:        parallel.NewSerialCommunicator(),
		instrumentO: instrument.NewOptions(),
	}
}

func (o *options) SetCommunicator(value parallel.Communicator) Options {
	opts := *o
	opts.comm = value
	return &opts
}

func (o *options) Communicator() parallel.Communicator {
	return o.comm
}

func (o *options) SetInstrumentOptions(value instrument.Options) Options {
	opts := *o
	opts.instrumentO = value
	return &opts
}

func (o *options) InstrumentOptions() instrument.Options {
	return o.instrumentO
}
