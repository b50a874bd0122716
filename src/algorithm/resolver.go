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
	"fmt"
	"strings"

	"github.com/reductionkit/reduce/src/parallel"
	xerrors "github.com/reductionkit/reduce/src/x/errors"
)

const (
	unsupportedStorageModesHeader = "Algorithm does not support execution with input workspaces of the following storage types: \n"
	serialNotParallelMessage      = "Parallel::ExecutionMode::Serial is not a valid *parallel* execution mode."
)

// NamedStorageMode is the storage mode of a named input property.
type NamedStorageMode struct {
	Name        string
	StorageMode parallel.StorageMode
}

// Policy maps the storage modes of the input properties, keyed by property
// name, to an execution mode.
type Policy func(storageModes map[string]parallel.StorageMode) parallel.ExecutionMode

// DefaultPolicy resolves to the execution mode corresponding to the storage
// mode shared by every input, and to ExecutionModeInvalid when the inputs
// disagree or there are none.
func DefaultPolicy(storageModes map[string]parallel.StorageMode) parallel.ExecutionMode {
	var (
		mode  parallel.StorageMode
		first = true
	)
	for _, m := range storageModes {
		if first {
			mode, first = m, false
			continue
		}
		if m != mode {
			return parallel.ExecutionModeInvalid
		}
	}
	if first {
		return parallel.ExecutionModeInvalid
	}
	return parallel.CorrespondingExecutionMode(mode)
}

// SingleInputPolicy resolves from the storage mode of one input and ignores
// the rest.
func SingleInputPolicy(name string) Policy {
	return func(storageModes map[string]parallel.StorageMode) parallel.ExecutionMode {
		mode, ok := storageModes[name]
		if !ok {
			return parallel.ExecutionModeInvalid
		}
		return parallel.CorrespondingExecutionMode(mode)
	}
}

// SerialPolicy is the policy of algorithms that only run on a single rank.
func SerialPolicy(map[string]parallel.StorageMode) parallel.ExecutionMode {
	return parallel.ExecutionModeSerial
}

// ExecutionModeError is returned when no valid parallel execution mode
// exists for an invocation.
type ExecutionModeError struct {
	Mode         parallel.ExecutionMode
	StorageModes []NamedStorageMode
	msg          string
}

func newExecutionModeError(mode parallel.ExecutionMode, storageModes []NamedStorageMode) *ExecutionModeError {
	if mode == parallel.ExecutionModeSerial {
		return &ExecutionModeError{Mode: mode, StorageModes: storageModes, msg: serialNotParallelMessage}
	}
	var b strings.Builder
	b.WriteString(unsupportedStorageModesHeader)
	for _, m := range storageModes {
		b.WriteString(m.Name)
		b.WriteString(" ")
		b.WriteString(m.StorageMode.String())
		b.WriteString("\n")
	}
	b.WriteString(".")
	return &ExecutionModeError{Mode: mode, StorageModes: storageModes, msg: b.String()}
}

func (e *ExecutionModeError) Error() string {
	return e.msg
}

// IsExecutionModeError returns true if the error or any error it wraps is an
// execution mode error.
func IsExecutionModeError(err error) bool {
	var target *ExecutionModeError
	return errors.As(err, &target)
}

// Resolve applies the policy to the storage modes and validates the result
// against the communicator. A single rank accepts any result, an invalid
// one runs serially. With more than one rank only Identical, Distributed
// and MasterOnly are accepted.
func Resolve(
	comm parallel.Communicator,
	storageModes []NamedStorageMode,
	policy Policy,
) (parallel.ExecutionMode, error) {
	if policy == nil {
		policy = DefaultPolicy
	}
	byName := make(map[string]parallel.StorageMode, len(storageModes))
	for _, m := range storageModes {
		byName[m.Name] = m.StorageMode
	}

	mode := policy(byName)
	if comm == nil || comm.Size() == 1 {
		if mode == parallel.ExecutionModeInvalid {
			return parallel.ExecutionModeSerial, nil
		}
		return mode, nil
	}

	switch mode {
	case parallel.ExecutionModeIdentical,
		parallel.ExecutionModeDistributed,
		parallel.ExecutionModeMasterOnly:
		return mode, nil
	case parallel.ExecutionModeSerial:
		return mode, newExecutionModeError(mode, storageModes)
	}
	return parallel.ExecutionModeInvalid, newExecutionModeError(parallel.ExecutionModeInvalid, storageModes)
}

// CollectStorageModes returns the storage modes of the input properties in
// declaration order. Unset optional inputs are skipped. An input set to no
// workspace counts as MasterOnly off rank 0, where master-only data is
// absent, and is an error on rank 0.
func CollectStorageModes(
	props *Properties,
	comm parallel.Communicator,
) ([]NamedStorageMode, error) {
	rank := 0
	if comm != nil {
		rank = comm.Rank()
	}
	var modes []NamedStorageMode
	for _, info := range props.Declared() {
		if info.Direction == Output {
			continue
		}
		if props.IsDefault(info.Name) {
			if info.Optionality == Optional {
				continue
			}
			return nil, xerrors.NewInvalidParamsError(
				fmt.Errorf("mandatory input property %s is not set", info.Name))
		}
		ws, err := props.Property(info.Name)
		if err != nil {
			return nil, err
		}
		if ws == nil {
			if rank == 0 {
				return nil, xerrors.NewInvalidParamsError(
					fmt.Errorf("input property %s holds no workspace on rank 0", info.Name))
			}
			modes = append(modes, NamedStorageMode{Name: info.Name, StorageMode: parallel.StorageModeMasterOnly})
			continue
		}
		modes = append(modes, NamedStorageMode{Name: info.Name, StorageMode: ws.StorageMode()})
	}
	return modes, nil
}
