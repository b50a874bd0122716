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

// Package parallel describes how data and algorithm execution are spread
// across the ranks of a communicator.
package parallel

import (
	"fmt"
	"strings"
)

// StorageMode declares how the data of a logical dataset is physically
// spread across ranks.
type StorageMode int

const (
	// StorageModeCloned means every rank holds an identical, full-size copy.
	StorageModeCloned StorageMode = iota
	// StorageModeDistributed means each rank holds a disjoint partition,
	// assigned round-robin by global index modulo communicator size.
	StorageModeDistributed
	// StorageModeMasterOnly means only rank 0 holds data, all other ranks
	// hold nothing.
	StorageModeMasterOnly
)

// StorageModes returns all the storage modes.
func StorageModes() []StorageMode {
	return []StorageMode{
		StorageModeCloned,
		StorageModeDistributed,
		StorageModeMasterOnly,
	}
}

// String returns the string representation of the storage mode.
func (m StorageMode) String() string {
	switch m {
	case StorageModeCloned:
		return "Cloned"
	case StorageModeDistributed:
		return "Distributed"
	case StorageModeMasterOnly:
		return "MasterOnly"
	}
	return "Unknown"
}

// ParseStorageMode parses a storage mode from its name, case insensitive.
// The qualified form "Parallel::StorageMode::<Name>" is accepted too.
func ParseStorageMode(str string) (StorageMode, error) {
	name := strings.TrimPrefix(strings.TrimSpace(str), "Parallel::StorageMode::")
	for _, m := range StorageModes() {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unrecognized storage mode: %q", str)
}

// UnmarshalYAML unmarshals a storage mode from its name, an empty value
// is Cloned.
func (m *StorageMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	if str == "" {
		*m = StorageModeCloned
		return nil
	}
	parsed, err := ParseStorageMode(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML marshals a storage mode as its name.
func (m StorageMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// ExecutionMode is the per invocation decision of how an algorithm runs
// given the storage modes of its inputs.
type ExecutionMode int

const (
	// ExecutionModeInvalid means no execution mode could be derived from
	// the inputs.
	ExecutionModeInvalid ExecutionMode = iota
	// ExecutionModeSerial means no parallel execution contract is declared,
	// valid only for a communicator of size 1.
	ExecutionModeSerial
	// ExecutionModeIdentical means every rank runs the same computation on
	// identical data.
	ExecutionModeIdentical
	// ExecutionModeDistributed means every rank runs on its own partition.
	ExecutionModeDistributed
	// ExecutionModeMasterOnly means only rank 0 computes.
	ExecutionModeMasterOnly
)

// ExecutionModes returns all the execution modes.
func ExecutionModes() []ExecutionMode {
	return []ExecutionMode{
		ExecutionModeInvalid,
		ExecutionModeSerial,
		ExecutionModeIdentical,
		ExecutionModeDistributed,
		ExecutionModeMasterOnly,
	}
}

// String returns the string representation of the execution mode.
func (m ExecutionMode) String() string {
	switch m {
	case ExecutionModeInvalid:
		return "Invalid"
	case ExecutionModeSerial:
		return "Serial"
	case ExecutionModeIdentical:
		return "Identical"
	case ExecutionModeDistributed:
		return "Distributed"
	case ExecutionModeMasterOnly:
		return "MasterOnly"
	}
	return "Unknown"
}

// CorrespondingExecutionMode returns the execution mode implied by inputs
// that all share the given storage mode.
func CorrespondingExecutionMode(mode StorageMode) ExecutionMode {
	switch mode {
	case StorageModeCloned:
		return ExecutionModeIdentical
	case StorageModeDistributed:
		return ExecutionModeDistributed
	case StorageModeMasterOnly:
		return ExecutionModeMasterOnly
	}
	return ExecutionModeInvalid
}

// CorrespondingStorageMode returns the storage mode of the output produced
// by an algorithm executed in the given mode.
func CorrespondingStorageMode(mode ExecutionMode) (StorageMode, error) {
	switch mode {
	case ExecutionModeIdentical:
		return StorageModeCloned, nil
	case ExecutionModeDistributed:
		return StorageModeDistributed, nil
	case ExecutionModeMasterOnly:
		return StorageModeMasterOnly, nil
	}
	return 0, fmt.Errorf("execution mode %s has no corresponding storage mode", mode)
}
