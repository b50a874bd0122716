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
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/reductionkit/reduce/src/parallel"
	xerrors "github.com/reductionkit/reduce/src/x/errors"
)

func newComm(t *testing.T, rank, size int) parallel.Communicator {
	comm, err := parallel.NewCommunicator(rank, size)
	require.NoError(t, err)
	return comm
}

func TestDefaultPolicy(t *testing.T) {
	for _, mode := range parallel.StorageModes() {
		got := DefaultPolicy(map[string]parallel.StorageMode{
			"InputWorkspace1": mode,
			"InputWorkspace2": mode,
		})
		require.Equal(t, parallel.CorrespondingExecutionMode(mode), got)
	}

	require.Equal(t, parallel.ExecutionModeInvalid, DefaultPolicy(nil))
	require.Equal(t, parallel.ExecutionModeInvalid, DefaultPolicy(map[string]parallel.StorageMode{
		"InputWorkspace1": parallel.StorageModeCloned,
		"InputWorkspace2": parallel.StorageModeDistributed,
	}))
}

func TestSingleInputPolicy(t *testing.T) {
	policy := SingleInputPolicy("InputWorkspace")
	require.Equal(t, parallel.ExecutionModeDistributed, policy(map[string]parallel.StorageMode{
		"InputWorkspace": parallel.StorageModeDistributed,
		"MaskWorkspace":  parallel.StorageModeCloned,
	}))
	require.Equal(t, parallel.ExecutionModeInvalid, policy(map[string]parallel.StorageMode{
		"MaskWorkspace": parallel.StorageModeCloned,
	}))
}

func TestResolveIdenticalModes(t *testing.T) {
	tests := []struct {
		storage parallel.StorageMode
		exec    parallel.ExecutionMode
	}{
		{parallel.StorageModeCloned, parallel.ExecutionModeIdentical},
		{parallel.StorageModeDistributed, parallel.ExecutionModeDistributed},
		{parallel.StorageModeMasterOnly, parallel.ExecutionModeMasterOnly},
	}
	for _, tt := range tests {
		for _, size := range []int{1, 2, 3} {
			mode, err := Resolve(newComm(t, 0, size), []NamedStorageMode{
				{Name: "InputWorkspace1", StorageMode: tt.storage},
				{Name: "InputWorkspace2", StorageMode: tt.storage},
			}, nil)
			require.NoError(t, err)
			require.Equal(t, tt.exec, mode)
		}
	}
}

func TestResolveMixedModesSingleRank(t *testing.T) {
	mode, err := Resolve(parallel.NewSerialCommunicator(), []NamedStorageMode{
		{Name: "InputWorkspace1", StorageMode: parallel.StorageModeCloned},
		{Name: "InputWorkspace2", StorageMode: parallel.StorageModeDistributed},
	}, DefaultPolicy)
	require.NoError(t, err)
	require.Equal(t, parallel.ExecutionModeSerial, mode)
}

func TestResolveMixedModesMultipleRanks(t *testing.T) {
	storageModes := []NamedStorageMode{
		{Name: "InputWorkspace1", StorageMode: parallel.StorageModeCloned},
		{Name: "InputWorkspace2", StorageMode: parallel.StorageModeDistributed},
	}
	mode, err := Resolve(newComm(t, 1, 2), storageModes, DefaultPolicy)
	require.Error(t, err)
	require.True(t, IsExecutionModeError(err))
	require.Equal(t, parallel.ExecutionModeInvalid, mode)
	require.Equal(t,
		"Algorithm does not support execution with input workspaces of the following storage types: \n"+
			"InputWorkspace1 Cloned\n"+
			"InputWorkspace2 Distributed\n"+
			".",
		err.Error())

	modeErr, ok := err.(*ExecutionModeError)
	require.True(t, ok)
	require.Equal(t, storageModes, modeErr.StorageModes)
}

func TestResolveSerialPolicy(t *testing.T) {
	storageModes := []NamedStorageMode{
		{Name: "InputWorkspace", StorageMode: parallel.StorageModeCloned},
	}
	mode, err := Resolve(parallel.NewSerialCommunicator(), storageModes, SerialPolicy)
	require.NoError(t, err)
	require.Equal(t, parallel.ExecutionModeSerial, mode)

	mode, err = Resolve(newComm(t, 0, 3), storageModes, SerialPolicy)
	require.Error(t, err)
	require.True(t, IsExecutionModeError(err))
	require.Equal(t, parallel.ExecutionModeSerial, mode)
	require.Equal(t, "Parallel::ExecutionMode::Serial is not a valid *parallel* execution mode.", err.Error())
}

func TestResolveUnknownModeRejected(t *testing.T) {
	policy := func(map[string]parallel.StorageMode) parallel.ExecutionMode {
		return parallel.ExecutionMode(42)
	}
	_, err := Resolve(newComm(t, 0, 2), nil, policy)
	require.True(t, IsExecutionModeError(err))
}

func TestCollectStorageModes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := NewMockWorkspace(ctrl)
	first.EXPECT().StorageMode().Return(parallel.StorageModeDistributed)
	second := NewMockWorkspace(ctrl)
	second.EXPECT().StorageMode().Return(parallel.StorageModeCloned)
	output := NewMockWorkspace(ctrl)

	props := NewProperties()
	require.NoError(t, props.Declare("InputWorkspace1", Input, Mandatory))
	require.NoError(t, props.Declare("OutputWorkspace", Output, Mandatory))
	require.NoError(t, props.Declare("MaskWorkspace", Input, Optional))
	require.NoError(t, props.Declare("InputWorkspace2", InOut, Mandatory))
	require.NoError(t, props.SetProperty("InputWorkspace1", first))
	require.NoError(t, props.SetProperty("OutputWorkspace", output))
	require.NoError(t, props.SetProperty("InputWorkspace2", second))

	modes, err := CollectStorageModes(props, newComm(t, 0, 2))
	require.NoError(t, err)
	require.Equal(t, []NamedStorageMode{
		{Name: "InputWorkspace1", StorageMode: parallel.StorageModeDistributed},
		{Name: "InputWorkspace2", StorageMode: parallel.StorageModeCloned},
	}, modes)
}

func TestCollectStorageModesAbsentWorkspace(t *testing.T) {
	props := NewProperties()
	require.NoError(t, props.Declare("InputWorkspace", Input, Mandatory))
	require.NoError(t, props.SetProperty("InputWorkspace", nil))

	modes, err := CollectStorageModes(props, newComm(t, 2, 3))
	require.NoError(t, err)
	require.Equal(t, []NamedStorageMode{
		{Name: "InputWorkspace", StorageMode: parallel.StorageModeMasterOnly},
	}, modes)

	_, err = CollectStorageModes(props, newComm(t, 0, 3))
	require.Error(t, err)
	require.True(t, xerrors.IsInvalidParams(err))
}

func TestCollectStorageModesMandatoryUnset(t *testing.T) {
	props := NewProperties()
	require.NoError(t, props.Declare("InputWorkspace", Input, Mandatory))

	_, err := CollectStorageModes(props, parallel.NewSerialCommunicator())
	require.Error(t, err)
	require.True(t, xerrors.IsInvalidParams(err))
}
