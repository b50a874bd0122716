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

	"github.com/uber-go/tally"
	"go.uber.org/zap"

	"github.com/reductionkit/reduce/src/parallel"
	xerrors "github.com/reductionkit/reduce/src/x/errors"
)

var (
	errNilAlgorithm    = errors.New("algorithm must not be nil")
	errNoExecFn        = errors.New("algorithm has no exec function")
	errNoProperties    = errors.New("algorithm has no properties")
	errNilCommunicator = errors.New("executor communicator must not be nil")
)

// ExecContext is what an algorithm sees while executing.
type ExecContext struct {
	Mode         parallel.ExecutionMode
	Communicator parallel.Communicator
	Properties   *Properties
	Logger       *zap.Logger
}

// ExecFn is the body of an algorithm.
type ExecFn func(ctx ExecContext) error

// Algorithm is a named unit of work over workspace properties.
type Algorithm struct {
	Name       string
	Properties *Properties
	// Policy resolves the execution mode, DefaultPolicy when nil.
	Policy Policy
	Exec   ExecFn
}

// Executor executes algorithms on one rank.
type Executor interface {
	// Execute resolves the execution mode of the algorithm, runs it when
	// the mode is valid and tags its outputs with the resulting storage
	// mode. The body is never entered when resolution fails.
	Execute(alg *Algorithm) (Result, error)
}

type executorMetrics struct {
	scope          tally.Scope
	collectFailure tally.Counter
	resolveFailure tally.Counter
	execFailure    tally.Counter
}

func newExecutorMetrics(scope tally.Scope) executorMetrics {
	return executorMetrics{
		scope:          scope,
		collectFailure: scope.Counter("collect-failure"),
		resolveFailure: scope.Counter("resolve-failure"),
		execFailure:    scope.Counter("exec-failure"),
	}
}

func (m executorMetrics) resolveSuccess(mode parallel.ExecutionMode) tally.Counter {
	return m.scope.Tagged(map[string]string{
		"mode": mode.String(),
	}).Counter("resolve-success")
}

type executor struct {
	comm    parallel.Communicator
	logger  *zap.Logger
	metrics executorMetrics
}

// NewExecutor creates a new executor.
func NewExecutor(opts Options) (Executor, error) {
	if opts == nil {
		opts = NewOptions()
	}
	comm := opts.Communicator()
	if comm == nil {
		return nil, xerrors.NewInvalidParamsError(errNilCommunicator)
	}
	iOpts := opts.InstrumentOptions()
	scope := iOpts.MetricsScope().SubScope("algorithm")
	return &executor{
		comm: comm,
		logger: iOpts.Logger().With(
			zap.Int("rank", comm.Rank()),
			zap.Int("size", comm.Size()),
		),
		metrics: newExecutorMetrics(scope),
	}, nil
}

func (e *executor) Execute(alg *Algorithm) (Result, error) {
	failed := Result{State: Failed, Mode: parallel.ExecutionModeInvalid}
	if alg == nil {
		return failed, xerrors.NewInvalidParamsError(errNilAlgorithm)
	}
	if alg.Exec == nil {
		return failed, xerrors.NewInvalidParamsError(errNoExecFn)
	}
	if alg.Properties == nil {
		return failed, xerrors.NewInvalidParamsError(errNoProperties)
	}
	logger := e.logger.With(zap.String("algorithm", alg.Name))

	storageModes, err := CollectStorageModes(alg.Properties, e.comm)
	if err != nil {
		e.metrics.collectFailure.Inc(1)
		logger.Error("could not collect input storage modes", zap.Error(err))
		return failed, fmt.Errorf("algorithm %s: %w", alg.Name, err)
	}

	mode, err := Resolve(e.comm, storageModes, alg.Policy)
	if err != nil {
		e.metrics.resolveFailure.Inc(1)
		logger.Error("could not resolve execution mode",
			zap.Stringer("mode", mode),
			zap.Error(err))
		return Result{State: Failed, Mode: mode}, err
	}
	e.metrics.resolveSuccess(mode).Inc(1)
	logger.Debug("resolved execution mode", zap.Stringer("mode", mode))

	err = alg.Exec(ExecContext{
		Mode:         mode,
		Communicator: e.comm,
		Properties:   alg.Properties,
		Logger:       logger,
	})
	if err != nil {
		e.metrics.execFailure.Inc(1)
		logger.Error("algorithm execution failed", zap.Error(err))
		return Result{State: Failed, Mode: mode}, fmt.Errorf("algorithm %s: %w", alg.Name, err)
	}

	if err := e.tagOutputs(alg.Properties, mode); err != nil {
		logger.Error("could not tag outputs", zap.Error(err))
		return Result{State: Failed, Mode: mode}, fmt.Errorf("algorithm %s: %w", alg.Name, err)
	}
	return Result{State: Succeeded, Mode: mode}, nil
}

// tagOutputs sets the storage mode of every output to the one matching the
// execution mode. MasterOnly outputs do not exist off rank 0 and are reset.
// Serial execution leaves outputs as produced.
func (e *executor) tagOutputs(props *Properties, mode parallel.ExecutionMode) error {
	switch mode {
	case parallel.ExecutionModeSerial, parallel.ExecutionModeInvalid:
		return nil
	}
	storageMode, err := parallel.CorrespondingStorageMode(mode)
	if err != nil {
		return err
	}
	for _, info := range props.Declared() {
		if info.Direction == Input {
			continue
		}
		if mode == parallel.ExecutionModeMasterOnly && e.comm.Rank() != 0 {
			if err := props.Reset(info.Name); err != nil {
				return err
			}
			continue
		}
		ws, err := props.Property(info.Name)
		if err != nil {
			return err
		}
		if ws == nil {
			continue
		}
		index := ws.IndexInfo()
		index.SetStorageMode(storageMode)
		if err := ws.SetIndexInfo(index); err != nil {
			return fmt.Errorf("output property %s: %w", info.Name, err)
		}
	}
	return nil
}
