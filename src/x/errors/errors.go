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

// Package errors provides error kinds shared across packages.
package errors

import (
	"bytes"
	"errors"
)

type invalidParamsError struct {
	error
}

// NewInvalidParamsError wraps an error to mark it as caused by invalid
// parameters supplied by the caller.
func NewInvalidParamsError(err error) error {
	if err == nil {
		return nil
	}
	return invalidParamsError{err}
}

func (e invalidParamsError) Unwrap() error {
	return e.error
}

// IsInvalidParams returns true if the error or any error it wraps is an
// invalid params error.
func IsInvalidParams(err error) bool {
	var target invalidParamsError
	return errors.As(err, &target)
}

type outOfRangeError struct {
	error
}

// NewOutOfRangeError wraps an error to mark it as an index or identifier
// lookup beyond bounds.
func NewOutOfRangeError(err error) error {
	if err == nil {
		return nil
	}
	return outOfRangeError{err}
}

func (e outOfRangeError) Unwrap() error {
	return e.error
}

// IsOutOfRange returns true if the error or any error it wraps is an out of
// range error.
func IsOutOfRange(err error) bool {
	var target outOfRangeError
	return errors.As(err, &target)
}

type unsupportedError struct {
	error
}

// NewUnsupportedError wraps an error to mark it as an operation that is not
// supported for the given input.
func NewUnsupportedError(err error) error {
	if err == nil {
		return nil
	}
	return unsupportedError{err}
}

func (e unsupportedError) Unwrap() error {
	return e.error
}

// IsUnsupported returns true if the error or any error it wraps is an
// unsupported operation error.
func IsUnsupported(err error) bool {
	var target unsupportedError
	return errors.As(err, &target)
}

// FirstError returns the first non nil error.
func FirstError(errs ...error) error {
	for i := range errs {
		if errs[i] != nil {
			return errs[i]
		}
	}
	return nil
}

// MultiError is an immutable error that packages a list of errors.
type MultiError struct {
	err    error // optimization for single error case
	errors []error
}

// NewMultiError creates a new MultiError object.
func NewMultiError() MultiError {
	return MultiError{}
}

// Empty returns true if the MultiError has no errors.
func (e MultiError) Empty() bool {
	return e.err == nil
}

func (e MultiError) Error() string {
	if e.err == nil {
		return ""
	}
	if len(e.errors) == 0 {
		return e.err.Error()
	}
	var b bytes.Buffer
	for _, err := range e.errors {
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	b.WriteString(e.err.Error())
	return b.String()
}

// Errors returns all the errors in the order they were added.
func (e MultiError) Errors() []error {
	if e.err == nil {
		return nil
	}
	res := make([]error, 0, len(e.errors)+1)
	res = append(res, e.errors...)
	return append(res, e.err)
}

// Add adds an error returns a new MultiError object.
func (e MultiError) Add(err error) MultiError {
	if err == nil {
		return e
	}
	me := e
	if me.err == nil {
		me.err = err
		return me
	}
	me.errors = append(me.errors, me.err)
	me.err = err
	return me
}

// FinalError returns all concatenated error messages if any.
func (e MultiError) FinalError() error {
	if e.err == nil {
		return nil
	}
	if len(e.errors) == 0 {
		return e.err
	}
	return e
}

// LastError returns the last received error if any.
func (e MultiError) LastError() error {
	if e.err == nil {
		return nil
	}
	return e.err
}

// NumErrors returns the total number of errors.
func (e MultiError) NumErrors() int {
	if e.err == nil {
		return 0
	}
	return len(e.errors) + 1
}
