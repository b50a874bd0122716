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

package log

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuildLoggerWritesToFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "logtest")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "out.log")
	cfg := Configuration{
		File:   file,
		Level:  "warn",
		Fields: map[string]interface{}{"rank": 2},
	}

	logger, err := cfg.BuildLogger()
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger.Info("dropped")
	logger.Warn("kept", zap.String("property", "InputWorkspace"))
	_ = logger.Sync()

	b, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	out := string(b)
	require.False(t, strings.Contains(out, "dropped"))
	require.True(t, strings.Contains(out, "kept"))
	require.True(t, strings.Contains(out, "\"rank\":2"))
	require.True(t, strings.Contains(out, "InputWorkspace"))
}

func TestBuildLoggerInvalidLevel(t *testing.T) {
	_, err := Configuration{Level: "loud"}.BuildLogger()
	require.Error(t, err)
}
