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
	"log"
	"os"

	"github.com/pborman/getopt"
	"go.uber.org/zap"

	"github.com/reductionkit/reduce/src/indexing"
	xconfig "github.com/reductionkit/reduce/src/x/config"
)

func main() {
	var (
		optConfigFile = getopt.StringLong("config-file", 'f', "", "Configuration file [e.g. partition.yml]")
		optRanks      = getopt.IntLong("ranks", 'r', 0, "Number of ranks, overrides the configured communicator size")
		optExtract    = getopt.StringLong("extract", 'e', "", "Indices to extract before scattering [e.g. 4,0-3]")
		optGroups     = getopt.StringLong("groups", 'g', "", "Index lists grouped into new spectra [e.g. 0-1;2;3-4]")
		optDump       = getopt.BoolLong("dump-config", 'd', "Print the loaded configuration")
	)
	getopt.Parse()

	if *optConfigFile == "" || *optRanks < 0 {
		getopt.Usage()
		os.Exit(1)
	}

	var cfg Configuration
	if err := xconfig.LoadFile(&cfg, *optConfigFile, xconfig.Options{}); err != nil {
		log.Fatalf("unable to load config from %s: %v", *optConfigFile, err)
	}

	rawLogger, err := cfg.Logging.BuildLogger()
	if err != nil {
		log.Fatalf("unable to create logger: %v", err)
	}
	defer rawLogger.Sync() // nolint: errcheck
	logger := rawLogger.Sugar()

	if *optDump {
		if err := xconfig.Dump(cfg, os.Stdout); err != nil {
			logger.Fatalf("unable to dump config: %v", err)
		}
	}

	opts := partitionOptions{ranks: *optRanks}
	if *optExtract != "" {
		if opts.extract, err = indexing.ParseIndexList(*optExtract); err != nil {
			logger.Fatalf("invalid extract list: %v", err)
		}
	}
	if *optGroups != "" {
		if opts.groups, err = parseGroups(*optGroups); err != nil {
			logger.Fatalf("invalid groups: %v", err)
		}
	}

	results, err := partitionIndex(cfg, opts)
	if err != nil {
		logger.Fatalf("unable to partition index: %v", err)
	}
	rawLogger.Info("partitioned index", zap.Int("ranks", len(results)))

	if err := writeResults(os.Stdout, results); err != nil {
		logger.Fatalf("unable to write results: %v", err)
	}
}
