// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	btclog "github.com/btcsuite/btclog/v2"
	"github.com/jrick/logrotate/rotator"
	"github.com/satoshigraph/blockwalk/blockchain"
	"github.com/satoshigraph/blockwalk/clusterizer"
)

// logRotator rotates the log file once it reaches a set size, and keeps
// a backlog of old log files. It is initialized in initLogging.
var logRotator *rotator.Rotator

// logWriter implements io.Writer so logs can simultaneously be written
// to standard output and the log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// subsystemLoggers maps each subsystem identifier to its associated
// logger, so debuglevel can be re-applied to every subsystem at once.
var subsystemLoggers = map[string]btclog.Logger{
	"BCHN": nil, // blockchain
	"CLUS": nil, // clusterizer
}

// initLogging creates the backend and subsystem loggers, and wires file
// rotation into logFile if one was configured.
func initLogging(logFile string, debugLevel string) error {
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0700); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		r, err := rotator.New(logFile, 10*1024, false, 3)
		if err != nil {
			return fmt.Errorf("creating log rotator: %w", err)
		}
		logRotator = r
	}

	backend := btclog.NewBackend(logWriter{})

	bchnLog := backend.Logger("BCHN")
	clusLog := backend.Logger("CLUS")
	subsystemLoggers["BCHN"] = bchnLog
	subsystemLoggers["CLUS"] = clusLog

	blockchain.UseLogger(bchnLog)
	clusterizer.UseLogger(clusLog)

	return setLogLevels(debugLevel)
}

// setLogLevels re-parses debugLevel and applies it to every known
// subsystem logger.
func setLogLevels(debugLevel string) error {
	level, ok := btclog.LevelFromString(debugLevel)
	if !ok {
		return fmt.Errorf("unknown debug level %q", debugLevel)
	}
	for _, logger := range subsystemLoggers {
		if logger != nil {
			logger.SetLevel(level)
		}
	}
	return nil
}
