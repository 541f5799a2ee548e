// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/satoshigraph/blockwalk/chainutil"
	flags "github.com/jessevdk/go-flags"
)

var (
	blockwalkHomeDir  = chainutil.AppDataDir("blockwalk", false)
	defaultConfigFile = filepath.Join(blockwalkHomeDir, "blockwalk.conf")
	defaultLogFile    = filepath.Join(blockwalkHomeDir, "blockwalk.log")
)

// config defines the configuration options for blockwalk.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	BlocksDir   string `short:"b" long:"blocksdir" description:"Directory holding blk*.dat files" required:"true"`
	Out         string `short:"o" long:"out" description:"Path to write the clustering result to (default stdout)"`
	LogFile     string `long:"logfile" description:"Path to write logs to"`
	Debug       string `long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(blockwalkHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//     or the version flag
//  3. Load configuration file overwriting defaults with any specified
//     options
//  4. Parse CLI options again to ensure they take precedence
func loadConfig() (*config, error) {
	cfg := config{
		ConfigFile: defaultConfigFile,
		LogFile:    defaultLogFile,
		Debug:      "info",
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			return nil, err
		}
	}

	appName := filepath.Base(os.Args[0])
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", version())
		os.Exit(0)
	}

	parser := flags.NewParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			fmt.Fprintf(os.Stderr, "error parsing config file: %v\n", err)
			return nil, err
		}
	}

	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			fmt.Fprintf(os.Stderr, "%s: use -h to show usage\n", appName)
		}
		return nil, err
	}

	if cfg.BlocksDir == "" {
		return nil, fmt.Errorf("blocksdir is required")
	}
	cfg.BlocksDir = cleanAndExpandPath(cfg.BlocksDir)
	if cfg.LogFile != "" {
		cfg.LogFile = cleanAndExpandPath(cfg.LogFile)
	}

	return &cfg, nil
}
