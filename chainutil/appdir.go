// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2025 The blockwalk developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppDataDir returns an operating system specific directory to be used
// for storing application data for an application with the given name.
//
//   - Windows: %LOCALAPPDATA%\<AppName> (or %APPDATA%\<AppName> when
//     roaming is requested)
//   - macOS: $HOME/Library/Application Support/<AppName>
//   - Plan9: $home/<lowercase AppName>
//   - Unix: $HOME/.<lowercase AppName>
//
// A leading dot is stripped from AppName on all but Unix so the returned
// path looks native.
func AppDataDir(appName string, roaming bool) string {
	if appName == "" || appName == "." {
		return "."
	}

	appName = strings.TrimPrefix(appName, ".")
	appNameUpper := appName
	appNameLower := appName
	if c := appName[0]; c >= 'a' && c <= 'z' {
		appNameUpper = string(c-32) + appName[1:]
	} else if c >= 'A' && c <= 'Z' {
		appNameLower = string(c+32) + appName[1:]
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if roaming || appData == "" {
			appData = os.Getenv("APPDATA")
		}
		if appData != "" {
			return filepath.Join(appData, appNameUpper)
		}
		return filepath.Join(homeDir, appNameUpper)

	case "darwin":
		if homeDir != "" {
			return filepath.Join(homeDir, "Library", "Application Support", appNameUpper)
		}

	case "plan9":
		return filepath.Join(homeDir, appNameLower)

	default:
		if homeDir != "" {
			return filepath.Join(homeDir, "."+appNameLower)
		}
	}

	return filepath.Join(".", "."+appNameLower)
}
