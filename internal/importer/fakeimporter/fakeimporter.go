// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakeimporter turns a test binary into a stand-in for the importer
// executable. A test's TestMain calls [RunIfRequested]; when the process was
// started with [EnvEnable] set, it behaves like the importer and exits
// instead of running the tests.
//
// Behavior is controlled through environment variables so each test can
// give its runner a different child environment.
package fakeimporter

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// EnvEnable switches the binary into importer mode when set to "1".
	EnvEnable = "FAKE_IMPORTER"
	// EnvGrow appends the given number of bytes to --database-path.
	EnvGrow = "FAKE_IMPORTER_GROW"
	// EnvTruncate truncates --database-path to the given size.
	EnvTruncate = "FAKE_IMPORTER_TRUNCATE"
	// EnvExitCode makes the importer exit with the given status.
	EnvExitCode = "FAKE_IMPORTER_EXIT_CODE"
	// EnvStderr is written to stderr.
	EnvStderr = "FAKE_IMPORTER_STDERR"
	// EnvArgsFile receives the argv, one argument per line.
	EnvArgsFile = "FAKE_IMPORTER_ARGS_FILE"
	// EnvSleep delays the exit by the given duration.
	EnvSleep = "FAKE_IMPORTER_SLEEP"
)

// Env builds a child environment enabling the fake importer with the given
// extra KEY=VALUE settings.
func Env(settings ...string) []string {
	env := append(os.Environ(), EnvEnable+"=1")
	return append(env, settings...)
}

// RunIfRequested runs the fake importer and exits the process when
// [EnvEnable] is set. Otherwise it returns immediately.
func RunIfRequested() {
	if os.Getenv(EnvEnable) != "1" {
		return
	}
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	databasePath := fs.String("database-path", "", "")
	leakPath := fs.String("leak-path", "", "")
	fs.String("context", "", "")
	fs.String("platforms", "", "")
	fs.String("share-date", "", "")
	fs.String("leakers", "", "")
	fs.String("notify-url", "", "")
	fs.Bool("skip", false, "")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if path := os.Getenv(EnvArgsFile); path != "" {
		if err := os.WriteFile(path, []byte(strings.Join(args, "\n")), 0o600); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if _, err := os.Stat(*leakPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if d, err := time.ParseDuration(os.Getenv(EnvSleep)); err == nil {
		time.Sleep(d)
	}

	if n, err := strconv.Atoi(os.Getenv(EnvGrow)); err == nil {
		f, err := os.OpenFile(*databasePath, os.O_APPEND|os.O_WRONLY, 0)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		_, err = f.Write(make([]byte, n))
		f.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if n, err := strconv.ParseInt(os.Getenv(EnvTruncate), 10, 64); err == nil {
		if err := os.Truncate(*databasePath, n); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	fmt.Fprintf(os.Stdout, "Successful Import (%s)\n", *leakPath)
	if msg := os.Getenv(EnvStderr); msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}

	code, _ := strconv.Atoi(os.Getenv(EnvExitCode))
	return code
}
