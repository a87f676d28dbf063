// Package logging sets up the process logger for the CLI hosts.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	Prefix      = "sweepsnake: "
	LogFileName = "sweepsnake.log"
)

// Setup returns the logger hosts should use.
//
// With debug set, output is appended to dir/LogFileName and the file is
// returned so the caller can close it. Otherwise output goes to stderr,
// or is discarded when quiet is set (a full-screen terminal host owns
// stderr's tty).
func Setup(debug, quiet bool, dir string) (*log.Logger, *os.File, error) {
	if debug {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return log.New(f, Prefix, log.LstdFlags|log.Lmicroseconds), f, nil
	}
	var out io.Writer = os.Stderr
	if quiet {
		out = io.Discard
	}
	return log.New(out, Prefix, log.LstdFlags), nil, nil
}
