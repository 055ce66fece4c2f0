// Package debug provides opt-in diagnostics for programs hosting pickers.
// The library packages are silent; hosts log lifecycle events through the
// logger returned here when debug mode is enabled.
package debug

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/christianampe/pick/config"
)

// Enabled returns true if debug mode is active (PICK_DEBUG=1).
func Enabled() bool {
	return os.Getenv("PICK_DEBUG") == "1"
}

// NewLogger returns a logger writing to a size-rotated file in the config
// directory. When debug mode is off, the logger discards everything, so
// callers can log unconditionally.
func NewLogger() *log.Logger {
	if !Enabled() {
		return log.New(io.Discard, "", 0)
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(config.Dir(), "debug.log"),
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}
	return log.New(w, "", log.LstdFlags|log.Lmicroseconds)
}
