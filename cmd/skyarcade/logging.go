package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	logger  *log.Logger
	logFile *os.File
	held    *heldWriter
)

// heldWriter keeps log output back while a full screen program owns the
// terminal and writes it out once the program has exited.
type heldWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
	out io.Writer
}

func (w *heldWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *heldWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	//nolint:errcheck // Best-effort, logs only
	w.buf.WriteTo(w.out)
}

// setupLogging builds the process logger from the global flags.
func setupLogging(command string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("--log-file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "sky-arcade",
		Level:           level,
	}).With("cmd", command)
	return nil
}

// tuiLogger returns the logger to hand to full screen programs. Without a
// log file their output is held and written to stderr by flushTUILogs.
func tuiLogger() *log.Logger {
	if logFile != nil {
		return logger
	}
	if held == nil {
		held = &heldWriter{out: os.Stderr}
	}
	l := logger.With()
	l.SetOutput(held)
	return l
}

func flushTUILogs() {
	if held != nil {
		held.Flush()
	}
}

func closeLogs() {
	flushTUILogs()
	if logFile != nil {
		//nolint:errcheck // Closing on exit
		logFile.Close()
	}
}
