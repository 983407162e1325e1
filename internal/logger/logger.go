// Package logger builds the application's slog logger. Records are written
// by a charmbracelet/log handler to a rotating file, and to stderr as well in
// debug mode.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// Stderr receives a copy of every record in debug mode. Defaults to
	// os.Stderr.
	Stderr   io.Writer
	FilePath string
	Debug    bool
}

// New creates the logger and the closer of its log file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o750); err != nil {
		return nil, nil, err
	}

	file := &lumberjack.Logger{
		Filename:   opts.FilePath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.InfoLevel

	var w io.Writer = file

	if opts.Debug {
		level = log.DebugLevel

		stderr := opts.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}

		w = io.MultiWriter(stderr, file)
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportCaller:    opts.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "pomobar",
	})

	return slog.New(handler), file, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Dump returns a slog attribute holding a spew dump of v.
func Dump(key string, v any) slog.Attr {
	return slog.String(key, spew.Sdump(v))
}
