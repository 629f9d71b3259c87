package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls the rotating log file
type Options struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// New returns a logger writing to a rotating file. The TUI owns stdout, so
// nothing is written to the terminal. The returned closer flushes the file.
func New(opts Options) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, nil, err
	}

	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
	return log.New(w, "ctrack ", log.LstdFlags|log.Lmicroseconds|log.LUTC), w, nil
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
