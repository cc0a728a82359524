// Package hostlog builds the charmbracelet loggers used by native hosts.
package hostlog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Options configures a host logger.
type Options struct {
	Prefix string
	Level  string // debug, info, warn, error
	File   string // empty writes to stderr
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", opts.Level)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          opts.Prefix,
		Level:           level,
		ReportTimestamp: true,
	}), nil
}

// Open creates the logger described by opts, opening its file if set. The
// returned closer must be called on exit.
func Open(opts Options) (*log.Logger, io.Closer, error) {
	if opts.File == "" {
		l, err := New(os.Stderr, opts)
		return l, nopCloser{}, err
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}
	l, err := New(f, opts)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
