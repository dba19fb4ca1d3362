package readline

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Backend is a line input mechanism used by Readline.
type Backend interface {
	// Readline writes prompt without a newline and blocks until one line or
	// signal is available.
	Readline(prompt string) Result
	LoadHistory(path string) error
	SaveHistory(path string) error
	AddHistoryEntry(entry string) error
	// Persistent reports whether history is stored in files.
	Persistent() bool
	Close() error
}

// Readline reads lines through a Backend chosen at construction.
// It is not safe for concurrent use.
type Readline[H Helper] struct {
	helper  H
	backend Backend
}

// New returns a Readline using the backend of the build target: the
// interactive editor on native builds, the basic stdin reader on js and
// wasip1. It never fails; the terminal is opened by the first read.
func New[H Helper](helper H) *Readline[H] {
	return NewWithBackend(helper, defaultBackend(helper))
}

// NewWithBackend returns a Readline reading through backend.
func NewWithBackend[H Helper](helper H, backend Backend) *Readline[H] {
	return &Readline[H]{
		helper:  helper,
		backend: backend,
	}
}

// Helper returns the helper given at construction.
func (r *Readline[H]) Helper() H {
	return r.helper
}

// Backend returns the backend lines are read through.
func (r *Readline[H]) Backend() Backend {
	return r.backend
}

// LoadHistory appends the entries stored in path to the history. A missing
// file is not an error.
func (r *Readline[H]) LoadHistory(path string) error {
	if !r.backend.Persistent() {
		return r.backend.LoadHistory(path)
	}
	expanded, err := expandHistoryPath(path)
	if err != nil {
		return errors.Wrap(err, "failed to load history")
	}
	return errors.Wrapf(r.backend.LoadHistory(expanded), "failed to load history from %s", expanded)
}

// SaveHistory writes the history to path. When path does not exist yet its
// missing parent directories are created first.
func (r *Readline[H]) SaveHistory(path string) error {
	if !r.backend.Persistent() {
		return r.backend.SaveHistory(path)
	}
	expanded, err := expandHistoryPath(path)
	if err != nil {
		return errors.Wrap(err, "failed to save history")
	}
	if _, err := os.Stat(expanded); err != nil {
		if err := os.MkdirAll(filepath.Dir(expanded), 0750); err != nil {
			return errors.Wrap(err, "failed to create history directory")
		}
	}
	return errors.Wrapf(r.backend.SaveHistory(expanded), "failed to save history to %s", expanded)
}

// AddHistoryEntry appends entry to the history.
func (r *Readline[H]) AddHistoryEntry(entry string) error {
	return errors.Wrap(r.backend.AddHistoryEntry(entry), "failed to add history entry")
}

// Readline shows prompt and reads one line. Every outcome, including
// failures, is reported through the returned Result.
func (r *Readline[H]) Readline(prompt string) Result {
	return r.backend.Readline(prompt)
}

// Close releases the resources of the backend. It is safe to call Close
// more than once.
func (r *Readline[H]) Close() error {
	return r.backend.Close()
}
