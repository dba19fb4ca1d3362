package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// historyHeader marks files whose entries are escaped. Files without it are
// read one verbatim entry per line.
const historyHeader = "#V2"

// maxHistoryLine bounds a single history file line.
const maxHistoryLine = 1024 * 1024

// HistoryConfig holds history limits.
type HistoryConfig struct {
	MaxEntries  int   // Maximum number of entries to keep in memory (default: 1000)
	MaxFileSize int64 // Maximum file size in bytes before rotation (default: 1MB)
	MaxBackups  int   // Maximum number of backup files to keep (default: 3)
}

// DefaultHistoryConfig returns the default history limits.
func DefaultHistoryConfig() *HistoryConfig {
	return &HistoryConfig{
		MaxEntries:  1000,
		MaxFileSize: 1024 * 1024,
		MaxBackups:  3,
	}
}

// History is an ordered list of submitted lines, most recent last.
//
// Empty entries and consecutive duplicates are ignored. When the list grows
// past MaxEntries the oldest entries are dropped.
type History struct {
	config  *HistoryConfig
	entries []string
}

// NewHistory creates an empty history with the given limits.
func NewHistory(config *HistoryConfig) *History {
	if config == nil {
		config = DefaultHistoryConfig()
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = 1000
	}
	if config.MaxFileSize <= 0 {
		config.MaxFileSize = 1024 * 1024
	}
	if config.MaxBackups < 0 {
		config.MaxBackups = 3
	}
	return &History{
		config:  config,
		entries: make([]string, 0),
	}
}

// Add appends entry and reports whether it was recorded.
func (h *History) Add(entry string) bool {
	if entry == "" {
		return false
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		return false
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.config.MaxEntries {
		h.entries = h.entries[len(h.entries)-h.config.MaxEntries:]
	}
	return true
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []string {
	return append([]string{}, h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear removes all entries.
func (h *History) Clear() {
	h.entries = []string{}
}

// Load appends the entries stored in path. A missing file is not an error.
func (h *History) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxHistoryLine)

	escaped := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if lineNo == 1 && line == historyHeader {
			escaped = true
			continue
		}
		if !utf8.ValidString(line) {
			return &HistoryParseError{Path: path, Line: lineNo, Err: ErrInvalidUTF8}
		}
		if escaped {
			line, err = unescapeHistoryEntry(line)
			if err != nil {
				return &HistoryParseError{Path: path, Line: lineNo, Err: err}
			}
		}
		h.Add(line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	return nil
}

// Save writes the history to path, rotating an oversized existing file
// first. The parent directory must exist.
func (h *History) Save(path string) (err error) {
	if err := h.rotateIfNeeded(path); err != nil {
		return fmt.Errorf("failed to rotate history file: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close history file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(file)
	if _, err := fmt.Fprintln(w, historyHeader); err != nil {
		return fmt.Errorf("failed to write history header: %w", err)
	}
	for _, entry := range h.entries {
		if _, err := fmt.Fprintln(w, escapeHistoryEntry(entry)); err != nil {
			return fmt.Errorf("failed to write history entry: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// rotateIfNeeded moves path to path.1 when it has grown past MaxFileSize,
// shifting older backups up to MaxBackups.
func (h *History) rotateIfNeeded(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.Size() < h.config.MaxFileSize || h.config.MaxBackups <= 0 {
		// Small enough, or no backups wanted: the file is simply overwritten
		return nil
	}

	oldest := path + "." + strconv.Itoa(h.config.MaxBackups)
	if err := os.Remove(oldest); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove oldest backup: %w", err)
	}

	for i := h.config.MaxBackups - 1; i >= 1; i-- {
		oldFile := path + "." + strconv.Itoa(i)
		newFile := path + "." + strconv.Itoa(i+1)
		if _, err := os.Stat(oldFile); err == nil {
			if err := os.Rename(oldFile, newFile); err != nil {
				return fmt.Errorf("failed to rotate backup %d: %w", i, err)
			}
		}
	}

	if err := os.Rename(path, path+".1"); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	return nil
}

func escapeHistoryEntry(entry string) string {
	if !strings.ContainsAny(entry, "\\\n\r") {
		return entry
	}
	var b strings.Builder
	for _, r := range entry {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unescapeHistoryEntry(line string) (string, error) {
	if !strings.Contains(line, `\`) {
		return line, nil
	}
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(line) {
			return "", errInvalidEscape
		}
		i++
		switch line[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			return "", errInvalidEscape
		}
	}
	return b.String(), nil
}
