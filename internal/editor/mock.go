package editor

import "io"

// MockTerminal implements Terminal with a scripted input sequence.
//
// It simulates a terminal without requiring one, which lets tests drive
// multi-line input, history navigation and completion deterministically.
// Reading past the end of the script returns io.EOF.
type MockTerminal struct {
	input        []rune // Pre-configured input sequence
	inputPos     int    // Current position in the input sequence
	rawMode      bool   // Track raw mode state for verification
	closed       bool
	terminalSize [2]int // Fixed terminal dimensions [width, height]
}

// NewMockTerminal returns a terminal that replays input.
func NewMockTerminal(input string) *MockTerminal {
	return &MockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

// NewMockTerminalRunes returns a terminal that replays the given runes
// verbatim, including invalid ones such as utf8.RuneError.
func NewMockTerminalRunes(input []rune) *MockTerminal {
	m := NewMockTerminal("")
	m.input = append([]rune(nil), input...)
	return m
}

func (m *MockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *MockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

// IsRaw reports whether the terminal is currently in raw mode.
func (m *MockTerminal) IsRaw() bool {
	return m.rawMode
}

// IsClosed reports whether Close was called.
func (m *MockTerminal) IsClosed() bool {
	return m.closed
}

// Remaining returns the number of unread runes.
func (m *MockTerminal) Remaining() int {
	return len(m.input) - m.inputPos
}

func (m *MockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *MockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *MockTerminal) Close() error {
	m.closed = true
	return nil
}
