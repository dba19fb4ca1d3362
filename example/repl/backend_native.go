//go:build !js && !wasip1

package main

import (
	"fmt"
	"io"

	"github.com/nao1215/readline"
)

func newBackend(name string, helper replHelper, stdin io.Reader, stdout io.Writer, theme string, maxHistory int) (readline.Backend, error) {
	switch name {
	case "basic":
		return readline.NewBasicBackend(stdin, stdout), nil
	case "auto", "interactive":
		return readline.NewInteractiveBackend(helper,
			readline.WithInput(stdin),
			readline.WithOutput(stdout),
			readline.WithTheme(theme),
			readline.WithMaxHistory(maxHistory),
		), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want auto, basic or interactive)", name)
	}
}
