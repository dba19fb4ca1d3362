//go:build js || wasip1

package main

import (
	"fmt"
	"io"

	"github.com/nao1215/readline"
)

func newBackend(name string, _ replHelper, stdin io.Reader, stdout io.Writer, _ string, _ int) (readline.Backend, error) {
	switch name {
	case "auto", "basic":
		return readline.NewBasicBackend(stdin, stdout), nil
	case "interactive":
		return nil, fmt.Errorf("the interactive backend is not available on this platform")
	default:
		return nil, fmt.Errorf("unknown backend %q (want auto, basic or interactive)", name)
	}
}
