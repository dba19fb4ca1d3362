//go:build js || wasip1

package readline

import "os"

// Helper is the constraint on the helper value of a Readline. Restricted
// targets only have the basic backend, which ignores the helper.
type Helper interface {
	any
}

func defaultBackend[H Helper](H) Backend {
	return NewBasicBackend(os.Stdin, os.Stdout)
}
