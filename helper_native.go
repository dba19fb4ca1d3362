//go:build !js && !wasip1

package readline

// Helper is the constraint on the helper value of a Readline. Native builds
// use the interactive backend, which needs every editing capability.
type Helper interface {
	EditorHelper
}

func defaultBackend[H Helper](helper H) Backend {
	return NewInteractiveBackend(helper)
}
