package runner

import "github.com/vovakirdan/florian-runner/internal/core"

// Dispatch applies one logical input action to the world. Actions that the
// game does not consume are ignored and reported as false.
func Dispatch(w *World, a core.Action) bool {
	switch a {
	case core.ActionPrimary:
		w.PrimaryAction()
		return true
	case core.ActionRestart:
		w.Restart()
		return true
	default:
		return false
	}
}
