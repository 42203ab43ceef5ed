package layout

import "errors"

var (
	// ErrCyclicLayout is returned when resolving an anchor would revisit
	// an anchor already on the current resolution path — a rectangle
	// defined (directly or transitively) relative to itself.
	ErrCyclicLayout = errors.New("layout: cyclic anchor resolution")

	// ErrStaleHandle is returned when a handle does not address a live
	// slot in the engine's arena (wrong engine, or the slot was never
	// populated).
	ErrStaleHandle = errors.New("layout: stale or unknown handle")
)
