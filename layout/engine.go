package layout

import "github.com/latticeterm/tuicore/arena"

// AnchorHandle addresses an anchor stored in an Engine.
type AnchorHandle = arena.Handle[anchorRecord]

// RectHandle names a rectangle by the two anchors that define its
// upper-left and down-right corners. It is not itself stored in the
// arena; it is a pair of handles, resolved each time a rectangle's
// corners are needed.
type RectHandle struct {
	UpperLeft AnchorHandle
	DownRight AnchorHandle
}

// anchorRecord is an anchor together with the rectangle it is relative
// to, or nil if it is relative to the engine's viewport.
type anchorRecord struct {
	anchor     Anchor
	relativeTo *RectHandle
}

// Engine resolves anchors, possibly nested arbitrarily deep through
// rectangles defined by other anchors, down to concrete coordinates
// against a root viewport. Anchors are arena-backed so handles stay
// cheap and stale references are detected rather than silently
// misresolved.
type Engine struct {
	anchors  *arena.Arena[anchorRecord]
	viewport Rectangle
}

// NewEngine creates an Engine whose root viewport is the given
// rectangle, typically NewRectangleFromWindowSize for the current
// terminal size.
func NewEngine(viewport Rectangle) *Engine {
	return &Engine{anchors: arena.New[anchorRecord](), viewport: viewport}
}

// AddAnchor registers an anchor resolved relative to the engine's root
// viewport.
func (e *Engine) AddAnchor(anchor Anchor) AnchorHandle {
	return e.anchors.Insert(anchorRecord{anchor: anchor})
}

// AddAnchorIn registers an anchor resolved relative to the rectangle
// named by relativeTo.
func (e *Engine) AddAnchorIn(anchor Anchor, relativeTo RectHandle) AnchorHandle {
	return e.anchors.Insert(anchorRecord{anchor: anchor, relativeTo: &relativeTo})
}

// AddRect names the rectangle whose corners are the coordinates of the
// upperLeft and downRight anchors. The rectangle itself is not stored;
// RectHandle is just upperLeft and downRight kept together so later
// anchors can be defined relative to it.
func (e *Engine) AddRect(upperLeft, downRight AnchorHandle) RectHandle {
	return RectHandle{UpperLeft: upperLeft, DownRight: downRight}
}

// Reparent changes an existing anchor to resolve relative to a
// different rectangle (or, with relativeTo nil, back to the root
// viewport). This is how a widget can be moved to dock into a different
// container at runtime without every anchor that was built relative to
// it needing to be re-registered. It is also the only way to introduce
// a cycle into the anchor graph, since AddAnchorIn can only reference
// rectangles built from handles that already exist; GetCoords still
// detects and rejects one.
func (e *Engine) Reparent(handle AnchorHandle, relativeTo *RectHandle) error {
	rec := e.anchors.GetMut(handle)
	if rec == nil {
		return ErrStaleHandle
	}
	rec.relativeTo = relativeTo
	return nil
}

// UpdateViewport replaces the root viewport, e.g. after a terminal
// resize. Every anchor resolves against the new viewport on its next
// GetCoords call; nothing needs to be re-registered.
func (e *Engine) UpdateViewport(viewport Rectangle) {
	e.viewport = viewport
}

// GetCoords resolves handle to concrete coordinates, recursively
// resolving the rectangle it is relative to (if any). Returns
// ErrCyclicLayout if resolution would revisit an anchor already on the
// current path, and ErrStaleHandle if handle (or any handle reached
// while resolving it) does not address a live anchor.
func (e *Engine) GetCoords(handle AnchorHandle) (Cords, error) {
	return e.resolve(handle, map[int]bool{})
}

func (e *Engine) resolve(handle AnchorHandle, visited map[int]bool) (Cords, error) {
	idx := handle.Index()
	if visited[idx] {
		return Cords{}, ErrCyclicLayout
	}
	visited[idx] = true
	defer delete(visited, idx)

	rec, ok := e.anchors.Get(handle)
	if !ok {
		return Cords{}, ErrStaleHandle
	}

	rect := e.viewport
	if rec.relativeTo != nil {
		ul, err := e.resolve(rec.relativeTo.UpperLeft, visited)
		if err != nil {
			return Cords{}, err
		}
		dr, err := e.resolve(rec.relativeTo.DownRight, visited)
		if err != nil {
			return Cords{}, err
		}
		rect = NewRectangle(ul, dr)
	}

	a := rec.anchor
	col := resolveAxis(rect.UpperLeft.Col, rect.DownRight.Col, e.viewport.DownRight.Col, a.ColOffset, a.FromRight)
	row := resolveAxis(rect.UpperLeft.Row, rect.DownRight.Row, e.viewport.DownRight.Row, a.RowOffset, a.FromDown)
	return Cords{Col: col, Row: row}, nil
}

// resolveAxis resolves one axis of an anchor against one axis of its
// enclosing rectangle. fromEnd is the anchor's direction flag for this
// axis (FromRight for the column, FromDown for the row): when set, the
// offset is measured back from rectDR, otherwise forward from rectUL,
// for Absolute and Relative offsets alike.
//
// Every result is clamped against sizeDR, the engine's root viewport
// extent on this axis, never against the (possibly nested) enclosing
// rectangle's own extent.
func resolveAxis(rectUL, rectDR, sizeDR int, offset Offset, fromEnd bool) int {
	switch {
	case offset.kind == offsetAbsolute && !fromEnd:
		return clampInt(saturatingAddSigned(rectUL, offset.absolute), 0, sizeDR)

	case offset.kind == offsetAbsolute && fromEnd:
		return clampInt(saturatingAddSigned(rectDR, -offset.absolute), 0, sizeDR)

	case offset.kind == offsetRelative && !fromEnd:
		span := float64(saturatingSub(rectDR, rectUL))
		v := float64(rectUL) + span*offset.relative
		return int(clampFloat(v, 0, float64(sizeDR)))

	default: // offset.kind == offsetRelative && fromEnd
		span := float64(saturatingSub(rectDR, rectUL))
		v := float64(rectUL) + span*(1-offset.relative)
		return int(clampFloat(v, 0, float64(sizeDR)))
	}
}

func saturatingAddSigned(a, b int) int {
	r := a + b
	if r < 0 {
		return 0
	}
	return r
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
