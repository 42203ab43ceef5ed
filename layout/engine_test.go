package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeterm/tuicore/layout"
)

func viewport80x24() layout.Rectangle {
	return layout.NewRectangleFromWindowSize(80, 24)
}

func TestEngine_AbsFromUpperLeft_AgainstViewport(t *testing.T) {
	e := layout.NewEngine(viewport80x24())
	h := e.AddAnchor(layout.AbsFromUpperLeft(5, 5))

	got, err := e.GetCoords(h)
	require.NoError(t, err)
	assert.Equal(t, layout.Cords{Col: 5, Row: 5}, got)
}

func TestEngine_RelFromDownRight_AgainstViewport(t *testing.T) {
	e := layout.NewEngine(viewport80x24())
	h := e.AddAnchor(layout.RelFromDownRight(0.5, 0.5))

	got, err := e.GetCoords(h)
	require.NoError(t, err)
	assert.Equal(t, layout.Cords{Col: 39, Row: 11}, got)
}

func TestEngine_RelFromDownRight_AgainstNestedRectangle(t *testing.T) {
	e := layout.NewEngine(viewport80x24())
	ul := e.AddAnchor(layout.AbsFromUpperLeft(5, 5))
	dr := e.AddAnchor(layout.AbsFromUpperLeft(39, 11))
	rect := e.AddRect(ul, dr)

	inner := e.AddAnchorIn(layout.RelFromDownRight(0.5, 0.5), rect)

	got, err := e.GetCoords(inner)
	require.NoError(t, err)
	assert.Equal(t, layout.Cords{Col: 22, Row: 8}, got)
}

func TestEngine_UpdateViewport_ReresolvesExistingAnchors(t *testing.T) {
	e := layout.NewEngine(viewport80x24())
	h := e.AddAnchor(layout.RelFromDownRight(0.5, 0.5))

	got, err := e.GetCoords(h)
	require.NoError(t, err)
	assert.Equal(t, layout.Cords{Col: 39, Row: 11}, got)

	e.UpdateViewport(layout.NewRectangleFromWindowSize(100, 30))

	got, err = e.GetCoords(h)
	require.NoError(t, err)
	assert.Equal(t, layout.Cords{Col: 49, Row: 14}, got)
}

func TestEngine_AbsFromDownRight_ClampsToZero(t *testing.T) {
	e := layout.NewEngine(viewport80x24())
	h := e.AddAnchor(layout.AbsFromDownRight(1000, 1000))

	got, err := e.GetCoords(h)
	require.NoError(t, err)
	assert.Equal(t, layout.Cords{Col: 0, Row: 0}, got)
}

func TestEngine_AbsFromUpperLeft_ClampsToViewportExtent(t *testing.T) {
	e := layout.NewEngine(viewport80x24())
	h := e.AddAnchor(layout.AbsFromUpperLeft(1000, 1000))

	got, err := e.GetCoords(h)
	require.NoError(t, err)
	assert.Equal(t, layout.Cords{Col: 79, Row: 23}, got)
}

func TestEngine_RelativeOffset_ClampsAgainstRootViewport_NotNestedRect(t *testing.T) {
	// A relative offset of 2 on an anchor nested inside a (0,0)-(10,10)
	// rectangle lands at 20, past the rectangle's edge. It clamps only
	// against the engine's own root viewport (79, 23), not the nested
	// rectangle's extent, per the resolution rule this engine preserves.
	e := layout.NewEngine(viewport80x24())
	ul := e.AddAnchor(layout.AbsFromUpperLeft(0, 0))
	dr := e.AddAnchor(layout.AbsFromUpperLeft(10, 10))
	rect := e.AddRect(ul, dr)

	inner := e.AddAnchorIn(layout.RelFromUpperLeft(2, 2), rect)

	got, err := e.GetCoords(inner)
	require.NoError(t, err)
	assert.Equal(t, layout.Cords{Col: 20, Row: 20}, got)
}

func TestEngine_StaleHandle_ReturnsError(t *testing.T) {
	e1 := layout.NewEngine(viewport80x24())
	e2 := layout.NewEngine(viewport80x24())
	h := e1.AddAnchor(layout.AbsFromUpperLeft(1, 1))

	_, err := e2.GetCoords(h)
	assert.ErrorIs(t, err, layout.ErrStaleHandle)
}

func TestEngine_CyclicRectangle_ReturnsError(t *testing.T) {
	e := layout.NewEngine(viewport80x24())

	a := e.AddAnchor(layout.AbsFromUpperLeft(0, 0))
	b := e.AddAnchor(layout.AbsFromUpperLeft(10, 10))
	rectAB := e.AddRect(a, b)
	c := e.AddAnchorIn(layout.RelFromUpperLeft(0.5, 0.5), rectAB)

	// Reparent b to resolve relative to a rectangle built from c, closing
	// the cycle: c -> rectAB -> b -> rect(c, c) -> c.
	rectCC := e.AddRect(c, c)
	require.NoError(t, e.Reparent(b, &rectCC))

	_, err := e.GetCoords(c)
	assert.ErrorIs(t, err, layout.ErrCyclicLayout)
}

func TestEngine_Reparent_StaleHandle_ReturnsError(t *testing.T) {
	e1 := layout.NewEngine(viewport80x24())
	e2 := layout.NewEngine(viewport80x24())
	h := e1.AddAnchor(layout.AbsFromUpperLeft(1, 1))

	err := e2.Reparent(h, nil)
	assert.ErrorIs(t, err, layout.ErrStaleHandle)
}
