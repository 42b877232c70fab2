package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellOpen(t *testing.T) {
	var c Cell
	assert.True(t, c.Hidden())
	assert.Equal(t, -1, c.Hint())

	assert.Equal(t, Opened, c.open(true))
	assert.False(t, c.Hidden())
	assert.Equal(t, 0, c.Hint())
	assert.Equal(t, None, c.open(true), "second open")
	assert.Equal(t, None, c.open(false), "second open")
}

func TestCellOpenMine(t *testing.T) {
	var clicked, revealed Cell
	clicked.placeMine()
	revealed.placeMine()

	assert.Equal(t, Exploded, clicked.open(true))
	assert.True(t, clicked.IsExploded())
	assert.Equal(t, Explosion, clicked.View())
	assert.Equal(t, -1, clicked.Hint())

	assert.Equal(t, Exploded, revealed.open(false))
	assert.False(t, revealed.IsExploded())
	assert.Equal(t, Mine, revealed.View())
}

func TestCellFlaggedIgnoresClick(t *testing.T) {
	var c Cell
	c.toggleMark()
	assert.Equal(t, None, c.open(true))
	assert.True(t, c.Hidden())

	assert.Equal(t, Opened, c.open(false))
	assert.Equal(t, Mistake, c.View())
	assert.Equal(t, -1, c.Hint(), "flagged cells have no hint")
}

func TestCellMarkCycle(t *testing.T) {
	var c Cell
	assert.Equal(t, Marked, c.toggleMark())
	assert.Equal(t, MarkFlag, c.Mark())
	assert.Equal(t, Flag, c.View())

	assert.Equal(t, Unmarked, c.toggleMark())
	assert.Equal(t, MarkUncertain, c.Mark())
	assert.Equal(t, Question, c.View())

	assert.Equal(t, None, c.toggleMark())
	assert.Equal(t, MarkNone, c.Mark())
	assert.Equal(t, Hidden, c.View())
}

func TestCellToggleMarkOpen(t *testing.T) {
	var c Cell
	c.open(true)
	assert.Equal(t, None, c.toggleMark())
	assert.Equal(t, MarkNone, c.Mark())
}

func TestCellUncertainOpens(t *testing.T) {
	var c Cell
	c.toggleMark()
	c.toggleMark()
	c.setHint(3)
	assert.Equal(t, Opened, c.open(true))
	assert.Equal(t, MarkNone, c.Mark())
	assert.Equal(t, View(3), c.View())
	assert.Equal(t, 3, c.Hint())
}

func TestCellForceMark(t *testing.T) {
	var c Cell
	c.placeMine()
	c.toggleMark()
	c.toggleMark()
	c.forceMark()
	assert.Equal(t, MarkFlag, c.Mark())
	assert.Equal(t, Flag, c.View())

	c.open(false)
	assert.Equal(t, Flag, c.View(), "a flagged mine stays flagged after the reveal")
}

func TestCellPress(t *testing.T) {
	var c Cell
	c.press()
	assert.True(t, c.Pressed())
	assert.Equal(t, Pressed, c.View())
	c.release()
	assert.Equal(t, Hidden, c.View())

	c.toggleMark()
	c.press()
	assert.Equal(t, Flag, c.View(), "flags win over pressing")
	c.release()
	c.toggleMark()
	c.toggleMark()

	c.open(true)
	c.press()
	assert.False(t, c.Pressed(), "open cells cannot be pressed")
}

func TestResultHas(t *testing.T) {
	r := Opened | Exploded
	assert.True(t, r.Has(Exploded))
	assert.True(t, r.Has(Opened))
	assert.False(t, r.Has(Marked))
	assert.False(t, r.Has(None))
}
