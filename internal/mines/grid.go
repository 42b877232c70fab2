package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// View is the visual class of a cell as seen by the player.
type View int8

const (
	Pressed   View = -4
	Question  View = -3
	Hidden    View = -2
	Flag      View = -1
	Mine      View = 64
	Explosion View = 65
	Mistake   View = 66
	/*
	 * Each item in a [Grid] is one of the following values:
	 *
	 *  - 0 to 8 mean the cell is open and has that many mined neighbours.
	 *
	 *  - -1 is a flag; after a loss it stays on correctly flagged mines.
	 *
	 *  - -2 is a hidden cell, -3 a hidden cell marked as uncertain and -4 a
	 *    hidden cell held under the pointer.
	 *
	 *  - 64 is a mine revealed when the game was lost, 65 the mine the
	 *    player clicked and 66 a flag that was placed on a safe cell.
	 */
)

func (v View) String() string {
	switch {
	case v == Pressed:
		return "_"
	case v == Question:
		return "?"
	case v == Hidden:
		return "#"
	case v == Flag:
		return "F"
	case v == Mine:
		return "*"
	case v == Explosion:
		return "X"
	case v == Mistake:
		return "x"
	case v == 0:
		return "."
	case 1 <= v && v <= 8:
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

// Open reports whether v is an open, mine-free cell.
func (v View) Open() bool {
	return 0 <= v && v <= 8
}

// Grid is a row-major snapshot of cell views.
type Grid []View

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g[i].String())
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
