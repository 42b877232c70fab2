package mines

// MarkState is the player's annotation of a hidden cell.
type MarkState uint8

const (
	MarkNone MarkState = iota
	MarkFlag
	MarkUncertain
)

func (m MarkState) String() string {
	switch m {
	case MarkFlag:
		return "flagged"
	case MarkUncertain:
		return "uncertain"
	default:
		return "unmarked"
	}
}

// Result reports what a cell transition did. Results of several transitions
// can be OR-ed together (chord open).
type Result uint8

const (
	None     Result = 0
	Opened   Result = 1 << 0
	Exploded Result = 1 << 1
	Marked   Result = 1 << 2
	Unmarked Result = 1 << 3
)

// Has reports whether every bit of f is set in r.
func (r Result) Has(f Result) bool {
	return f != 0 && r&f == f
}

// Cell holds the state of one grid position. The zero value is a hidden,
// mine-free, unmarked cell.
type Cell struct {
	opened   bool
	mine     bool
	mark     MarkState
	pressed  bool
	exploded bool
	hint     int8
}

func (c Cell) Hidden() bool     { return !c.opened }
func (c Cell) HasMine() bool    { return c.mine }
func (c Cell) Mark() MarkState  { return c.mark }
func (c Cell) Pressed() bool    { return c.pressed }
func (c Cell) IsExploded() bool { return c.exploded }

// placeMine is only called during mine placement, before any open.
func (c *Cell) placeMine() {
	c.mine = true
}

func (c *Cell) press() {
	if c.opened {
		return
	}
	c.pressed = true
}

func (c *Cell) release() {
	c.pressed = false
}

// open reveals the cell. Flagged cells ignore clicks; the terminal reveal
// opens them with byClick set to false.
func (c *Cell) open(byClick bool) Result {
	if c.opened {
		return None
	}
	if c.mark == MarkFlag && byClick {
		return None
	}
	c.opened = true
	c.pressed = false
	if c.mark == MarkUncertain {
		c.mark = MarkNone
	}
	if c.mine {
		if byClick {
			c.exploded = true
		}
		return Exploded
	}
	return Opened
}

// toggleMark cycles unmarked -> flagged -> uncertain -> unmarked. Only the
// first two steps change the number of flags.
func (c *Cell) toggleMark() Result {
	if c.opened {
		return None
	}
	switch c.mark {
	case MarkNone:
		c.mark = MarkFlag
		return Marked
	case MarkFlag:
		c.mark = MarkUncertain
		return Unmarked
	default:
		c.mark = MarkNone
		return None
	}
}

func (c *Cell) forceMark() {
	c.mark = MarkFlag
}

func (c *Cell) setHint(hint int) {
	c.hint = int8(hint)
}

// Hint returns the number of neighbouring mines, or -1 unless the cell is
// open, mine-free and not flagged.
func (c Cell) Hint() int {
	if !c.opened || c.mine || c.mark == MarkFlag {
		return -1
	}
	return int(c.hint)
}

// View resolves the visual class of the cell.
func (c Cell) View() View {
	switch {
	case c.mark == MarkFlag && c.opened && !c.mine:
		return Mistake
	case c.mark == MarkFlag:
		return Flag
	case !c.opened && c.pressed:
		return Pressed
	case !c.opened && c.mark == MarkUncertain:
		return Question
	case !c.opened:
		return Hidden
	case c.mine && c.exploded:
		return Explosion
	case c.mine:
		return Mine
	default:
		return View(c.hint)
	}
}
