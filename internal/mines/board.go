package mines

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
)

// Status is the lifecycle stage of a [Board].
type Status uint8

const (
	NotStarted Status = iota
	Running
	Dead
	Won
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Dead:
		return "exploded"
	case Won:
		return "cleared"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Over reports whether the status is terminal.
func (s Status) Over() bool {
	return s == Dead || s == Won
}

// Pos is a cell position: row I, column J.
type Pos struct {
	I, J int
}

func (p Pos) String() string {
	return fmt.Sprintf("[%d,%d]", p.I, p.J)
}

func comparePos(a, b Pos) int {
	if a.I != b.I {
		return a.I - b.I
	}
	return a.J - b.J
}

// Observer is notified of board level changes. Started and Stopped are each
// sent at most once per board.
type Observer interface {
	Started()
	Stopped(cleared bool)
	MarksChanged(marks int)
}

type nopObserver struct{}

func (nopObserver) Started()         {}
func (nopObserver) Stopped(bool)     {}
func (nopObserver) MarksChanged(int) {}

// Board owns the cell grid of one game. It is not safe for concurrent use:
// every event is handled to completion before the next one.
type Board struct {
	GameParams

	cells     []Cell
	mines     map[Pos]struct{}
	marks     map[Pos]struct{}
	countdown int
	status    Status
	listener  PointerHandler

	observer Observer
	rnd      *rand.Rand
}

// NewBoard validates params and returns a fresh board. Mines are placed on
// the first open. A nil observer is allowed.
func NewBoard(params GameParams, rnd *rand.Rand, observer Observer) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if rnd == nil {
		rnd = NewRand()
	}
	b := &Board{
		GameParams: params,
		observer:   observer,
		rnd:        rnd,
	}
	b.Reset()
	return b, nil
}

// Reset discards the current game and starts over with the same params.
func (b *Board) Reset() {
	b.cells = make([]Cell, b.Cells())
	b.mines = make(map[Pos]struct{}, b.MineCount)
	b.marks = make(map[Pos]struct{})
	b.countdown = b.Cells() - b.MineCount
	b.status = NotStarted
	b.listener = NewListener(b.gestures())
}

func (b *Board) cell(i, j int) *Cell {
	return &b.cells[i*b.Width+j]
}

// Cell returns a copy of the cell at (i, j).
func (b *Board) Cell(i, j int) Cell {
	return *b.cell(i, j)
}

func (b *Board) Status() Status {
	return b.status
}

// Countdown is the number of safe cells still to be opened.
func (b *Board) Countdown() int {
	return b.countdown
}

// Marks is the number of flagged cells.
func (b *Board) Marks() int {
	return len(b.marks)
}

// Remaining is the mine counter shown to the player.
func (b *Board) Remaining() int {
	return b.MineCount - len(b.marks)
}

// Mines lists mine positions in row-major order. It is empty until the first
// open.
func (b *Board) Mines() []Pos {
	return slices.SortedFunc(maps.Keys(b.mines), comparePos)
}

// Grid returns a snapshot of every cell's view.
func (b *Board) Grid() Grid {
	g := make(Grid, len(b.cells))
	for k, c := range b.cells {
		g[k] = c.View()
	}
	return g
}

func (b *Board) String() string {
	return b.Grid().ToString(b.Width)
}

func (b *Board) relatives(i, j int, self bool) []Pos {
	ps := make([]Pos, 0, 9)
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 && !self {
				continue
			}
			if b.PointInBounds(i+di, j+dj) {
				ps = append(ps, Pos{i + di, j + dj})
			}
		}
	}
	return ps
}

// surroundings are the up to eight cells touching (i, j).
func (b *Board) surroundings(i, j int) []Pos {
	return b.relatives(i, j, false)
}

// neighbors is the 3x3 block centred on (i, j).
func (b *Board) neighbors(i, j int) []Pos {
	return b.relatives(i, j, true)
}

func (b *Board) start(i, j int) {
	b.placeMines(i, j)
	b.status = Running
	b.observer.Started()
}

// Open opens the cell at (i, j) as if clicked. The first open of a game
// places the mines around it. Opening a cell without neighbouring mines
// opens its surroundings as well.
func (b *Board) Open(i, j int) Result {
	if b.status.Over() {
		return None
	}
	if b.status == NotStarted {
		if b.cell(i, j).mark == MarkFlag {
			return None
		}
		b.start(i, j)
	}
	return b.open(i, j)
}

func (b *Board) open(i, j int) Result {
	result := b.cell(i, j).open(true)
	if result != Opened {
		return result
	}
	b.countdown--

	/*
	 * Each cell opens at most once, so the stack never holds more than
	 * the whole grid.
	 */
	todo := []Pos{{i, j}}
	for len(todo) > 0 {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		surr := b.surroundings(p.I, p.J)
		hint := 0
		for _, q := range surr {
			if _, ok := b.mines[q]; ok {
				hint++
			}
		}
		b.cell(p.I, p.J).setHint(hint)
		if hint > 0 {
			continue
		}
		for _, q := range surr {
			if b.cell(q.I, q.J).open(true) == Opened {
				b.countdown--
				todo = append(todo, q)
			}
		}
	}
	return result
}

// ChordOpen opens the surroundings of an open numbered cell whose flagged
// neighbours exactly match its hint. It returns the union of the results.
func (b *Board) ChordOpen(i, j int) Result {
	if b.status != Running {
		return None
	}
	hint := b.cell(i, j).Hint()
	if hint < 0 {
		return None
	}
	surr := b.surroundings(i, j)
	marks := 0
	for _, p := range surr {
		if _, ok := b.marks[p]; ok {
			marks++
		}
	}
	if marks != hint {
		return None
	}
	var result Result
	for _, p := range surr {
		result |= b.open(p.I, p.J)
	}
	return result
}

// ToggleMark cycles the mark of a hidden cell and keeps the set of flagged
// positions in sync.
func (b *Board) ToggleMark(i, j int) Result {
	if b.status.Over() {
		return None
	}
	result := b.cell(i, j).toggleMark()
	switch result {
	case Marked:
		b.marks[Pos{i, j}] = struct{}{}
	case Unmarked:
		delete(b.marks, Pos{i, j})
	default:
		return result
	}
	b.observer.MarksChanged(len(b.marks))
	return result
}

// settle ends the game if the last action exploded a mine or opened the
// last safe cell.
func (b *Board) settle(result Result) {
	if result.Has(Exploded) {
		b.GameOver()
	} else if b.status == Running && b.countdown <= 0 {
		b.GameClear()
	}
}

func (b *Board) stop(status Status) {
	b.status = status
	b.listener = Disarmed
	Log.WithField("status", status).Debug("game over")
}

// GameClear wins the game and flags every mine.
func (b *Board) GameClear() {
	if b.status.Over() {
		return
	}
	b.stop(Won)
	for p := range b.mines {
		b.cell(p.I, p.J).forceMark()
		b.marks[p] = struct{}{}
	}
	b.observer.Stopped(true)
	b.observer.MarksChanged(len(b.marks))
}

// GameOver loses the game and reveals every mine and every flag. Only the
// mine that was clicked keeps its explosion.
func (b *Board) GameOver() {
	if b.status.Over() {
		return
	}
	b.stop(Dead)
	for p := range b.mines {
		b.cell(p.I, p.J).open(false)
	}
	for p := range b.marks {
		b.cell(p.I, p.J).open(false)
	}
	b.observer.Stopped(false)
}

// Click is a complete left click: open, then win or lose.
func (b *Board) Click(i, j int) Result {
	result := b.Open(i, j)
	b.settle(result)
	return result
}

// Chord is a complete two-button click: chord open, then win or lose.
func (b *Board) Chord(i, j int) Result {
	result := b.ChordOpen(i, j)
	b.settle(result)
	return result
}

func (b *Board) press(ps ...Pos) {
	for _, p := range ps {
		b.cell(p.I, p.J).press()
	}
}

func (b *Board) release(ps ...Pos) {
	for _, p := range ps {
		b.cell(p.I, p.J).release()
	}
}

func (b *Board) gestures() Gestures {
	return Gestures{
		LeftDown: func(i, j int) { b.press(Pos{i, j}) },
		LeftOver: func(i, j int) { b.press(Pos{i, j}) },
		LeftOut:  func(i, j int) { b.release(Pos{i, j}) },
		LeftUp: func(i, j int) {
			b.release(Pos{i, j})
			b.Click(i, j)
		},
		RightDown: func(i, j int) { b.ToggleMark(i, j) },
		BothDown:  func(i, j int) { b.press(b.neighbors(i, j)...) },
		BothOver:  func(i, j int) { b.press(b.neighbors(i, j)...) },
		BothOut:   func(i, j int) { b.release(b.neighbors(i, j)...) },
		BothUp: func(i, j int) {
			b.release(b.neighbors(i, j)...)
			b.Chord(i, j)
		},
	}
}

// Listener returns the current pointer handler; it is [Disarmed] once the
// game is over.
func (b *Board) Listener() PointerHandler {
	return b.listener
}

func (b *Board) PointerDown(button Button, i, j int) {
	if b.PointInBounds(i, j) {
		b.listener.MouseDown(button, i, j)
	}
}

func (b *Board) PointerUp(i, j int) {
	if b.PointInBounds(i, j) {
		b.listener.MouseUp(i, j)
	}
}

func (b *Board) PointerEnter(i, j int) {
	if b.PointInBounds(i, j) {
		b.listener.MouseOver(i, j)
	}
}

func (b *Board) PointerLeave(i, j int) {
	if b.PointInBounds(i, j) {
		b.listener.MouseOut(i, j)
	}
}
