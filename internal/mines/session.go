package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// RunStatus is what the elapsed-time clock should be doing.
type RunStatus uint8

const (
	Idle RunStatus = iota
	Ticking
	Stopped
)

func (s RunStatus) String() string {
	switch s {
	case Ticking:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "not_started"
	}
}

func (s RunStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Clock is the elapsed-time collaborator driven by a [Session].
type Clock interface {
	Start()
	Stop()
	Reset()
}

type nopClock struct{}

func (nopClock) Start() {}
func (nopClock) Stop()  {}
func (nopClock) Reset() {}

// Session is one player's game: it resolves the requested level into board
// params, owns the current [Board] and forwards its start and stop to the
// clock.
type Session struct {
	opts   Options
	params GameParams
	gameID int

	run     RunStatus
	cleared bool
	marks   int

	board *Board
	clock Clock
	rnd   *rand.Rand
}

// NewSession starts a session at the given options. Nil rnd and clock are
// replaced with a random source and a clock that does nothing.
func NewSession(opts Options, rnd *rand.Rand, clock Clock) (*Session, error) {
	if rnd == nil {
		rnd = NewRand()
	}
	if clock == nil {
		clock = nopClock{}
	}
	s := &Session{
		clock: clock,
		rnd:   rnd,
	}
	if err := s.newBoard(opts); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) newBoard(opts Options) error {
	params := opts.Resolve()
	board, err := NewBoard(params, s.rnd, s)
	if err != nil {
		return err
	}
	s.board = board
	s.opts = opts
	s.params = params
	s.run = Idle
	s.cleared = false
	s.marks = 0
	s.clock.Reset()

	Log.WithFields(logrus.Fields{
		"game_id": s.gameID,
		"level":   s.opts.Level,
		"params":  params.String(),
	}).Debug("new board")
	return nil
}

// Configure switches to new options. The running game is kept when the
// options resolve to the same level and params.
func (s *Session) Configure(opts Options) error {
	if opts.Level == s.opts.Level && opts.Resolve() == s.params {
		return nil
	}
	return s.newBoard(opts)
}

// Retry throws the current game away and starts a fresh one with the same
// params.
func (s *Session) Retry() {
	s.gameID++
	s.board.Reset()
	s.run = Idle
	s.cleared = false
	s.marks = 0
	s.clock.Reset()

	Log.WithField("game_id", s.gameID).Debug("retry")
}

func (s *Session) Board() *Board        { return s.board }
func (s *Session) Level() Level         { return s.opts.Level }
func (s *Session) Params() GameParams   { return s.params }
func (s *Session) GameID() int          { return s.gameID }
func (s *Session) RunStatus() RunStatus { return s.run }
func (s *Session) Status() Status       { return s.board.Status() }
func (s *Session) Cleared() bool        { return s.cleared }
func (s *Session) Remaining() int       { return s.params.MineCount - s.marks }

// Started implements [Observer].
func (s *Session) Started() {
	s.run = Ticking
	s.clock.Start()
}

// Stopped implements [Observer].
func (s *Session) Stopped(cleared bool) {
	s.run = Stopped
	s.cleared = cleared
	s.clock.Stop()
}

// MarksChanged implements [Observer].
func (s *Session) MarksChanged(marks int) {
	s.marks = marks
}
