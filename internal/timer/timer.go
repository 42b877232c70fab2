// Package timer counts elapsed intervals for a running game.
package timer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultLimit is where the elapsed counter stops by itself.
const DefaultLimit = 999

var ErrBadInterval = errors.New("interval must be a positive duration")

// Timer counts whole intervals between Start and Stop. It is safe for
// concurrent use.
type Timer struct {
	interval time.Duration
	limit    int
	onTick   func(count int)

	mu      sync.Mutex
	count   int
	running bool
	halt    chan struct{}
}

// New returns a stopped timer. A limit of 0 means the count never stops by
// itself. onTick runs on the timer goroutine with the new count and must not
// call back into the timer.
func New(interval time.Duration, limit int, onTick func(count int)) *Timer {
	return &Timer{
		interval: interval,
		limit:    limit,
		onTick:   onTick,
	}
}

// Start resumes counting. Starting a running timer does nothing.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running || t.limitReached() {
		return
	}
	t.running = true
	t.halt = make(chan struct{})
	go t.run(t.halt)
}

func (t *Timer) run(halt chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-halt:
			return
		case <-ticker.C:
			if !t.tick(halt) {
				return
			}
		}
	}
}

// tick reports whether the goroutine owning halt should keep running.
func (t *Timer) tick(halt chan struct{}) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	select {
	case <-halt:
		return false
	default:
	}
	t.count++
	if t.onTick != nil {
		t.onTick(t.count)
	}
	if t.limitReached() {
		t.stop()
		return false
	}
	return true
}

func (t *Timer) limitReached() bool {
	return t.limit > 0 && t.count >= t.limit
}

func (t *Timer) stop() {
	if t.running {
		close(t.halt)
		t.running = false
	}
}

// Stop freezes the count.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stop()
}

// Reset stops the timer and zeroes the count.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stop()
	t.count = 0
}

func (t *Timer) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// ParseInterval reads an interval such as "1s", "250ms" or "1.5 s". A bare
// number is taken as milliseconds.
func ParseInterval(s string) (time.Duration, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	var (
		d   time.Duration
		err error
	)
	if ms, perr := strconv.ParseFloat(s, 64); perr == nil {
		d = time.Duration(ms * float64(time.Millisecond))
	} else {
		d, err = time.ParseDuration(s)
	}
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadInterval, s)
	}
	return d, nil
}
