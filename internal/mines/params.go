package mines

import (
	"fmt"
	"math"
	"strings"
)

// openingArea is the number of cells kept free around the first click.
const openingArea = 9

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Width * p.Height
}

// String encodes the params as "width:height:mines".
func (p GameParams) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseGameParams(s string) (*GameParams, error) {
	p := &GameParams{}
	ss := strings.ReplaceAll(s, ":", " ")
	n, err := fmt.Sscanf(ss, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidParams, s, err)
	}
	return p, nil
}

// Validate checks that a board can be built from p.
func (p GameParams) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return ErrInvalidSize
	}
	if p.MineCount < 1 {
		return ErrTooFewMines
	}
	if p.MineCount > p.Cells()-openingArea {
		return fmt.Errorf("%w: %d mines on %dx%d", ErrTooManyMines,
			p.MineCount, p.Width, p.Height)
	}
	return nil
}

func (p GameParams) PointInBounds(i, j int) bool {
	return 0 <= i && i < p.Height && 0 <= j && j < p.Width
}

type Level uint8

const (
	Easy Level = iota
	Medium
	Hard
	Custom
)

var levelNames = [...]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
	Custom: "custom",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel maps a level name to a [Level]. The empty string is [Easy].
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return Easy, nil
	}
	for l, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(l), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownLevel, s)
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	level, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

var presets = map[Level]GameParams{
	Easy:   {Width: 9, Height: 9, MineCount: 10},
	Medium: {Width: 16, Height: 16, MineCount: 40},
	Hard:   {Width: 30, Height: 16, MineCount: 99},
}

// Preset returns the fixed params of a non-custom level.
func Preset(l Level) (GameParams, bool) {
	p, ok := presets[l]
	return p, ok
}

// Range bounds a custom setting. A zero value requested for it means
// "use Default".
type Range struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

func (r Range) Clamp(v int) int {
	if v == 0 {
		return r.Default
	}
	return min(max(v, r.Min), r.Max)
}

var (
	WidthRange  = Range{Min: 9, Max: 30, Default: 9}
	HeightRange = Range{Min: 9, Max: 24, Default: 9}
)

// MineRange returns the allowed mine counts for a board of n cells. The
// default density grows by one percent every 45 cells and is rounded to a
// multiple of ten.
func MineRange(n int) Range {
	pct := 10 + n/45
	return Range{
		Min:     10,
		Max:     int(math.Floor(float64(n)*0.94 - 8.45)),
		Default: int(math.Round(float64(n*pct)/1000)) * 10,
	}
}

// Options is what the player asks for. Width, Height and MineCount are only
// read for [Custom]; zero means "default".
type Options struct {
	Level     Level
	Width     int
	Height    int
	MineCount int
}

// Resolve turns options into board params, clamping custom values into
// their ranges.
func (o Options) Resolve() GameParams {
	if p, ok := Preset(o.Level); ok {
		return p
	}
	w := WidthRange.Clamp(o.Width)
	h := HeightRange.Clamp(o.Height)
	return GameParams{
		Width:     w,
		Height:    h,
		MineCount: MineRange(w * h).Clamp(o.MineCount),
	}
}
