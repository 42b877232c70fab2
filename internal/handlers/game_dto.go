package handlers

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/locale"
	"github.com/vancomm/minesweeper/internal/mines"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

// OptionsDTO is the query of /options and /play. Zero sizes mean "default".
type OptionsDTO struct {
	Level  string `schema:"level"`
	Width  int    `schema:"width"`
	Height int    `schema:"height"`
	Mines  int    `schema:"mines"`
	Lang   string `schema:"lang"`
}

func ParseOptionsDTO(src url.Values) (OptionsDTO, error) {
	var dto OptionsDTO
	if err := dec.Decode(&dto, src); err != nil {
		return dto, fmt.Errorf("%w: %v", mines.ErrInvalidParams, err)
	}
	return dto, nil
}

func (d OptionsDTO) Options() (mines.Options, error) {
	level, err := mines.ParseLevel(d.Level)
	if err != nil {
		return mines.Options{}, err
	}
	opts := mines.Options{
		Level:     level,
		Width:     d.Width,
		Height:    d.Height,
		MineCount: d.Mines,
	}
	return opts, nil
}

type RangesDTO struct {
	Width  mines.Range `json:"width"`
	Height mines.Range `json:"height"`
	Mines  mines.Range `json:"mines"`
}

type OptionsResponseDTO struct {
	Level     mines.Level   `json:"level"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	MineCount int           `json:"mineCount"`
	Ranges    RangesDTO     `json:"ranges"`
	Locale    locale.Bundle `json:"locale"`
}

func NewOptionsResponseDTO(opts mines.Options, bundle locale.Bundle) *OptionsResponseDTO {
	params := opts.Resolve()
	return &OptionsResponseDTO{
		Level:     opts.Level,
		Width:     params.Width,
		Height:    params.Height,
		MineCount: params.MineCount,
		Ranges: RangesDTO{
			Width:  mines.WidthRange,
			Height: mines.HeightRange,
			Mines:  mines.MineRange(params.Cells()),
		},
		Locale: bundle,
	}
}

type LabelsDTO struct {
	Remaining string `json:"remaining"`
	Elapsed   string `json:"elapsed"`
	Retry     string `json:"retry"`
	Cleared   string `json:"cleared,omitempty"`
}

type StateDTO struct {
	GameID    int             `json:"gameId"`
	Level     mines.Level     `json:"level"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	MineCount int             `json:"mineCount"`
	Remaining int             `json:"remaining"`
	Status    mines.Status    `json:"status"`
	Run       mines.RunStatus `json:"run"`
	Cleared   bool            `json:"cleared"`
	Elapsed   int             `json:"elapsed"`
	Grid      mines.Grid      `json:"grid"`
	Labels    LabelsDTO       `json:"labels"`
}

func NewStateDTO(s *mines.Session, elapsed int, bundle locale.Bundle) *StateDTO {
	params := s.Params()
	dto := &StateDTO{
		GameID:    s.GameID(),
		Level:     s.Level(),
		Width:     params.Width,
		Height:    params.Height,
		MineCount: params.MineCount,
		Remaining: s.Remaining(),
		Status:    s.Status(),
		Run:       s.RunStatus(),
		Cleared:   s.Cleared(),
		Elapsed:   elapsed,
		Grid:      s.Board().Grid(),
		Labels: LabelsDTO{
			Remaining: bundle.Remaining(s.Remaining()),
			Elapsed:   bundle.Elapsed(elapsed),
			Retry:     bundle.Retry,
		},
	}
	if s.Cleared() {
		dto.Labels.Cleared = bundle.Cleared
	}
	return dto
}

type TickDTO struct {
	Elapsed int `json:"elapsed"`
}

type CommandErrorDTO struct {
	Error   string `json:"error"`
	Line    int    `json:"line"`
	Command string `json:"command"`
}
