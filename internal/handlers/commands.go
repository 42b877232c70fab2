package handlers

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("invalid number of arguments")
	ErrBadPosition    = errors.New("invalid square coordinates")
)

func iterBySep(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0, // refresh
	"n": 0, // retry
	"d": 3, // pointer down: button row col
	"u": 2, // pointer up
	"e": 2, // pointer enters a cell
	"l": 2, // pointer leaves a cell
	"o": 4, // options: level width height mines
}

func parseInts(strs []string) ([]int, error) {
	ints := make([]int, len(strs))
	for k, s := range strs {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d must be an int", k+1)
		}
		ints[k] = v
	}
	return ints, nil
}

// parseButton maps a DOM MouseEvent.button code. Buttons other than the
// primary and secondary one map to no button and are ignored downstream.
func parseButton(code int) mines.Button {
	switch code {
	case 0:
		return mines.Left
	case 2:
		return mines.Right
	default:
		return 0
	}
}

func executeCommand(s *mines.Session, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return ErrBadArgs
	}

	switch parts[0] {
	case "g":
		return nil
	case "n":
		s.Retry()
		return nil
	case "o":
		args, err := parseInts(parts[2:])
		if err != nil {
			return err
		}
		level, err := mines.ParseLevel(parts[1])
		if err != nil {
			return err
		}
		return s.Configure(mines.Options{
			Level:     level,
			Width:     args[0],
			Height:    args[1],
			MineCount: args[2],
		})
	}

	args, err := parseInts(parts[1:])
	if err != nil {
		return err
	}
	b := s.Board()
	pos := args[len(args)-2:]
	i, j := pos[0], pos[1]
	if !b.PointInBounds(i, j) {
		return ErrBadPosition
	}

	switch parts[0] {
	case "d":
		b.PointerDown(parseButton(args[0]), i, j)
	case "u":
		b.PointerUp(i, j)
	case "e":
		b.PointerEnter(i, j)
	case "l":
		b.PointerLeave(i, j)
	}
	return nil
}
