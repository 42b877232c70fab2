package mines

import "errors"

var (
	ErrInvalidSize   = errors.New("board must be at least 1x1")
	ErrTooFewMines   = errors.New("board needs at least one mine")
	ErrTooManyMines  = errors.New("mine count leaves no room for the opening area")
	ErrUnknownLevel  = errors.New("unknown level")
	ErrInvalidParams = errors.New("invalid game params")
)
