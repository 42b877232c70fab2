// Package mines implements the minesweeper engine: per-cell state, the
// pointer gesture interpreter, the board with mine placement, flood fill and
// chord opening, and the session that owns a board.
package mines

import "github.com/sirupsen/logrus"

var Log = logrus.New()
