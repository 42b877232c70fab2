package mines

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// NewRand returns a randomly seeded source for mine placement.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// placeMines scatters the board's mines, none of which is at (si, sj) or
// within one cell of it. The caller guarantees that enough candidates remain.
func (b *Board) placeMines(si, sj int) {
	width, height, mineCount := b.Unpack()

	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, width*height)
	for i := range height {
		for j := range width {
			if absDiff(si, i) > 1 || absDiff(sj, j) > 1 {
				candidates = append(candidates, i*width+j)
			}
		}
	}

	/*
	 * Now pick n off the list at random, moving each pick past the end of
	 * the shrinking pool.
	 */
	k := len(candidates)
	for range mineCount {
		n := b.rnd.IntN(k)
		k--
		candidates[n], candidates[k] = candidates[k], candidates[n]

		pos := Pos{candidates[k] / width, candidates[k] % width}
		b.cells[candidates[k]].placeMine()
		b.mines[pos] = struct{}{}
	}

	Log.WithFields(logrus.Fields{
		"params": b.GameParams.String(),
		"start":  Pos{si, sj},
		"pool":   len(candidates),
	}).Debug("placed mines")
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
