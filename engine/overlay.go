package engine

import (
	"sort"

	"github.com/Mycellf/infinite-armada-chess/chess"
)

// boardReader is the read surface the legality checks run against. Both the
// live *chess.Board and the per-move overlay satisfy it.
type boardReader interface {
	At(file, rank int) (chess.Piece, bool)
	MaterializedRanks() []int
}

// moveOverlay presents the board as it would look after a hypothetical move
// without touching the underlying store. The board is unbounded, so the
// copy-a-board trick for testing self-check is not available; instead the
// two changed squares are layered over the live reads.
type moveOverlay struct {
	base  boardReader
	from  chess.Square
	to    chess.Square
	piece chess.Piece
}

// overlayMove builds the view of base after piece moves from from to to.
func overlayMove(base boardReader, from, to chess.Square, piece chess.Piece) moveOverlay {
	return moveOverlay{base: base, from: from, to: to, piece: piece}
}

func (o moveOverlay) At(file, rank int) (chess.Piece, bool) {
	if file < 0 || file >= chess.NumFiles {
		return chess.Empty, false
	}
	switch chess.Sq(file, rank) {
	case o.to:
		return o.piece, true
	case o.from:
		return chess.Empty, true
	}
	return o.base.At(file, rank)
}

// MaterializedRanks includes the overlay squares' ranks so that a king
// search through the overlay sees a piece moved onto an otherwise
// untouched rank.
func (o moveOverlay) MaterializedRanks() []int {
	ranks := o.base.MaterializedRanks()
	for _, rank := range []int{o.from.Rank, o.to.Rank} {
		if !containsInt(ranks, rank) {
			ranks = append(ranks, rank)
		}
	}
	sort.Ints(ranks)
	return ranks
}
