package testutil

import (
	"testing"

	"github.com/Mycellf/infinite-armada-chess/chess"
)

// StartingBoard returns a fresh board in the standard starting position.
func StartingBoard() *chess.Board {
	b := chess.NewBoard()
	b.SetupInitialPosition()
	return b
}

// MustSetPiece places a piece on the board and aborts the test if the
// coordinates are invalid. Use this in fixture setup where a rejected
// write means the fixture itself is wrong.
func MustSetPiece(t *testing.T, b *chess.Board, file, rank int, piece chess.Piece) {
	t.Helper()
	if err := b.Set(file, rank, piece); err != nil {
		t.Fatalf("Set(%d, %d, %v) error: %v", file, rank, piece, err)
	}
}

// ClearFile empties every square of one file from fromRank through toRank
// inclusive, materializing those ranks. Useful for opening corridors
// through the home ranks toward the queen walls.
func ClearFile(t *testing.T, b *chess.Board, file, fromRank, toRank int) {
	t.Helper()
	for rank := fromRank; rank <= toRank; rank++ {
		MustSetPiece(t, b, file, rank, chess.Empty)
	}
}
