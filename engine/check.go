package engine

import (
	"sort"

	"github.com/Mycellf/infinite-armada-chess/chess"
)

// isInCheck returns true if the given colour's king is attacked on the
// given board view. A board with no king of that colour is never in check.
func isInCheck(b boardReader, colour chess.Colour) bool {
	king, ok := findKing(b, colour)
	if !ok {
		return false // No king found
	}
	return isSquareAttacked(b, king, colour.Opposite())
}

// findKing finds the king of the given colour. Only materialized ranks and
// the colour's home rank can hold one: every other untouched rank defaults
// to pawns, queens or nothing.
func findKing(b boardReader, colour chess.Colour) (chess.Square, bool) {
	king := chess.Piece{Kind: chess.King, Colour: colour}
	ranks := b.MaterializedRanks()
	if home := chess.HomeRank(colour); !containsInt(ranks, home) {
		ranks = append(ranks, home)
		sort.Ints(ranks)
	}
	for _, rank := range ranks {
		for file := 0; file < chess.NumFiles; file++ {
			if piece, ok := b.At(file, rank); ok && piece == king {
				return chess.Sq(file, rank), true
			}
		}
	}
	return chess.Square{}, false
}

// isSquareAttacked returns true if the square is attacked by the given
// colour. Untouched ranks answer with their default contents, so a virtual
// piece attacks exactly like a materialized one.
func isSquareAttacked(b boardReader, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks. White pawns attack from the rank below, Black
	// pawns from the rank above.
	pawn := chess.Piece{Kind: chess.Pawn, Colour: byColour}
	pawnRank := sq.Rank - chess.ColourOffset(byColour)
	if piece, ok := b.At(sq.File-1, pawnRank); ok && piece == pawn {
		return true
	}
	if piece, ok := b.At(sq.File+1, pawnRank); ok && piece == pawn {
		return true
	}

	// Check knight attacks
	knight := chess.Piece{Kind: chess.Knight, Colour: byColour}
	knightOffsets := [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	for _, offset := range knightOffsets {
		if piece, ok := b.At(sq.File+offset[1], sq.Rank+offset[0]); ok && piece == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.Piece{Kind: chess.King, Colour: byColour}
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			if dr == 0 && df == 0 {
				continue
			}
			if piece, ok := b.At(sq.File+df, sq.Rank+dr); ok && piece == king {
				return true
			}
		}
	}

	// Check sliding pieces (bishop, rook, queen) along diagonals. Diagonal
	// walks always change file, so they leave the board within eight steps.
	bishop := chess.Piece{Kind: chess.Bishop, Colour: byColour}
	queen := chess.Piece{Kind: chess.Queen, Colour: byColour}
	diagonalDirs := [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	for _, dir := range diagonalDirs {
		file, rank := sq.File+dir[1], sq.Rank+dir[0]
		for {
			piece, ok := b.At(file, rank)
			if !ok {
				break // Off the files
			}
			if !piece.IsEmpty() {
				if piece == bishop || piece == queen {
					return true
				}
				break // Blocked
			}
			file += dir[1]
			rank += dir[0]
		}
	}

	// Check sliding pieces along straight lines. The vertical walks have no
	// rank bound; they terminate because an untouched rank beyond the home
	// ranks is a solid queen row, so every ray meets a piece.
	rook := chess.Piece{Kind: chess.Rook, Colour: byColour}
	straightDirs := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, dir := range straightDirs {
		file, rank := sq.File+dir[1], sq.Rank+dir[0]
		for {
			piece, ok := b.At(file, rank)
			if !ok {
				break // Off the files
			}
			if !piece.IsEmpty() {
				if piece == rook || piece == queen {
					return true
				}
				break // Blocked
			}
			file += dir[1]
			rank += dir[0]
		}
	}

	return false
}
