package engine

import (
	"sort"

	"github.com/Mycellf/infinite-armada-chess/chess"
)

// rawDestinations enumerates every square the piece on from can reach by
// its movement rules alone, ignoring whether the move would expose its own
// king.
func rawDestinations(b boardReader, from chess.Square, piece chess.Piece) []chess.Square {
	var out []chess.Square
	for _, rule := range movementRules(piece, from) {
		if rule.repeating {
			out = append(out, walkRay(b, from, piece, rule)...)
			continue
		}
		to := chess.Sq(from.File+rule.fileStep, from.Rank+rule.rankStep)
		target, ok := b.At(to.File, to.Rank)
		if !ok {
			continue // Off the files
		}
		if ruleAllows(rule, piece, target) {
			out = append(out, to)
		}
	}
	return out
}

// walkRay follows a repeating rule square by square until it runs off the
// files or meets a piece. An enemy piece is a final, capturable stop; a
// friendly piece just blocks. Rays pointed along a file need no rank bound:
// the solid queen rows beyond the home ranks stop them.
func walkRay(b boardReader, from chess.Square, piece chess.Piece, rule moveRule) []chess.Square {
	var out []chess.Square
	file, rank := from.File+rule.fileStep, from.Rank+rule.rankStep
	for {
		target, ok := b.At(file, rank)
		if !ok {
			return out // Off the files
		}
		if target.IsEmpty() {
			if rule.canMove {
				out = append(out, chess.Sq(file, rank))
			}
			file += rule.fileStep
			rank += rule.rankStep
			continue
		}
		if rule.canCapture && target.Colour != piece.Colour {
			out = append(out, chess.Sq(file, rank))
		}
		return out // Blocked
	}
}

// ruleAllows checks a rule's occupancy permissions against the target
// square: move-only rules need it empty, capture-only rules need an enemy
// piece on it.
func ruleAllows(rule moveRule, piece chess.Piece, target chess.Piece) bool {
	if target.IsEmpty() {
		return rule.canMove
	}
	return rule.canCapture && target.Colour != piece.Colour
}

// legalDestinations filters raw reachability through the self-check rule
// and returns the survivors ordered by rank, then file.
func legalDestinations(b boardReader, from chess.Square, piece chess.Piece) []chess.Square {
	raw := rawDestinations(b, from, piece)
	out := make([]chess.Square, 0, len(raw))
	for _, to := range raw {
		if exposesOwnKing(b, from, to, piece) {
			continue
		}
		out = append(out, to)
	}
	sortSquares(out)
	return out
}

// exposesOwnKing simulates the move on an overlay of the board and reports
// whether the mover's king would be attacked afterwards. The real board is
// never touched.
func exposesOwnKing(b boardReader, from, to chess.Square, piece chess.Piece) bool {
	return isInCheck(overlayMove(b, from, to, piece), piece.Colour)
}

// sortSquares orders squares by rank, then file.
func sortSquares(squares []chess.Square) {
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].Rank != squares[j].Rank {
			return squares[i].Rank < squares[j].Rank
		}
		return squares[i].File < squares[j].File
	})
}
