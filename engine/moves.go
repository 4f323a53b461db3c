package engine

import "github.com/Mycellf/infinite-armada-chess/chess"

// moveRule describes one movement capability of a piece as a rank and file
// step. A repeating rule slides along its step until something blocks it; a
// single-step rule tests its one target square and ignores everything in
// between. canMove allows landing on an empty square, canCapture allows
// landing on an enemy piece. Allies always block.
type moveRule struct {
	rankStep   int
	fileStep   int
	repeating  bool
	canCapture bool
	canMove    bool
}

// step is a single-square rule that may both move and capture.
func step(rankStep, fileStep int) moveRule {
	return moveRule{rankStep: rankStep, fileStep: fileStep, canCapture: true, canMove: true}
}

// slide is a repeating rule that may both move and capture.
func slide(rankStep, fileStep int) moveRule {
	return moveRule{rankStep: rankStep, fileStep: fileStep, repeating: true, canCapture: true, canMove: true}
}

// Movement tables. Black pawns advance toward rank 0, so their rules are
// written out and the White tables are the rank-negated mirror. The pawn
// two-square advance is a plain single-step rule like everything else
// non-repeating: it does not care whether the square it jumps over is
// occupied, only sliding rules are blockable.
var (
	blackPawnRules = []moveRule{
		{rankStep: -1, fileStep: -1, canCapture: true},
		{rankStep: -1, fileStep: 0, canMove: true},
		{rankStep: -1, fileStep: 1, canCapture: true},
	}
	blackNewPawnRules = []moveRule{
		{rankStep: -1, fileStep: -1, canCapture: true},
		{rankStep: -1, fileStep: 0, canMove: true},
		{rankStep: -1, fileStep: 1, canCapture: true},
		{rankStep: -2, fileStep: 0, canMove: true},
	}
	whitePawnRules    = invertRules(blackPawnRules)
	whiteNewPawnRules = invertRules(blackNewPawnRules)

	knightRules = []moveRule{
		step(-2, -1), step(-2, 1), step(-1, -2), step(-1, 2),
		step(1, -2), step(1, 2), step(2, -1), step(2, 1),
	}
	bishopRules = []moveRule{
		slide(-1, -1), slide(-1, 1), slide(1, -1), slide(1, 1),
	}
	rookRules = []moveRule{
		slide(-1, 0), slide(1, 0), slide(0, -1), slide(0, 1),
	}
	queenRules = []moveRule{
		slide(-1, -1), slide(-1, 1), slide(1, -1), slide(1, 1),
		slide(-1, 0), slide(1, 0), slide(0, -1), slide(0, 1),
	}
	kingRules = []moveRule{
		step(-1, -1), step(-1, 0), step(-1, 1), step(0, -1),
		step(0, 1), step(1, -1), step(1, 0), step(1, 1),
	}
)

// invertRules mirrors a rule set across the rank axis.
func invertRules(rules []moveRule) []moveRule {
	out := make([]moveRule, len(rules))
	for i, rule := range rules {
		rule.rankStep = -rule.rankStep
		out[i] = rule
	}
	return out
}

// movementRules returns the movement table for the given piece standing on
// from. A pawn still on its starting rank gains the two-square advance;
// there is no per-piece move history, standing on the pawn rank is what
// makes a pawn fresh.
func movementRules(piece chess.Piece, from chess.Square) []moveRule {
	switch piece.Kind {
	case chess.Pawn:
		fresh := from.Rank == pawnHomeRank(piece.Colour)
		if piece.Colour == chess.White {
			if fresh {
				return whiteNewPawnRules
			}
			return whitePawnRules
		}
		if fresh {
			return blackNewPawnRules
		}
		return blackPawnRules
	case chess.Knight:
		return knightRules
	case chess.Bishop:
		return bishopRules
	case chess.Rook:
		return rookRules
	case chess.Queen:
		return queenRules
	case chess.King:
		return kingRules
	}
	return nil
}

// pawnHomeRank is the rank a colour's pawns start on.
func pawnHomeRank(colour chess.Colour) int {
	return chess.HomeRank(colour) + chess.ColourOffset(colour)
}
