package chess

// The default contents of every rank that has never been written to. Ranks
// beyond a side's home rank default to a solid row of that nearer side's
// queens. This is a deliberate rule of the variant, not an approximation:
// the far reaches of the board really are walls of queens, and they only
// become individually movable (or capturable) pieces once a rank is touched.
var (
	whiteQueenRow = fillRow(W(Queen))
	blackQueenRow = fillRow(B(Queen))
	whitePawnRow  = fillRow(W(Pawn))
	blackPawnRow  = fillRow(B(Pawn))
	whiteBackRow  = backRow(White)
	blackBackRow  = backRow(Black)
)

// backRow builds the standard back rank for a colour.
func backRow(colour Colour) Row {
	kinds := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	var row Row
	for file, kind := range kinds {
		row[file] = Piece{Kind: kind, Colour: colour}
	}
	return row
}

// fillRow builds a row holding eight copies of the same piece.
func fillRow(piece Piece) Row {
	var row Row
	for file := range row {
		row[file] = piece
	}
	return row
}

// DefaultRow returns the contents a rank has before anything is written to
// it. It is a pure function of the rank number: White's home arrangement on
// ranks 0 and 1, Black's on ranks 6 and 7, nothing in between, and solid
// queen rows of the nearer side everywhere beyond.
func DefaultRow(rank int) Row {
	switch {
	case rank < HomeRank(White):
		return whiteQueenRow
	case rank == HomeRank(White):
		return whiteBackRow
	case rank == HomeRank(White)+1:
		return whitePawnRow
	case rank == HomeRank(Black)-1:
		return blackPawnRow
	case rank == HomeRank(Black):
		return blackBackRow
	case rank > HomeRank(Black):
		return blackQueenRow
	}
	return Row{}
}
