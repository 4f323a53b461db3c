// Package engine implements the rules of the armada chess variant on top of
// the unbounded board: turn order, piece selection, move legality, check
// detection, and pawn promotion.
package engine

import "github.com/Mycellf/infinite-armada-chess/chess"

// Game holds the full state of one game: the board, whose turn it is, the
// currently selected square if any, and a suspended promotion if a pawn has
// just reached its promotion rank. A Game is not safe for concurrent use;
// callers drive it from a single goroutine.
type Game struct {
	board  *chess.Board
	toMove chess.Colour

	// Transient selection state for interface layers. It never affects
	// move legality.
	selected    chess.Square
	hasSelected bool

	// A pawn reaching its promotion rank suspends the turn here until
	// ResolvePromotion is called.
	pending    chess.Square
	hasPending bool
}

// Option configures a Game.
type Option func(*Game)

// WithBoard starts the game from the given board instead of the standard
// starting position. The board is used as-is, ranks and all.
func WithBoard(board *chess.Board) Option {
	return func(g *Game) {
		g.board = board
	}
}

// WithSideToMove sets which colour moves first.
func WithSideToMove(colour chess.Colour) Option {
	return func(g *Game) {
		g.toMove = colour
	}
}

// New creates a game using functional options. Default: the standard
// starting position with White to move.
func New(opts ...Option) *Game {
	g := &Game{toMove: chess.White}
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = chess.NewBoard()
		g.board.SetupInitialPosition()
	}
	return g
}

// ToMove returns the colour whose turn it is. During a suspended promotion
// this is still the promoting side.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Occupant returns the piece on the given square, empty or otherwise. This
// is the read interface for rendering layers; like every read it never
// materializes a rank.
func (g *Game) Occupant(file, rank int) (chess.Piece, error) {
	return g.board.Get(file, rank)
}

// IsMaterialized reports whether the rank is concretely stored in the
// underlying board.
func (g *Game) IsMaterialized(rank int) bool {
	return g.board.IsMaterialized(rank)
}

// Select records the given square as the player's selection. The square
// must hold a piece of the side to move.
func (g *Game) Select(file, rank int) error {
	piece, err := g.board.Get(file, rank)
	if err != nil {
		return err
	}
	if piece.IsEmpty() {
		return chess.ErrEmptyOrigin
	}
	if piece.Colour != g.toMove {
		return chess.ErrNotYourPiece
	}
	g.selected = chess.Sq(file, rank)
	g.hasSelected = true
	return nil
}

// Selected returns the currently selected square, if any.
func (g *Game) Selected() (chess.Square, bool) {
	return g.selected, g.hasSelected
}

// Deselect clears the selection.
func (g *Game) Deselect() {
	g.selected = chess.Square{}
	g.hasSelected = false
}

// originPiece validates a move origin for the side to move and returns the
// piece standing on it.
func (g *Game) originPiece(from chess.Square) (chess.Piece, error) {
	piece, err := g.board.Get(from.File, from.Rank)
	if err != nil {
		return chess.Empty, err
	}
	if piece.IsEmpty() {
		return chess.Empty, chess.ErrEmptyOrigin
	}
	if piece.Colour != g.toMove {
		return chess.Empty, chess.ErrNotYourPiece
	}
	return piece, nil
}

// LegalDestinations returns every square the piece on from may move to,
// ordered by rank then file. Moves that would leave the mover's own king
// attacked are excluded. The enumeration reads through the board without
// materializing anything, however far it reaches.
func (g *Game) LegalDestinations(from chess.Square) ([]chess.Square, error) {
	piece, err := g.originPiece(from)
	if err != nil {
		return nil, err
	}
	return legalDestinations(g.board, from, piece), nil
}

// MoveOutcome reports what a completed ApplyMove or ResolvePromotion did.
type MoveOutcome struct {
	// Moved is the piece now standing on the destination square. For a
	// resolved promotion it is the piece the pawn became.
	Moved chess.Piece

	// Captured is the piece the move removed, or empty for a quiet move.
	// A virtual piece on a never-touched rank is captured like any other.
	Captured chess.Piece

	// Check reports whether the side now to move is in check. It is only
	// meaningful once the turn has flipped, so it is always false while
	// PromotionPending is set.
	Check bool

	// PromotionPending is set when a pawn reached its promotion rank. The
	// move has been applied but the turn is suspended until
	// ResolvePromotion is called.
	PromotionPending bool
}

// ApplyMove moves the piece on from to to. The move must be one of the
// origin's legal destinations; anything else is rejected with a MoveError
// wrapping ErrIllegalMove and no state changes at all. On success the
// destination is written first, then the origin cleared, the selection
// dropped, and the turn passed, unless the move was a pawn reaching its
// promotion rank, in which case the turn is suspended and the outcome has
// PromotionPending set.
func (g *Game) ApplyMove(from, to chess.Square) (MoveOutcome, error) {
	if g.hasPending {
		return MoveOutcome{}, &chess.MoveError{From: from, To: to, Err: chess.ErrIllegalMove}
	}
	piece, err := g.originPiece(from)
	if err != nil {
		return MoveOutcome{}, err
	}
	if to.File < 0 || to.File >= chess.NumFiles {
		return MoveOutcome{}, chess.ErrOutOfBoundsFile
	}
	if !containsSquare(legalDestinations(g.board, from, piece), to) {
		return MoveOutcome{}, &chess.MoveError{From: from, To: to, Err: chess.ErrIllegalMove}
	}

	captured, _ := g.board.At(to.File, to.Rank)
	if err := g.board.Set(to.File, to.Rank, piece); err != nil {
		return MoveOutcome{}, err
	}
	if err := g.board.Set(from.File, from.Rank, chess.Empty); err != nil {
		return MoveOutcome{}, err
	}
	g.Deselect()

	outcome := MoveOutcome{Moved: piece, Captured: captured}
	if piece.Kind == chess.Pawn && to.Rank == chess.PromotionRank(piece.Colour) {
		g.pending = to
		g.hasPending = true
		outcome.PromotionPending = true
		return outcome, nil
	}

	g.toMove = g.toMove.Opposite()
	outcome.Check = isInCheck(g.board, g.toMove)
	return outcome, nil
}

// ResolvePromotion replaces the pawn of a suspended promotion with the
// chosen piece and passes the turn. choice is a 1-based index into
// PromotionChoices. The pending state survives a bad choice, so the caller
// can simply ask again.
func (g *Game) ResolvePromotion(choice int) (MoveOutcome, error) {
	if !g.hasPending {
		return MoveOutcome{}, chess.ErrNoPendingPromotion
	}
	if choice < 1 || choice > len(promotionOrder) {
		return MoveOutcome{}, chess.ErrInvalidChoiceIndex
	}

	piece := chess.Piece{Kind: promotionOrder[choice-1], Colour: g.toMove}
	if err := g.board.Set(g.pending.File, g.pending.Rank, piece); err != nil {
		return MoveOutcome{}, err
	}
	g.pending = chess.Square{}
	g.hasPending = false

	g.toMove = g.toMove.Opposite()
	return MoveOutcome{Moved: piece, Check: isInCheck(g.board, g.toMove)}, nil
}

// PromotionPending returns the square of the pawn awaiting promotion, if
// any.
func (g *Game) PromotionPending() (chess.Square, bool) {
	return g.pending, g.hasPending
}

// InCheck reports whether the given colour's king is currently attacked.
func (g *Game) InCheck(colour chess.Colour) bool {
	return isInCheck(g.board, colour)
}
