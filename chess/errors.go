package chess

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure conditions of board and game operations.
// Use these with errors.Is() to check for specific error types. All of them
// describe recoverable, local rejections; no operation leaves partial state
// behind when it returns one of these.
var (
	// ErrOutOfBoundsFile indicates a file coordinate outside 'a' through 'h'.
	// There is no rank counterpart: every rank is in bounds.
	ErrOutOfBoundsFile = errors.New("file out of bounds")

	// ErrEmptyOrigin indicates a move or selection starting on an empty square.
	ErrEmptyOrigin = errors.New("no piece on origin square")

	// ErrNotYourPiece indicates an attempt to move an opponent's piece.
	ErrNotYourPiece = errors.New("piece belongs to the opponent")

	// ErrIllegalMove indicates a destination the origin piece cannot legally
	// reach, including moves attempted while a promotion is unresolved.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPendingPromotion indicates a promotion resolution with no
	// promotion in progress.
	ErrNoPendingPromotion = errors.New("no promotion pending")

	// ErrInvalidChoiceIndex indicates a promotion choice outside the
	// numbered option list.
	ErrInvalidChoiceIndex = errors.New("invalid promotion choice")
)

// MoveError wraps a move rejection with the squares involved. It implements
// the error interface and supports unwrapping, so errors.Is() still matches
// the underlying sentinel.
type MoveError struct {
	From Square
	To   Square
	Err  error
}

// Error returns a formatted message naming the attempted move.
func (e *MoveError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("move %v %v", e.From, e.To)
	}
	return fmt.Sprintf("move %v %v: %v", e.From, e.To, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}
