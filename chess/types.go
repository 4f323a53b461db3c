// Package chess provides the core types and the unbounded board for the
// armada chess variant: standard chess on a board whose ranks extend without
// limit in both directions.
package chess

import "strconv"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (the direction the
// colour's pawns advance).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// NumFiles is the number of files. Files are bounded even though ranks
// are not.
const NumFiles = 8

// NumTraditionalRanks is the height of the standard chess footprint. The
// playable board extends past it in both directions; the constant only
// anchors where the home ranks sit.
const NumTraditionalRanks = 8

// HomeRank returns the back rank of a colour: 0 for White, 7 for Black.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return NumTraditionalRanks - 1
}

// PromotionRank returns the rank on which a colour's pawns promote, which
// is the opposing home rank.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// Kind represents a piece type without colour.
type Kind int

const (
	NoPiece Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece represents the occupant of a square. The zero value is the empty
// square; pieces are immutable values and compare with ==.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// Empty is the unoccupied square.
var Empty Piece

// W creates a white piece of the given kind.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece of the given kind.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// String returns the string representation of a piece.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Square identifies a board square. File is 0-7 ('a' through 'h'); Rank is
// any integer, negative ranks lying below White's home rank.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for constructing a Square.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// String renders the square in display coordinates: the file letter followed
// by the rank number counted from one, so Sq(4, 3) is "e4" and Sq(0, -1)
// is "a0".
func (s Square) String() string {
	file := byte('?')
	if s.File >= 0 && s.File < NumFiles {
		file = byte('a' + s.File)
	}
	return string(file) + strconv.Itoa(s.Rank+1)
}
