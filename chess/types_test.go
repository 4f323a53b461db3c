package chess

import (
	"testing"
)

func TestColour(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		if got := White.String(); got != "White" {
			t.Errorf("White.String() = %q; want White", got)
		}
		if got := Black.String(); got != "Black" {
			t.Errorf("Black.String() = %q; want Black", got)
		}
	})

	t.Run("opposite", func(t *testing.T) {
		if got := White.Opposite(); got != Black {
			t.Errorf("White.Opposite() = %v; want Black", got)
		}
		if got := Black.Opposite(); got != White {
			t.Errorf("Black.Opposite() = %v; want White", got)
		}
	})

	t.Run("offset", func(t *testing.T) {
		if got := ColourOffset(White); got != 1 {
			t.Errorf("ColourOffset(White) = %d; want 1", got)
		}
		if got := ColourOffset(Black); got != -1 {
			t.Errorf("ColourOffset(Black) = %d; want -1", got)
		}
	})
}

func TestHomeAndPromotionRanks(t *testing.T) {
	if got := HomeRank(White); got != 0 {
		t.Errorf("HomeRank(White) = %d; want 0", got)
	}
	if got := HomeRank(Black); got != 7 {
		t.Errorf("HomeRank(Black) = %d; want 7", got)
	}
	if got := PromotionRank(White); got != 7 {
		t.Errorf("PromotionRank(White) = %d; want 7", got)
	}
	if got := PromotionRank(Black); got != 0 {
		t.Errorf("PromotionRank(Black) = %d; want 0", got)
	}
}

func TestPiece(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		var p Piece
		if !p.IsEmpty() {
			t.Error("zero Piece.IsEmpty() = false; want true")
		}
		if p != Empty {
			t.Errorf("zero Piece = %v; want Empty", p)
		}
	})

	t.Run("constructors", func(t *testing.T) {
		if got := W(Queen); got != (Piece{Kind: Queen, Colour: White}) {
			t.Errorf("W(Queen) = %v; want white queen", got)
		}
		if got := B(Knight); got != (Piece{Kind: Knight, Colour: Black}) {
			t.Errorf("B(Knight) = %v; want black knight", got)
		}
		if W(Pawn).IsEmpty() {
			t.Error("W(Pawn).IsEmpty() = true; want false")
		}
	})

	t.Run("string", func(t *testing.T) {
		if got := W(King).String(); got != "White King" {
			t.Errorf("W(King).String() = %q; want %q", got, "White King")
		}
		if got := B(Pawn).String(); got != "Black Pawn" {
			t.Errorf("B(Pawn).String() = %q; want %q", got, "Black Pawn")
		}
		if got := Empty.String(); got != "Empty" {
			t.Errorf("Empty.String() = %q; want Empty", got)
		}
	})
}

func TestKindLetter(t *testing.T) {
	tests := []struct {
		kind Kind
		want byte
	}{
		{Pawn, 'P'},
		{Knight, 'N'},
		{Bishop, 'B'},
		{Rook, 'R'},
		{Queen, 'Q'},
		{King, 'K'},
		{NoPiece, ' '},
	}

	for _, tt := range tests {
		if got := tt.kind.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.kind, got, tt.want)
		}
	}
}

func TestSquareString(t *testing.T) {
	tests := []struct {
		name   string
		square Square
		want   string
	}{
		{"bottom left corner", Sq(0, 0), "a1"},
		{"top right corner", Sq(7, 7), "h8"},
		{"centre", Sq(4, 3), "e4"},
		{"first rank below white", Sq(0, -1), "a0"},
		{"deep in white territory", Sq(4, -42), "e-41"},
		{"far beyond black", Sq(3, 99), "d100"},
		{"file out of range", Sq(9, 0), "?1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.square.String(); got != tt.want {
				t.Errorf("%#v.String() = %q; want %q", tt.square, got, tt.want)
			}
		})
	}
}
