package chess

import "sort"

// Row holds the contents of one rank, indexed by file.
type Row [NumFiles]Piece

// Board is the sparse store behind the unbounded playing field. It records
// only the ranks that have been written to; every other rank is answered by
// synthesizing DefaultRow on the fly, so reads work at any rank without
// allocating anything.
//
// Reads never change the store. Writes materialize the touched rank first
// (default contents, then the one overwritten cell) and the rank stays
// materialized from then on, so the set of stored ranks only ever grows.
type Board struct {
	ranks map[int]Row
}

// NewBoard creates an empty board with no materialized ranks. Every rank
// reads as its default contents.
func NewBoard() *Board {
	return &Board{ranks: make(map[int]Row)}
}

// SetupInitialPosition resets the board to the standard starting position.
// The four occupied home ranks are materialized outright; the empty middle
// ranks are left virtual since their default contents are already correct.
func (b *Board) SetupInitialPosition() {
	b.ranks = make(map[int]Row)
	for _, rank := range []int{0, 1, 6, 7} {
		b.ranks[rank] = DefaultRow(rank)
	}
}

// Get returns the piece at the given coordinates. Unmaterialized ranks are
// answered from DefaultRow without being stored, so repeated reads of an
// untouched rank leave the board exactly as it was.
func (b *Board) Get(file, rank int) (Piece, error) {
	if file < 0 || file >= NumFiles {
		return Empty, ErrOutOfBoundsFile
	}
	if row, ok := b.ranks[rank]; ok {
		return row[file], nil
	}
	row := DefaultRow(rank)
	return row[file], nil
}

// At is the comma-ok form of Get, for inner loops that probe squares which
// may lie off the files. The boolean is false exactly when the file is out
// of range. Like Get, it never materializes.
func (b *Board) At(file, rank int) (Piece, bool) {
	if file < 0 || file >= NumFiles {
		return Empty, false
	}
	if row, ok := b.ranks[rank]; ok {
		return row[file], true
	}
	row := DefaultRow(rank)
	return row[file], true
}

// Set places a piece at the given coordinates. Writing to an unmaterialized
// rank materializes it: the rank's default contents are stored and the one
// cell overwritten. Materialization is permanent.
func (b *Board) Set(file, rank int, piece Piece) error {
	if file < 0 || file >= NumFiles {
		return ErrOutOfBoundsFile
	}
	row, ok := b.ranks[rank]
	if !ok {
		row = DefaultRow(rank)
	}
	row[file] = piece
	b.ranks[rank] = row
	return nil
}

// IsMaterialized reports whether the rank is concretely stored rather than
// synthesized on read.
func (b *Board) IsMaterialized(rank int) bool {
	_, ok := b.ranks[rank]
	return ok
}

// MaterializedRanks returns the stored rank numbers in ascending order.
func (b *Board) MaterializedRanks() []int {
	ranks := make([]int, 0, len(b.ranks))
	for rank := range b.ranks {
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)
	return ranks
}
