package zobrist

import (
	"encoding/binary"
	"sync"

	"lukechampine.com/frand"

	"github.com/caissa-chess/caissa/board"
)

const bignum = 1<<63 - 2

// Seed fixes the stream the feature values are drawn from, so the same
// position hashes identically across runs and processes.
const Seed = 1370359990842121

// Zobrist holds one random 64-bit value per hashable position feature:
// occupancy of each square by each colored piece, each castling-rights state
// per side, each en-passant file, and black to move. A position's hash is
// the XOR of its feature values; a mutation XORs the old value out and the
// new one in.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	blackToMove uint64

	pieceTable    [board.NumColors][board.NumPieceTypes][board.NumSquares]uint64
	castlingTable [board.NumColors][board.NumCastlingStates]uint64
	epFileTable   [board.NumFiles]uint64
}

// New draws all feature values from the fixed seed. Values are never zero,
// so toggling any feature always changes the hash.
func New() *Zobrist {
	z := &Zobrist{}
	z.initialize()
	return z
}

func (z *Zobrist) initialize() {
	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:8], Seed)
	rng := frand.NewCustom(seed[:], 1024, 12)

	z.blackToMove = rng.Uint64n(bignum) + 1
	for c := 0; c < board.NumColors; c++ {
		for pt := 0; pt < board.NumPieceTypes; pt++ {
			for sq := 0; sq < board.NumSquares; sq++ {
				z.pieceTable[c][pt][sq] = rng.Uint64n(bignum) + 1
			}
		}
	}
	for c := 0; c < board.NumColors; c++ {
		for i := 0; i < board.NumCastlingStates; i++ {
			z.castlingTable[c][i] = rng.Uint64n(bignum) + 1
		}
	}
	for f := 0; f < board.NumFiles; f++ {
		z.epFileTable[f] = rng.Uint64n(bignum) + 1
	}
}

var (
	defaultZobrist     *Zobrist
	defaultZobristOnce sync.Once
)

// Default returns the shared table set, built on first use.
func Default() *Zobrist {
	defaultZobristOnce.Do(func() {
		defaultZobrist = New()
	})
	return defaultZobrist
}

// Piece returns the feature value for a piece of the given color and type
// on sq.
func (z *Zobrist) Piece(c board.Color, pt board.PieceType, sq board.Square) uint64 {
	return z.pieceTable[c][pt][sq]
}

// Castling returns the feature value for one side's castling-rights state.
func (z *Zobrist) Castling(c board.Color, cr board.CastlingRights) uint64 {
	return z.castlingTable[c][cr]
}

// EnPassantFile returns the feature value for an en-passant target on f.
func (z *Zobrist) EnPassantFile(f board.File) uint64 {
	return z.epFileTable[f]
}

// BlackToMove returns the side-to-move feature value.
func (z *Zobrist) BlackToMove() uint64 {
	return z.blackToMove
}
