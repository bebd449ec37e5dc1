package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/zobrist"
)

// StartingFEN is the standard initial position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Builder stages an arbitrary, unchecked arrangement of pieces and state
// flags. Nothing is validated until Build, so intermediate states may be as
// broken as the caller likes. Counters must be non-negative.
type Builder struct {
	squares        [board.NumSquares]board.Piece
	occupied       board.BitBoard
	sideToMove     board.Color
	castling       [board.NumColors]board.CastlingRights
	enPassant      board.Square
	halfmoveClock  int
	fullmoveNumber int
	tables         *board.Tables
	hasher         *zobrist.Zobrist
}

// NewBuilder returns an empty board with White to move, no castling rights
// and no en-passant target.
func NewBuilder() *Builder {
	return &Builder{
		enPassant:      board.NoSquare,
		fullmoveNumber: 1,
		tables:         board.DefaultTables(),
		hasher:         zobrist.Default(),
	}
}

// FromPosition stages an existing position for modification.
func FromPosition(p *Position) *Builder {
	b := NewBuilder()
	for rest := p.combined; rest != 0; {
		sq := rest.PopLSB()
		pc, _ := p.PieceAt(sq)
		b.Put(pc, sq)
	}
	b.sideToMove = p.sideToMove
	b.castling = p.castling
	b.enPassant = p.enPassant
	b.halfmoveClock = p.halfmoveClock
	b.fullmoveNumber = p.fullmoveNumber
	b.tables = p.tables
	b.hasher = p.hasher
	return b
}

// Put places pc on sq, replacing whatever was staged there.
func (b *Builder) Put(pc board.Piece, sq board.Square) *Builder {
	b.squares[sq] = pc
	b.occupied |= sq.Mask()
	return b
}

// Remove clears sq.
func (b *Builder) Remove(sq board.Square) *Builder {
	b.occupied &^= sq.Mask()
	return b
}

// SideToMove sets whose turn it is.
func (b *Builder) SideToMove(c board.Color) *Builder {
	b.sideToMove = c
	return b
}

// CastlingRights sets one side's remaining rights.
func (b *Builder) CastlingRights(c board.Color, cr board.CastlingRights) *Builder {
	b.castling[c] = cr
	return b
}

// EnPassant sets the en-passant target square.
func (b *Builder) EnPassant(sq board.Square) *Builder {
	b.enPassant = sq
	return b
}

// Counters sets the half-move clock and full-move number.
func (b *Builder) Counters(halfmove, fullmove int) *Builder {
	b.halfmoveClock = halfmove
	b.fullmoveNumber = fullmove
	return b
}

// Tables overrides the shared attack tables.
func (b *Builder) Tables(t *board.Tables) *Builder {
	b.tables = t
	return b
}

// Hasher overrides the shared Zobrist tables.
func (b *Builder) Hasher(z *zobrist.Zobrist) *Builder {
	b.hasher = z
	return b
}

// Build validates the staged state and assembles the Position, with its
// pins, checkers, hash and terminal flag computed from scratch.
func (b *Builder) Build() (*Position, error) {
	p := &Position{
		sideToMove:     b.sideToMove,
		castling:       b.castling,
		enPassant:      b.enPassant,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
		tables:         b.tables,
		hasher:         b.hasher,
	}
	for rest := b.occupied; rest != 0; {
		sq := rest.PopLSB()
		pc := b.squares[sq]
		m := sq.Mask()
		p.pieces[pc.Type] |= m
		p.colors[pc.Color] |= m
	}
	p.combined = p.colors[board.White] | p.colors[board.Black]
	if err := p.validate(); err != nil {
		return nil, err
	}
	p.hash = p.ComputeHash()
	p.updatePinsAndChecks()
	p.terminal = !p.anyLegalMove()
	return p, nil
}

func (p *Position) validate() error {
	if p.colors[board.White]&p.colors[board.Black] != 0 {
		return ErrColorsOverlap
	}
	for i := 0; i < board.NumPieceTypes; i++ {
		for j := i + 1; j < board.NumPieceTypes; j++ {
			if p.pieces[i]&p.pieces[j] != 0 {
				return ErrPieceTypesOverlap
			}
		}
	}
	union := board.EmptyBitBoard
	for _, mask := range p.pieces {
		union |= mask
	}
	if union != p.combined {
		return ErrInconsistentMasks
	}
	for c := board.Color(0); c < board.NumColors; c++ {
		if (p.pieces[board.King] & p.colors[c]).PopCount() != 1 {
			return ErrKingCount
		}
	}
	waiting := p.sideToMove.Other()
	if _, checks := p.pinsAndChecks(waiting, p.KingSquare(waiting)); checks != 0 {
		return ErrOpponentInCheck
	}
	if err := p.validateEnPassant(); err != nil {
		return err
	}
	return p.validateCastlingRights()
}

// validateEnPassant checks that a staged target square sits on the rank a
// double step of the waiting side just crossed, with their pawn behind it.
func (p *Position) validateEnPassant() error {
	if p.enPassant == board.NoSquare {
		return nil
	}
	var pawnSq board.Square
	switch {
	case p.sideToMove == board.White && p.enPassant.Rank() == board.Rank6:
		pawnSq = p.enPassant - 8
	case p.sideToMove == board.Black && p.enPassant.Rank() == board.Rank3:
		pawnSq = p.enPassant + 8
	default:
		return ErrInvalidEnPassant
	}
	if !(p.pieces[board.Pawn] & p.colors[p.sideToMove.Other()]).Has(pawnSq) {
		return ErrInvalidEnPassant
	}
	return nil
}

// validateCastlingRights checks that every staged right still has its king
// and rook on their home squares.
func (p *Position) validateCastlingRights() error {
	for c := board.Color(0); c < board.NumColors; c++ {
		cr := p.castling[c]
		if cr == board.CastleNeither {
			continue
		}
		home := homeRank(c)
		if !(p.pieces[board.King] & p.colors[c]).Has(board.NewSquare(board.FileE, home)) {
			return ErrInvalidCastlingRights
		}
		rooks := p.pieces[board.Rook] & p.colors[c]
		if cr.HasKingSide() && !rooks.Has(board.NewSquare(board.FileH, home)) {
			return ErrInvalidCastlingRights
		}
		if cr.HasQueenSide() && !rooks.Has(board.NewSquare(board.FileA, home)) {
			return ErrInvalidCastlingRights
		}
	}
	return nil
}

// ParseFEN builds a position from a six-field FEN record. Field count,
// placement characters and counters are strict; unknown castling letters
// are ignored and an unparseable en-passant field reads as no target.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w %q", ErrInvalidFEN, fen)
	}
	b := NewBuilder()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != board.NumRanks {
		return nil, fmt.Errorf("%w %q", ErrInvalidFEN, fen)
	}
	for i, rankText := range ranks {
		r := board.Rank(board.NumRanks - 1 - i)
		f := 0
		for j := 0; j < len(rankText); j++ {
			if ch := rankText[j]; ch >= '1' && ch <= '8' {
				f += int(ch - '0')
				continue
			}
			pc, ok := board.PieceFromFEN(rankText[j])
			if !ok || f >= board.NumFiles {
				return nil, fmt.Errorf("%w %q", ErrInvalidFEN, fen)
			}
			b.Put(pc, board.NewSquare(board.File(f), r))
			f++
		}
		if f != board.NumFiles {
			return nil, fmt.Errorf("%w %q", ErrInvalidFEN, fen)
		}
	}

	switch fields[1] {
	case "w":
		b.SideToMove(board.White)
	case "b":
		b.SideToMove(board.Black)
	default:
		return nil, fmt.Errorf("%w %q", ErrInvalidFEN, fen)
	}

	var white, black board.CastlingRights
	if strings.ContainsRune(fields[2], 'K') {
		white = white.With(board.CastleKingSide)
	}
	if strings.ContainsRune(fields[2], 'Q') {
		white = white.With(board.CastleQueenSide)
	}
	if strings.ContainsRune(fields[2], 'k') {
		black = black.With(board.CastleKingSide)
	}
	if strings.ContainsRune(fields[2], 'q') {
		black = black.With(board.CastleQueenSide)
	}
	b.CastlingRights(board.White, white).CastlingRights(board.Black, black)

	if sq, err := board.ParseSquare(fields[3]); err == nil {
		b.EnPassant(sq)
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("%w %q", ErrInvalidFEN, fen)
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 0 {
		return nil, fmt.Errorf("%w %q", ErrInvalidFEN, fen)
	}
	b.Counters(halfmove, fullmove)

	return b.Build()
}

// Initial returns the standard starting position.
func Initial() *Position {
	p, err := ParseFEN(StartingFEN)
	if err != nil {
		panic(err) // the constant is well-formed
	}
	return p
}

// FEN renders the position as a canonical six-field FEN record.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := board.NumRanks - 1; r >= 0; r-- {
		empty := 0
		for f := 0; f < board.NumFiles; f++ {
			pc, ok := p.PieceAt(board.NewSquare(board.File(f), board.Rank(r)))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.FEN())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteByte(p.sideToMove.Letter())
	sb.WriteByte(' ')
	if p.castling[board.White] == board.CastleNeither && p.castling[board.Black] == board.CastleNeither {
		sb.WriteByte('-')
	} else {
		sb.WriteString(strings.ToUpper(p.castling[board.White].String()))
		sb.WriteString(p.castling[board.Black].String())
	}
	sb.WriteByte(' ')
	if p.enPassant == board.NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.enPassant.String())
	}
	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.fullmoveNumber)
	return sb.String()
}
