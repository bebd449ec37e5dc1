package position

import "errors"

// Construction errors, one per validation rule. ParseFEN and Builder.Build
// wrap these with the offending input where there is one; match with
// errors.Is.
var (
	ErrInvalidFEN            = errors.New("position: invalid fen record")
	ErrColorsOverlap         = errors.New("position: color masks overlap")
	ErrPieceTypesOverlap     = errors.New("position: piece type masks overlap")
	ErrInconsistentMasks     = errors.New("position: piece and occupancy masks disagree")
	ErrKingCount             = errors.New("position: each side needs exactly one king")
	ErrOpponentInCheck       = errors.New("position: the side not to move is in check")
	ErrInvalidEnPassant      = errors.New("position: en-passant target has no pawn behind it")
	ErrInvalidCastlingRights = errors.New("position: castling rights without king and rook in place")
)

// ErrIllegalMove rejects a move the current position does not allow.
var ErrIllegalMove = errors.New("position: illegal move")
