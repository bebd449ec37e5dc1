package board

// Color identifies a side, White or Black.
type Color uint8

const (
	White Color = iota
	Black
)

// NumColors is used to size per-color tables.
const NumColors = 2

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Letter returns the FEN side-to-move letter, 'w' or 'b'.
func (c Color) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// PieceType identifies one of the six kinds of chessmen.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// NumPieceTypes is used to size per-piece tables.
const NumPieceTypes = 6

var pieceTypeNames = [NumPieceTypes]string{"pawn", "knight", "bishop", "rook", "queen", "king"}
var pieceTypeLetters = [NumPieceTypes]string{"", "N", "B", "R", "Q", "K"}

func (pt PieceType) String() string {
	if int(pt) >= len(pieceTypeNames) {
		return "unknown"
	}
	return pieceTypeNames[pt]
}

// Letter returns the move-text letter for the piece type. Pawns have none.
func (pt PieceType) Letter() string {
	if int(pt) >= len(pieceTypeLetters) {
		return "?"
	}
	return pieceTypeLetters[pt]
}

// Piece is a colored chessman.
type Piece struct {
	Type  PieceType
	Color Color
}

var fenPieceLetters = [NumColors][NumPieceTypes]byte{
	{'P', 'N', 'B', 'R', 'Q', 'K'},
	{'p', 'n', 'b', 'r', 'q', 'k'},
}

// FEN returns the placement letter for the piece, uppercase for White.
func (p Piece) FEN() byte {
	return fenPieceLetters[p.Color][p.Type]
}

// PieceFromFEN converts a FEN placement letter into a piece.
func PieceFromFEN(c byte) (Piece, bool) {
	for color := 0; color < NumColors; color++ {
		for pt := 0; pt < NumPieceTypes; pt++ {
			if fenPieceLetters[color][pt] == c {
				return Piece{Type: PieceType(pt), Color: Color(color)}, true
			}
		}
	}
	return Piece{}, false
}

func (p Piece) String() string {
	return p.Color.String() + " " + p.Type.String()
}
