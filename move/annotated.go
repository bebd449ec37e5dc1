package move

import "strings"

// Ambiguity says how much of a move's source must be spelled out for its
// text to identify it uniquely on a given board.
type Ambiguity uint8

const (
	// AmbiguityNone: the piece letter and destination suffice.
	AmbiguityNone Ambiguity = iota
	// AmbiguityFile: prepend the source file.
	AmbiguityFile
	// AmbiguitySquare: prepend the full source square.
	AmbiguitySquare
)

// Annotated pairs a move with the display metadata computed from the
// positions before and after it was played.
type Annotated struct {
	Move

	Capture   bool
	Check     bool
	Checkmate bool
	Ambiguity Ambiguity
}

// String renders the move in standard-algebraic style: the source trimmed
// to what the ambiguity requires, x for captures, and a + or # suffix for
// checks and mates.
func (a Annotated) String() string {
	var sb strings.Builder
	switch a.Move.Type() {
	case MoveTypeKingSideCastle:
		sb.WriteString("O-O")
	case MoveTypeQueenSideCastle:
		sb.WriteString("O-O-O")
	default:
		sb.WriteString(a.Move.Piece().Letter())
		switch a.Ambiguity {
		case AmbiguitySquare:
			sb.WriteString(a.Move.Source().String())
		case AmbiguityFile:
			sb.WriteString(a.Move.Source().File().String())
		}
		if a.Capture {
			sb.WriteString("x")
		}
		sb.WriteString(a.Move.Destination().String())
		if pt, ok := a.Move.Promotion(); ok {
			sb.WriteString("=")
			sb.WriteString(pt.Letter())
		}
	}
	if a.Checkmate {
		sb.WriteString("#")
	} else if a.Check {
		sb.WriteString("+")
	}
	return sb.String()
}
