package board

// CastlingRights records which castles one side may still perform. The four
// values form a small lattice under union and difference, with CastleNeither
// at the bottom and CastleBoth at the top.
type CastlingRights uint8

const (
	CastleNeither   CastlingRights = 0
	CastleKingSide  CastlingRights = 1
	CastleQueenSide CastlingRights = 2
	CastleBoth      CastlingRights = CastleKingSide | CastleQueenSide
)

// NumCastlingStates is used to size per-rights hash tables.
const NumCastlingStates = 4

// HasKingSide reports whether the king-side castle is still available.
func (cr CastlingRights) HasKingSide() bool { return cr&CastleKingSide != 0 }

// HasQueenSide reports whether the queen-side castle is still available.
func (cr CastlingRights) HasQueenSide() bool { return cr&CastleQueenSide != 0 }

// With returns the union of the two rights.
func (cr CastlingRights) With(other CastlingRights) CastlingRights {
	return cr | other
}

// Without returns cr with the given rights removed.
func (cr CastlingRights) Without(other CastlingRights) CastlingRights {
	return cr &^ other
}

// String renders the rights in FEN's lowercase letters: "kq", "k", "q" or "".
func (cr CastlingRights) String() string {
	switch cr {
	case CastleBoth:
		return "kq"
	case CastleKingSide:
		return "k"
	case CastleQueenSide:
		return "q"
	}
	return ""
}
