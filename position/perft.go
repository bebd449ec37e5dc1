package position

// Perft counts the leaf nodes of the legal-move tree to the given depth,
// the standard cross-check for move generators.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next, err := p.MakeMove(m)
		if err != nil {
			panic(err) // generated moves are legal
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}
