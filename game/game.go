// Package game drives the state machine above the position engine: an
// action log of moves, draw offers and resignations, a hash-occurrence
// count for repetition claims, and the resulting game status.
package game

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/move"
	"github.com/caissa-chess/caissa/position"
)

// repetitionCount is the number of times one position must occur before
// the threefold draw is declared.
const repetitionCount = 3

var (
	// ErrGameFinished rejects any action once the status has left ongoing.
	ErrGameFinished = errors.New("game: the game is already finished")
	// ErrNoPendingOffer rejects answering a draw that was never offered.
	ErrNoPendingOffer = errors.New("game: no draw offer to answer")
	// ErrOfferPending rejects moves and fresh offers while a draw offer
	// waits for an answer.
	ErrOfferPending = errors.New("game: a draw offer is awaiting an answer")
)

// ActionType tags the entries of the action log.
type ActionType uint8

const (
	ActionMove ActionType = iota
	ActionOfferDraw
	ActionAcceptDraw
	ActionDeclineDraw
	ActionResign
)

func (a ActionType) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionOfferDraw:
		return "offer draw"
	case ActionAcceptDraw:
		return "accept draw"
	case ActionDeclineDraw:
		return "decline draw"
	case ActionResign:
		return "resign"
	}
	return "unknown"
}

// Action is one entry of the log: who did what, with the move attached for
// ActionMove entries.
type Action struct {
	Type  ActionType
	Actor board.Color
	Move  move.Move
}

// Game wraps one current position, the ordered action log, the per-hash
// occurrence counts used for repetition claims, and the derived status.
// Not safe for concurrent use; callers provide their own exclusion.
type Game struct {
	pos     *position.Position
	actions []Action
	counts  map[uint64]int
	status  Status
	history *History
}

// NewGame starts a game from the standard initial position.
func NewGame() *Game {
	return NewGameFromPosition(position.Initial())
}

// NewGameFromPosition starts a game from a custom position. The starting
// position itself counts as its first hash occurrence.
func NewGameFromPosition(pos *position.Position) *Game {
	g := &Game{
		pos:     pos,
		counts:  map[uint64]int{pos.Hash(): 1},
		history: newHistory(pos),
	}
	g.refreshStatus(pos)
	return g
}

// Position returns the current position.
func (g *Game) Position() *position.Position { return g.pos }

// Status returns the current standing.
func (g *Game) Status() Status { return g.status }

// Actions returns the action log in order.
func (g *Game) Actions() []Action { return g.actions }

// History returns the annotated move history.
func (g *Game) History() *History { return g.history }

// DrawOffered reports whether an offer is waiting for an answer.
func (g *Game) DrawOffered() bool {
	n := len(g.actions)
	return n > 0 && g.actions[n-1].Type == ActionOfferDraw
}

// MakeMove applies m for the side to move, advancing position, history,
// repetition counts and status. Moves are rejected while a draw offer is
// pending and propagate the engine's legality error unchanged.
func (g *Game) MakeMove(m move.Move) error {
	if g.status.Finished() {
		return ErrGameFinished
	}
	if g.DrawOffered() {
		return ErrOfferPending
	}

	mover := g.pos.SideToMove()
	next, err := g.pos.MakeMove(m)
	if err != nil {
		return err
	}

	annotated := g.pos.Annotate(m, next)
	g.counts[next.Hash()]++
	g.actions = append(g.actions, Action{Type: ActionMove, Actor: mover, Move: m})
	g.history.record(annotated)
	g.pos = next
	g.refreshStatus(next)
	log.Debug().
		Str("move", annotated.String()).
		Str("status", g.status.String()).
		Uint64("hash", next.Hash()).
		Msg("move applied")
	return nil
}

// OfferDraw records a draw offer by the side to move. Until it is answered
// only AcceptDraw and DeclineDraw are accepted.
func (g *Game) OfferDraw() error {
	if g.status.Finished() {
		return ErrGameFinished
	}
	if g.DrawOffered() {
		return ErrOfferPending
	}
	g.actions = append(g.actions, Action{Type: ActionOfferDraw, Actor: g.pos.SideToMove()})
	log.Debug().Str("by", g.pos.SideToMove().String()).Msg("draw offered")
	return nil
}

// AcceptDraw ends the game as agreed when an offer is pending.
func (g *Game) AcceptDraw() error {
	if g.status.Finished() {
		return ErrGameFinished
	}
	if !g.DrawOffered() {
		return ErrNoPendingOffer
	}
	offer := g.actions[len(g.actions)-1]
	g.actions = append(g.actions, Action{Type: ActionAcceptDraw, Actor: offer.Actor.Other()})
	g.status = Status{Kind: StatusDrawAccepted}
	log.Debug().Msg("draw accepted")
	return nil
}

// DeclineDraw discards a pending offer and returns the game to ongoing.
func (g *Game) DeclineDraw() error {
	if g.status.Finished() {
		return ErrGameFinished
	}
	if !g.DrawOffered() {
		return ErrNoPendingOffer
	}
	offer := g.actions[len(g.actions)-1]
	g.actions = append(g.actions, Action{Type: ActionDeclineDraw, Actor: offer.Actor.Other()})
	log.Debug().Msg("draw declined")
	return nil
}

// Resign ends the game with the side to move as the loser. Always allowed
// while the game runs, a pending offer included.
func (g *Game) Resign() error {
	if g.status.Finished() {
		return ErrGameFinished
	}
	loser := g.pos.SideToMove()
	g.actions = append(g.actions, Action{Type: ActionResign, Actor: loser})
	g.status = Status{Kind: StatusResigned, Loser: loser}
	log.Debug().Str("by", loser.String()).Msg("resignation")
	return nil
}

// refreshStatus derives the standing from pos: mate and stalemate from the
// terminal scan, the repetition draw from the hash counts, else ongoing.
func (g *Game) refreshStatus(pos *position.Position) {
	switch {
	case pos.InCheckmate():
		g.status = Status{Kind: StatusCheckMated, Loser: pos.SideToMove()}
	case pos.InStalemate():
		g.status = Status{Kind: StatusStalemate}
	case g.counts[pos.Hash()] >= repetitionCount:
		g.status = Status{Kind: StatusRepetitionDraw}
	default:
		g.status = Status{Kind: StatusOngoing}
	}
}
