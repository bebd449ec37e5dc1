package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/caissa-chess/caissa/autoplay"
	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/config"
	"github.com/caissa-chess/caissa/game"
	"github.com/caissa-chess/caissa/move"
	"github.com/caissa-chess/caissa/position"
)

var (
	errExiting = errors.New("exiting")

	colorSupport = os.Getenv("CAISSA_DISABLE_COLOR") != "on"
)

const (
	lightSquare = "\033[48;5;180m"
	darkSquare  = "\033[48;5;94m"
	whitePiece  = "\033[97m"
	blackPiece  = "\033[30m"
	colorReset  = "\033[0m"
)

// ShellController drives one game at a time from a readline loop. Commands
// act on curGame; new and fen replace it.
type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curGame *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func prompt(text string) string {
	return "\033[31m" + text + ">\033[0m "
}

func NewShellController(cfg *config.Config) *ShellController {
	sc := &ShellController{cfg: cfg, curGame: game.NewGame()}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt(cfg.GetString("prompt")),
		HistoryFile:     cfg.GetString("history-file"),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
		AutoComplete:        NewShellCompleter(sc),
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// colorBoard shades the board squares with ANSI backgrounds. Set
// CAISSA_DISABLE_COLOR=on to fall back to the plain bordered grid.
func colorBoard(pos *position.Position) string {
	if !colorSupport {
		return pos.String()
	}
	rights := strings.ToUpper(pos.CastlingRights(board.White).String()) +
		pos.CastlingRights(board.Black).String()
	if rights == "" {
		rights = "-"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "   %s  %s\n", pos.SideToMove(), rights)
	for i := 0; i < board.NumRanks; i++ {
		r := board.Rank(board.NumRanks - 1 - i)
		if pos.Flipped() {
			r = board.Rank(i)
		}
		fmt.Fprintf(&sb, "%s ", r)
		for j := 0; j < board.NumFiles; j++ {
			f := board.File(j)
			if pos.Flipped() {
				f = board.File(board.NumFiles - 1 - j)
			}
			sq := board.NewSquare(f, r)
			bg := darkSquare
			if sq.IsLight() {
				bg = lightSquare
			}
			sb.WriteString(bg)
			if pc, ok := pos.PieceAt(sq); ok {
				fg := blackPiece
				if pc.Color == board.White {
					fg = whitePiece
				}
				fmt.Fprintf(&sb, "%s %c ", fg, pc.FEN())
			} else {
				sb.WriteString("   ")
			}
			sb.WriteString(colorReset)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(" ")
	for j := 0; j < board.NumFiles; j++ {
		f := board.File(j)
		if pos.Flipped() {
			f = board.File(board.NumFiles - 1 - j)
		}
		fmt.Fprintf(&sb, "  %s", f)
	}
	sb.WriteString("\n")
	return sb.String()
}

func (sc *ShellController) showGame() {
	sc.showMessage(colorBoard(sc.curGame.Position()))
	st := sc.curGame.Status()
	switch {
	case st.Finished():
		sc.showMessage(st.String())
	case sc.curGame.DrawOffered():
		sc.showMessage("a draw offer is pending")
	}
}

func (sc *ShellController) showStatus() {
	st := sc.curGame.Status()
	sc.showMessage(st.String())
	if sc.curGame.DrawOffered() {
		sc.showMessage("a draw offer is pending")
	}
	if st.Finished() {
		return
	}
	pos := sc.curGame.Position()
	if pos.FiftyMoveReady() {
		sc.showMessage("a fifty-move draw could be claimed")
	}
	if pos.InsufficientMaterial() {
		sc.showMessage("neither side has mating material")
	}
}

func (sc *ShellController) runAutoplay(args []string) {
	opts := autoplay.Options{
		Games:       sc.cfg.GetInt("autoplay-games"),
		Concurrency: sc.cfg.GetInt("autoplay-concurrency"),
		Seed:        sc.cfg.GetUint64("autoplay-seed"),
		MaxPlies:    sc.cfg.GetInt("autoplay-max-plies"),
	}
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			sc.showError(fmt.Errorf("option %v needs a value", args[i]))
			return
		}
		value := args[i+1]
		var err error
		switch args[i] {
		case "-games":
			opts.Games, err = strconv.Atoi(value)
		case "-concurrency":
			opts.Concurrency, err = strconv.Atoi(value)
		case "-seed":
			opts.Seed, err = strconv.ParseUint(value, 10, 64)
		case "-max-plies":
			opts.MaxPlies, err = strconv.Atoi(value)
		default:
			err = fmt.Errorf("unrecognized option %v", args[i])
		}
		if err != nil {
			sc.showError(err)
			return
		}
	}
	sc.showMessage(fmt.Sprintf("playing %d random games on %d workers...",
		opts.Games, opts.Concurrency))
	res, err := autoplay.Run(context.Background(), opts)
	if err != nil {
		sc.showError(err)
		return
	}
	sc.showMessage(res.String())
}

func (sc *ShellController) executeLine(line string, sig chan os.Signal) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		sc.showError(err)
		return nil
	}
	if len(fields) == 0 {
		return nil
	}
	args := fields[1:]

	switch fields[0] {
	case "new":
		sc.curGame = game.NewGame()
		sc.showGame()

	case "fen":
		if len(args) == 0 {
			sc.showMessage(sc.curGame.Position().FEN())
			break
		}
		pos, err := position.ParseFEN(strings.Join(args, " "))
		if err != nil {
			sc.showError(err)
			break
		}
		sc.curGame = game.NewGameFromPosition(pos)
		sc.showGame()

	case "move":
		if len(args) != 1 {
			sc.showError(errors.New("move takes one argument, like: move e2e4"))
			break
		}
		m, err := move.Parse(args[0])
		if err != nil {
			sc.showError(err)
			break
		}
		if err := sc.curGame.MakeMove(m); err != nil {
			sc.showError(err)
			break
		}
		sc.showGame()

	case "moves":
		legal := sc.curGame.Position().LegalMoves()
		if len(legal) == 0 {
			sc.showMessage("no legal moves")
			break
		}
		texts := lo.Map(legal, func(m move.Move, _ int) string { return m.String() })
		sort.Strings(texts)
		sc.showMessage(fmt.Sprintf("%d legal moves: %s", len(texts), strings.Join(texts, " ")))

	case "show":
		sc.showGame()

	case "flip":
		pos := sc.curGame.Position()
		pos.SetFlipped(!pos.Flipped())
		sc.showGame()

	case "offer":
		if err := sc.curGame.OfferDraw(); err != nil {
			sc.showError(err)
			break
		}
		sc.showMessage("draw offered")

	case "accept":
		if err := sc.curGame.AcceptDraw(); err != nil {
			sc.showError(err)
			break
		}
		sc.showMessage(sc.curGame.Status().String())

	case "decline":
		if err := sc.curGame.DeclineDraw(); err != nil {
			sc.showError(err)
			break
		}
		sc.showMessage("draw declined")

	case "resign":
		if err := sc.curGame.Resign(); err != nil {
			sc.showError(err)
			break
		}
		sc.showMessage(sc.curGame.Status().String())

	case "history":
		if sc.curGame.History().Len() == 0 {
			sc.showMessage("no moves played")
			break
		}
		sc.showMessage(sc.curGame.History().Movetext())

	case "status":
		sc.showStatus()

	case "perft":
		if len(args) != 1 {
			sc.showError(errors.New("perft takes a depth, like: perft 4"))
			break
		}
		depth, err := strconv.Atoi(args[0])
		if err != nil || depth < 0 {
			sc.showError(errors.New("perft depth must be a non-negative integer"))
			break
		}
		start := time.Now()
		nodes := position.Perft(sc.curGame.Position(), depth)
		sc.showMessage(fmt.Sprintf("perft(%d) = %d in %v",
			depth, nodes, time.Since(start).Round(time.Millisecond)))

	case "svg":
		if len(args) != 1 {
			sc.showError(errors.New("svg takes a file path, like: svg /tmp/position.svg"))
			break
		}
		f, err := os.Create(args[0])
		if err != nil {
			sc.showError(err)
			break
		}
		sc.curGame.Position().WriteSVG(f)
		if err := f.Close(); err != nil {
			sc.showError(err)
			break
		}
		sc.showMessage("wrote " + args[0])

	case "autoplay":
		sc.runAutoplay(args)

	case "setconfig":
		if len(args) != 2 {
			sc.showError(errors.New("setconfig takes a key and a value"))
			break
		}
		sc.cfg.Set(args[0], args[1])
		switch args[0] {
		case "prompt":
			sc.l.SetPrompt(prompt(args[1]))
		case "log-level":
			zerolog.SetGlobalLevel(sc.cfg.ZerologLevel())
		}
		sc.showMessage(args[0] + " is now " + sc.cfg.GetString(args[0]))

	case "help":
		if len(args) == 0 {
			usage(sc.l.Stderr())
		} else {
			usageTopic(sc.l.Stderr(), args[0])
		}

	case "exit", "bye":
		sig <- syscall.SIGINT
		return errExiting

	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		sc.showMessage("unknown command; try `help`")
	}
	return nil
}

// Loop reads and runs commands until an exit command, EOF, or interrupt.
func (sc *ShellController) Loop(sig chan os.Signal) {
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		if err := sc.executeLine(strings.TrimSpace(line), sig); err != nil {
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Execute runs a single command line, for one-shot invocations like
// `caissa "autoplay -games 100"`.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	if err := sc.executeLine(strings.TrimSpace(line), sig); err != nil &&
		!errors.Is(err, errExiting) {
		log.Error().Err(err).Msg("")
	}
}

func (sc *ShellController) Cleanup() {
	sc.l.Close()
}
