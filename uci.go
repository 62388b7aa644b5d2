/*
uci.go implements the Universal Chess Interface read/eval/print loop spec.md
§6 describes. No file in the 208-file retrieval pack implements a full UCI
loop (treepeck-chego/uci.go only renders a Move as long algebraic notation,
reused below as moveToUCI) — spec.md §1 treats the UCI front end as an
external collaborator "specified only by its interface to the core", so this
file is grounded directly on spec §6's command list rather than on a
third-party protocol library, and uses only the standard library (bufio,
fmt) plus this module's own log.go/config.go for its ambient concerns.
*/
package corvid

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Engine holds everything a running UCI session needs: the current game,
// the search state, configuration, and the in-flight search's cancellation
// handle, if any.
type Engine struct {
	out io.Writer
	cfg Config

	game     *Game
	searcher *Searcher

	mu         sync.Mutex
	searching  bool
	cancelFunc context.CancelFunc
	searchDone chan struct{}
}

// NewEngine constructs an Engine writing UCI responses to out, configured
// from cfg.
func NewEngine(out io.Writer, cfg Config) *Engine {
	g, _ := NewGame()
	return &Engine{out: out, cfg: cfg, game: g, searcher: NewSearcher()}
}

// Run reads UCI commands from in until it closes or a "quit" command
// arrives.
func (e *Engine) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !e.dispatch(line) {
			return
		}
	}
}

func (e *Engine) send(format string, args ...any) {
	fmt.Fprintf(e.out, format+"\n", args...)
}

// dispatch handles one line of UCI input. It returns false when the engine
// should stop reading (a "quit" command).
func (e *Engine) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	rest := fields[1:]

	switch cmd {
	case "uci":
		e.send("id name %s", e.cfg.EngineName)
		e.send("id author %s", e.cfg.EngineAuthor)
		e.send("option name Hash type spin default %d min 1 max 4096", e.cfg.HashSizeMB)
		e.send("option name LogLevel type string default %s", e.cfg.LogLevel)
		e.send("uciok")
	case "debug":
		// Accepted and ignored beyond logging: this engine has no separate
		// debug-info stream distinct from `info string`.
		log.Debugf("debug %v", rest)
	case "isready":
		e.send("readyok")
	case "setoption":
		e.handleSetOption(rest)
	case "ucinewgame":
		e.stopSearch()
		e.searcher = NewSearcher()
		g, _ := NewGame()
		e.game = g
	case "position":
		e.handlePosition(rest)
	case "go":
		e.handleGo(rest)
	case "stop":
		e.stopSearch()
	case "ponderhit":
		// No pondering support (spec.md §1 Non-goals); treated as a no-op.
	case "quit":
		e.stopSearch()
		return false
	default:
		log.Warningf("Unknown command: %s", cmd)
	}
	return true
}

func (e *Engine) handleSetOption(rest []string) {
	// "name <id> [value <x>]"
	if len(rest) < 2 || rest[0] != "name" {
		return
	}
	var nameParts, valueParts []string
	i := 1
	for i < len(rest) && rest[i] != "value" {
		nameParts = append(nameParts, rest[i])
		i++
	}
	if i < len(rest) {
		valueParts = rest[i+1:]
	}
	name := strings.Join(nameParts, " ")
	value := strings.Join(valueParts, " ")

	switch name {
	case "Hash":
		if n, err := strconv.Atoi(value); err == nil {
			e.cfg.HashSizeMB = n
		}
	case "LogLevel":
		InitLogging(ParseLogLevel(value))
		e.cfg.LogLevel = value
	default:
		log.Debugf("setoption: unknown option %q", name)
	}
}

func (e *Engine) handlePosition(rest []string) {
	if len(rest) == 0 {
		return
	}

	var g *Game
	var err error
	idx := 0

	switch rest[0] {
	case "startpos":
		g, err = NewGame()
		idx = 1
	case "fen":
		fenFields := rest[1:]
		movesAt := len(fenFields)
		for i, f := range fenFields {
			if f == "moves" {
				movesAt = i
				break
			}
		}
		fen := strings.Join(fenFields[:movesAt], " ")
		g, err = NewGameFromFEN(fen)
		idx = 1 + movesAt
	default:
		log.Errorf("position: expected startpos or fen, got %q", rest[0])
		return
	}
	if err != nil {
		log.Errorf("position: %v", err)
		return
	}

	if idx < len(rest) && rest[idx] == "moves" {
		for _, tok := range rest[idx+1:] {
			mv, ok := parseUCIMove(g, tok)
			if !ok {
				log.Errorf("position: illegal or malformed move %q", tok)
				return
			}
			g.PushMove(mv)
		}
	}

	e.game = g
}

// parseUCIMove decodes a long-algebraic move token ("e2e4", "e7e8q") against
// g's current legal moves.
func parseUCIMove(g *Game, tok string) (Move, bool) {
	if len(tok) < 4 {
		return NoMove, false
	}
	from, err1 := parseSquare(tok[0:2])
	to, err2 := parseSquare(tok[2:4])
	if err1 != nil || err2 != nil {
		return NoMove, false
	}
	promo := PromoQueen
	if len(tok) >= 5 {
		switch tok[4] {
		case 'q':
			promo = PromoQueen
		case 'r':
			promo = PromoRook
		case 'b':
			promo = PromoBishop
		case 'n':
			promo = PromoKnight
		default:
			return NoMove, false
		}
	}
	return g.FindMove(from, to, promo)
}

// moveToUCI renders mv as long algebraic notation, e.g. "e2e4" or "e7e8q".
// Grounded on treepeck-chego/uci.go's Move2UCI.
func moveToUCI(mv Move) string {
	var b strings.Builder
	b.Grow(5)
	b.WriteString(squareString(mv.From()))
	b.WriteString(squareString(mv.To()))
	if mv.Kind() == Promotion {
		b.WriteByte(promoUCILetter[mv.Promotion()])
	}
	return b.String()
}

var promoUCILetter = [4]byte{'n', 'b', 'r', 'q'}

const infiniteBudget = 30 * time.Second

// handleGo parses the `go` subcommand arguments into a time budget per
// spec.md §4.3 and launches the search asynchronously, so a `stop` arriving
// on the next input line can cancel it.
func (e *Engine) handleGo(rest []string) {
	e.stopSearch()

	depth := 0
	budget := e.timeBudget(rest, &depth)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	e.mu.Lock()
	e.searching = true
	e.cancelFunc = cancel
	e.searchDone = done
	e.mu.Unlock()

	pos := e.game.Position
	go func() {
		defer close(done)
		start := time.Now()
		result := e.searcher.FindBestMove(ctx, &pos, depth, budget)
		elapsed := time.Since(start)

		e.reportInfo(result, elapsed)

		ponder := ""
		e.send("bestmove %s%s", bestMoveString(result.Best), ponder)

		e.mu.Lock()
		e.searching = false
		e.mu.Unlock()
	}()
}

func bestMoveString(mv Move) string {
	if mv == NoMove {
		return "0000"
	}
	return moveToUCI(mv)
}

func (e *Engine) reportInfo(result SearchResult, elapsed time.Duration) {
	ms := elapsed.Milliseconds()
	if plies, ok := result.Score.MateDistance(); ok {
		mateMoves := (plies + 1) / 2
		e.send("info depth %d score mate %d nodes %d time %d", result.Depth, mateMoves, result.Nodes, ms)
	} else {
		e.send("info depth %d score cp %d nodes %d time %d", result.Depth, result.Score.CPValue(), result.Nodes, ms)
	}
}

// timeBudget implements spec.md §4.3's time-control formulas. depth is set
// to the requested search-depth limit, or left at 0 ("unlimited") if none
// was given.
func (e *Engine) timeBudget(rest []string, depth *int) time.Duration {
	side := e.game.Position.SideToMove()

	var wtime, btime, winc, binc, movetime int
	movestogo := 0
	haveRemaining := false
	infinite := false

	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case "infinite":
			infinite = true
		case "depth":
			i++
			if i < len(rest) {
				*depth, _ = strconv.Atoi(rest[i])
			}
		case "movetime":
			i++
			if i < len(rest) {
				movetime, _ = strconv.Atoi(rest[i])
			}
		case "wtime":
			i++
			if i < len(rest) {
				wtime, _ = strconv.Atoi(rest[i])
				haveRemaining = true
			}
		case "btime":
			i++
			if i < len(rest) {
				btime, _ = strconv.Atoi(rest[i])
				haveRemaining = true
			}
		case "winc":
			i++
			if i < len(rest) {
				winc, _ = strconv.Atoi(rest[i])
			}
		case "binc":
			i++
			if i < len(rest) {
				binc, _ = strconv.Atoi(rest[i])
			}
		case "movestogo":
			i++
			if i < len(rest) {
				movestogo, _ = strconv.Atoi(rest[i])
			}
		}
	}

	switch {
	case infinite:
		return infiniteBudget
	case movetime > 0:
		return time.Duration(float64(movetime)*0.96) * time.Millisecond
	case haveRemaining:
		remaining, inc := wtime, winc
		if side == Black {
			remaining, inc = btime, binc
		}
		ms := inc + remaining/(movestogo+1)
		if ms <= 0 {
			ms = 50
		}
		return time.Duration(ms) * time.Millisecond
	default:
		return infiniteBudget
	}
}

func (e *Engine) stopSearch() {
	e.mu.Lock()
	cancel := e.cancelFunc
	done := e.searchDone
	searching := e.searching
	e.mu.Unlock()

	if !searching || cancel == nil {
		return
	}
	cancel()
	<-done
}
