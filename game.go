/*
game.go wraps Position in a session object that also remembers the move
history and can render it as SAN, the way a UCI front end or CLI session
needs. Grounded on treepeck-chego/game.go's Game struct and PushMove, cut
down to what Position no longer already tracks itself (Position now owns
its own repetition ring and terminal-outcome detection, both of which the
teacher's Game used to do with a separate string-keyed map).
*/
package corvid

// Game is a played-out sequence of positions, starting from some initial
// FEN, plus the SAN text of each move played so it can be replayed or
// printed without re-deriving disambiguation from scratch.
type Game struct {
	Initial  Position
	Position Position
	SANMoves []string
	Moves    []Move
}

// NewGame starts a game from the standard initial position.
func NewGame() (*Game, error) {
	return NewGameFromFEN(StartPos)
}

// NewGameFromFEN starts a game from an arbitrary FEN.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{Initial: pos, Position: pos}, nil
}

// PushMove plays mv, which must be legal in the current position, and
// records its SAN text and the resulting position.
func (g *Game) PushMove(mv Move) {
	san := MoveToSAN(&g.Position, mv)
	g.Position.Play(mv)
	g.SANMoves = append(g.SANMoves, san)
	g.Moves = append(g.Moves, mv)
}

// IsMoveLegal reports whether mv appears in the current position's legal
// move list.
func (g *Game) IsMoveLegal(mv Move) bool {
	legal := LegalMoves(&g.Position)
	for i := 0; i < legal.Count; i++ {
		if legal.Moves[i] == mv {
			return true
		}
	}
	return false
}

// FindMove looks up the legal move from `from` to `to`, optionally
// promoting to promo (ignored for non-promotion moves). Used by the UCI
// front end to turn a "from-to[promo]" token into a Move.
func (g *Game) FindMove(from, to int, promo PromotionKind) (Move, bool) {
	legal := LegalMoves(&g.Position)
	for i := 0; i < legal.Count; i++ {
		m := legal.Moves[i]
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Kind() == Promotion && m.Promotion() != promo {
			continue
		}
		return m, true
	}
	return NoMove, false
}
