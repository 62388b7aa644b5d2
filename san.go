/*
san.go renders a legal move as Standard Algebraic Notation. Grounded on
treepeck-chego/san.go's Move2SAN and disambiguate, adapted to the new Move
encoding (which already carries piece kind and captured-piece kind, so SAN
no longer needs to re-derive them from the board before the move is made)
and to Position's check/pin-mask move generator for disambiguation and the
trailing +/# marker.
*/
package corvid

import "strings"

var pieceSANLetter = [NumPieceKinds]byte{0, 'B', 'N', 'R', 'Q', 'K'}

var promoSANLetter = [4]byte{'N', 'B', 'R', 'Q'}

// MoveToSAN renders mv, which must be legal in p, as SAN text. p must be
// the position mv is about to be played in, not the position after.
func MoveToSAN(p *Position, mv Move) string {
	if mv.Kind() == KingsideCastle {
		return castleSAN(p, mv, "O-O")
	}
	if mv.Kind() == QueensideCastle {
		return castleSAN(p, mv, "O-O-O")
	}

	var b strings.Builder
	piece := mv.Piece()
	from, to := mv.From(), mv.To()

	if piece == Pawn {
		if mv.IsCapture() {
			b.WriteByte("abcdefgh"[fileOf(from)])
			b.WriteByte('x')
		}
		b.WriteString(squareString(to))
		if mv.Kind() == Promotion {
			b.WriteByte('=')
			b.WriteByte(promoSANLetter[mv.Promotion()])
		}
	} else {
		b.WriteByte(pieceSANLetter[piece])
		b.WriteString(disambiguate(p, mv))
		if mv.IsCapture() {
			b.WriteByte('x')
		}
		b.WriteString(squareString(to))
	}

	b.WriteString(checkSuffix(p, mv))
	return b.String()
}

// disambiguate returns the minimal file/rank/square prefix needed to tell
// mv apart from any other legal move of the same piece kind to the same
// destination square.
func disambiguate(p *Position, mv Move) string {
	piece, from, to := mv.Piece(), mv.From(), mv.To()

	sameFile, sameRank, ambiguous := false, false, false
	legal := LegalMoves(p)
	for i := 0; i < legal.Count; i++ {
		other := legal.Moves[i]
		if other == mv || other.Piece() != piece || other.To() != to {
			continue
		}
		ambiguous = true
		if fileOf(other.From()) == fileOf(from) {
			sameFile = true
		}
		if rankOf(other.From()) == rankOf(from) {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}
	switch {
	case !sameFile:
		return string(rune('a' + fileOf(from)))
	case !sameRank:
		return string(rune('1' + rankOf(from)))
	default:
		return squareString(from)
	}
}

func castleSAN(p *Position, mv Move, text string) string {
	return text + checkSuffix(p, mv)
}

// checkSuffix plays mv on a scratch copy of p and reports whether it
// delivers check ("+") or checkmate ("#").
func checkSuffix(p *Position, mv Move) string {
	after := *p
	after.Play(mv)
	if !InCheck(&after, after.sideToMove) {
		return ""
	}
	if LegalMoves(&after).Count == 0 {
		return "#"
	}
	return "+"
}
