// Package cli renders a Position as a human-readable board, for debug
// logging and for tests that fail perft to dump the offending position.
//
// Grounded on treepeck-chego/cli/cli.go's FormatBitboard/FormatPosition,
// adapted from the teacher's fixed [12]uint64 bitboard array and
// enum.Piece/enum.Color/enum.CastlingFlag types to this module's
// corvid.Position accessor surface.
package cli

import (
	"strings"

	"corvid"
)

var pieceSymbols = [corvid.NumPieceKinds][2]rune{
	corvid.Pawn:   {'♙', '♟'},
	corvid.Bishop: {'♗', '♝'},
	corvid.Knight: {'♘', '♞'},
	corvid.Rook:   {'♖', '♜'},
	corvid.Queen:  {'♕', '♛'},
	corvid.King:   {'♔', '♚'},
}

// FormatPosition renders p as an 8x8 board with file/rank labels, followed
// by active color, en-passant target and castling rights — the same layout
// treepeck-chego/cli.FormatPosition uses.
func FormatPosition(p *corvid.Position) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte('1' + rank))
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			symbol := '.'
			if k, c, ok := p.PieceAt(sq); ok {
				symbol = pieceSymbols[k][c]
			}
			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	b.WriteString("Active color: ")
	if p.SideToMove() == corvid.White {
		b.WriteString("white\n")
	} else {
		b.WriteString("black\n")
	}

	b.WriteString("En passant: ")
	if p.EPTarget() < 0 {
		b.WriteString("none\n")
	} else {
		b.WriteString(corvid.SquareString(p.EPTarget()))
		b.WriteByte('\n')
	}

	b.WriteString("Castling rights: ")
	rights := p.Castling()
	if rights&corvid.WhiteKingside != 0 {
		b.WriteByte('K')
	}
	if rights&corvid.WhiteQueenside != 0 {
		b.WriteByte('Q')
	}
	if rights&corvid.BlackKingside != 0 {
		b.WriteByte('k')
	}
	if rights&corvid.BlackQueenside != 0 {
		b.WriteByte('q')
	}
	if rights == 0 {
		b.WriteByte('-')
	}
	b.WriteByte('\n')

	return b.String()
}
