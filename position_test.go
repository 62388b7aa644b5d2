package corvid

import "testing"

func TestParseSquareRoundTrip(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		s := squareString(sq)
		got, err := parseSquare(s)
		if err != nil {
			t.Fatalf("parseSquare(%q): %v", s, err)
		}
		if got != sq {
			t.Errorf("parseSquare(%q) = %d, want %d", s, got, sq)
		}
	}
}

func TestParseSquareMonotoneFileMajor(t *testing.T) {
	a1, _ := parseSquare("a1")
	h1, _ := parseSquare("h1")
	a2, _ := parseSquare("a2")
	if a1 != 0 || h1 != 7 || a2 != 8 {
		t.Errorf("a1=%d h1=%d a2=%d, want 0 7 8", a1, h1, a2)
	}
}

func TestParseSquareOutOfRange(t *testing.T) {
	for _, s := range []string{"i1", "a9", "a", "a11", ""} {
		if _, err := parseSquare(s); err == nil {
			t.Errorf("parseSquare(%q): expected error, got nil", s)
		}
	}
}

func TestParseFENStartPos(t *testing.T) {
	p, err := ParseFEN(StartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if p.SideToMove() != White {
		t.Errorf("side to move = %v, want White", p.SideToMove())
	}
	if p.Castling() != WhiteKingside|WhiteQueenside|BlackKingside|BlackQueenside {
		t.Errorf("castling = %b, want all four rights", p.Castling())
	}
	if p.EPTarget() != -1 {
		t.Errorf("ep target = %d, want -1", p.EPTarget())
	}
	if p.HalfmoveClock() != 0 || p.FullmoveNumber() != 1 {
		t.Errorf("clocks = (%d,%d), want (0,1)", p.HalfmoveClock(), p.FullmoveNumber())
	}
	if p.ByColor(White).PopCount() != 16 || p.ByColor(Black).PopCount() != 16 {
		t.Errorf("piece counts wrong: white=%d black=%d", p.ByColor(White).PopCount(), p.ByColor(Black).PopCount())
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := SerializeFEN(&p); got != fen {
			t.Errorf("round trip mismatch: got %q, want %q", got, fen)
		}
	}
}

func TestMalformedFENIsError(t *testing.T) {
	for _, fen := range []string{"", "not a fen", "8/8/8/8/8/8/8 w - - 0 1"} {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected error, got nil", fen)
		}
	}
}

func TestInvariantDisjointColorsAndKings(t *testing.T) {
	p, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if p.ByColor(White)&p.ByColor(Black) != 0 {
		t.Error("by_color[White] and by_color[Black] are not disjoint")
	}
	if p.ByKind(King).PopCount() != 2 {
		t.Errorf("king count = %d, want 2", p.ByKind(King).PopCount())
	}
	var union Bitboard
	for k := PieceKind(0); k < NumPieceKinds; k++ {
		union |= p.ByKind(k)
	}
	if union != p.Occupied() {
		t.Error("union of by_kind boards does not equal occupied squares")
	}
}

// perft counts the leaf nodes of the legal-move tree rooted at p, to depth,
// the ground-truth correctness test spec.md §8 requires.
func perft(p Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	legal := LegalMoves(&p)
	if depth == 1 {
		return int64(legal.Count)
	}
	var nodes int64
	for i := 0; i < legal.Count; i++ {
		child := p
		child.Play(legal.Moves[i])
		nodes += perft(child, depth-1)
	}
	return nodes
}

func TestPerftStartPos(t *testing.T) {
	p, err := ParseFEN(StartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	want := []int64{1, 20, 400, 8902, 197281}
	if !testing.Short() {
		want = append(want, 4865609)
	}
	for depth, w := range want {
		if got := perft(p, depth); got != w {
			t.Errorf("perft(startpos, %d) = %d, want %d", depth, got, w)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := perft(p, 1); got != 48 {
		t.Errorf("perft(kiwipete, 1) = %d, want 48", got)
	}
	if testing.Short() {
		return
	}
	if got := perft(p, 4); got != 4085603 {
		t.Errorf("perft(kiwipete, 4) = %d, want 4085603", got)
	}
}

func TestPerftEndgamePosition(t *testing.T) {
	const fen = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := perft(p, 5); got != 674624 {
		t.Errorf("perft(endgame, 5) = %d, want 674624", got)
	}
}

func TestThreefoldRepetition(t *testing.T) {
	p, err := ParseFEN(StartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := []struct{ from, to int }{
		{6, 21}, {62, 45}, // Ng1f3, Ng8f6
		{21, 6}, {45, 62}, // Nf3g1, Nf6g8
	}
	for rep := 0; rep < 4; rep++ {
		for _, mv := range moves {
			legal := LegalMoves(&p)
			found := false
			for i := 0; i < legal.Count; i++ {
				if legal.Moves[i].From() == mv.from && legal.Moves[i].To() == mv.to {
					p.Play(legal.Moves[i])
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("rep %d: no legal move %d->%d", rep, mv.from, mv.to)
			}
		}
		if p.Outcome == DrawThreefold {
			return
		}
	}
	t.Error("expected DrawThreefold after repeating the knight shuffle")
}

func TestFiftyMoveRule(t *testing.T) {
	// King and rook against king (enough material to mate, so no
	// insufficient-material draw), halfmove clock at 96: the first-listed
	// legal move in each of the next four plies is a quiet king step, so
	// the clock climbs uninterrupted to 100 before any position can recur
	// three times.
	p, err := ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 96 49")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for p.HalfmoveClock() < 100 && !p.Outcome.IsOver() {
		legal := LegalMoves(&p)
		if legal.Count == 0 {
			t.Fatal("ran out of legal moves before reaching the fifty-move threshold")
		}
		p.Play(legal.Moves[0])
	}
	if p.Outcome != DrawFiftyMove {
		t.Errorf("outcome = %v, want DrawFiftyMove (halfmove clock %d)", p.Outcome, p.HalfmoveClock())
	}
}

func TestEnPassantTargetInvariant(t *testing.T) {
	p, err := ParseFEN(StartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	legal := LegalMoves(&p)
	for i := 0; i < legal.Count; i++ {
		if legal.Moves[i].Kind() == DoublePawnPush {
			p.Play(legal.Moves[i])
			break
		}
	}
	if p.EPTarget() < 0 {
		t.Fatal("expected an ep target after a double pawn push")
	}
	// The pushing side just moved, so it is no longer the side to move.
	behind := p.EPTarget() - 8
	if p.SideToMove() == Black {
		behind = p.EPTarget() + 8
	}
	if k, _, ok := p.PieceAt(behind); !ok || k != Pawn {
		t.Errorf("expected a pawn of the side not to move on %d", behind)
	}
}
