package corvid

import "testing"

// TestZobristIncrementalMatchesFromScratch plays a sequence of moves and its
// reverse is unnecessary to model explicitly (Play has no Unplay); instead
// this recomputes the hash from scratch after every incremental Play and
// checks the two agree at each step, which is the property spec.md §8's
// Zobrist test ultimately checks.
func TestZobristIncrementalMatchesFromScratch(t *testing.T) {
	p, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	for ply := 0; ply < 6; ply++ {
		if p.Outcome.IsOver() {
			break
		}
		legal := LegalMoves(&p)
		if legal.Count == 0 {
			break
		}
		p.Play(legal.Moves[ply%legal.Count])

		if want := computeZobrist(&p); want != p.Zobrist() {
			t.Fatalf("ply %d: incremental zobrist %x != from-scratch %x", ply, p.Zobrist(), want)
		}
	}
}

func TestZobristInjectivePieceWords(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := 0; i < 12; i++ {
		for sq := 0; sq < 64; sq++ {
			w := zobristPiece[i][sq]
			if seen[w] {
				t.Fatalf("duplicate zobrist piece word at index %d, square %d", i, sq)
			}
			seen[w] = true
		}
	}
}
