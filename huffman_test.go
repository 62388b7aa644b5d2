package corvid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHuffmanCodesCoverEveryIndex(t *testing.T) {
	for i, c := range moveIndexCodes {
		if c.size == 0 {
			t.Fatalf("move-list index %d has no assigned Huffman code", i)
		}
	}
}

func TestHuffmanEncodeDecodeRoundTrip(t *testing.T) {
	indices := []int{0, 0, 1, 5, 20, 0, 217, 3}
	encoded := EncodeMoveIndices(indices)
	decoded := DecodeMoveIndices(encoded, len(indices))

	require.Len(t, decoded, len(indices))
	require.Equal(t, indices, decoded)
}

func TestHuffmanFrequentIndicesGetShorterCodes(t *testing.T) {
	// Index 0 is by far the most frequent in moveIndexFrequency, so its
	// Huffman code must be no longer than a rarely-seen high index.
	if moveIndexCodes[0].size > moveIndexCodes[150].size {
		t.Errorf("code for index 0 (%d bits) should not be longer than index 150 (%d bits)",
			moveIndexCodes[0].size, moveIndexCodes[150].size)
	}
}

func TestEncodeDecodeGameMoves(t *testing.T) {
	g, err := NewGame()
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	for i := 0; i < 6; i++ {
		legal := LegalMoves(&g.Position)
		if legal.Count == 0 {
			break
		}
		g.PushMove(legal.Moves[i%legal.Count])
	}

	encoded := EncodeGameMoves(g)
	replayed, err := DecodeGameMoves(SerializeFEN(&g.Initial), encoded, len(g.Moves))
	if err != nil {
		t.Fatalf("DecodeGameMoves: %v", err)
	}
	if SerializeFEN(&replayed.Position) != SerializeFEN(&g.Position) {
		t.Errorf("replayed position = %q, want %q", SerializeFEN(&replayed.Position), SerializeFEN(&g.Position))
	}
}
