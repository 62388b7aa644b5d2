package corvid

import (
	"os"
	"testing"
)

// TestMain initializes the attack tables once before any test or benchmark
// runs — every Position operation depends on them. Grounded on
// treepeck-chego/game_test.go's TestMain(InitAttackTables/InitZobristKeys).
func TestMain(m *testing.M) {
	InitTables()
	os.Exit(m.Run())
}
