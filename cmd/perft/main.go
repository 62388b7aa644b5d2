// Command perft walks the move-generation tree of strictly legal moves to a
// given depth and counts visited leaf nodes — the ground-truth correctness
// test spec.md §8 requires. Grounded on treepeck-chego/internal/perft.go's
// flag/log/pprof wiring (depth, verbose, cpuprofile, memprofile flags), with
// the teacher's standalone position-formatting helper replaced by this
// module's cli.FormatPosition.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"corvid"
	"corvid/cli"
)

// perft counts leaf nodes of the legal-move tree rooted at p, to depth.
func perft(p corvid.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	legal := corvid.LegalMoves(&p)
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

// perftDivide prints, for each root move, the node count below it — the
// standard way to localize a move-generator bug against a known-good perft
// table entry.
func perftDivide(p corvid.Position, depth int) int64 {
	legal := corvid.LegalMoves(&p)
	var total int64
	for i := 0; i < legal.Count; i++ {
		child := p
		child.Play(legal.Moves[i])
		n := perft(child, depth-1)
		total += n
		log.Printf("%s %d", corvid.MoveToSAN(&p, legal.Moves[i]), n)
	}
	return total
}

func main() {
	corvid.InitTables()

	fen := flag.String("fen", corvid.StartPos, "FEN of the root position")
	depth := flag.Int("depth", 5, "perft depth")
	verbose := flag.Bool("verbose", false, "print per-root-move node counts (divide)")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile")
	memprofile := flag.String("memprofile", "", "file to write a memory profile")
	flag.Parse()

	pos, err := corvid.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parse FEN: %v", err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	var nodes int64
	if *verbose {
		log.Printf("\nRoot position:\n%s\n\t%s\n\n", cli.FormatPosition(&pos), *fen)
		nodes = perftDivide(pos, *depth)
	} else {
		nodes = perft(pos, *depth)
	}
	elapsed := time.Since(start)

	log.Printf("depth %d: %d nodes in %s (%.0f nodes/sec)",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		pprof.WriteHeapProfile(f)
	}
}
