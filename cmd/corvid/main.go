// Command corvid runs the engine as a UCI subprocess: it reads commands on
// stdin and writes UCI responses on stdout, exactly as a controlling GUI
// expects (spec.md §6). Grounded on treepeck-chego's root main.go being a
// standalone demo binary (superseded here) and on treepeck-chego/internal
// perft.go's flag/log wiring style for the startup plumbing.
package main

import (
	"flag"
	"fmt"
	"os"

	"corvid"
)

func main() {
	configPath := flag.String("config", "corvid.toml", "path to an optional TOML config file")
	flag.Parse()

	corvid.InitTables()

	cfg, err := corvid.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corvid: %v\n", err)
		os.Exit(1)
	}
	corvid.InitLogging(corvid.ParseLogLevel(cfg.LogLevel))

	engine := corvid.NewEngine(os.Stdout, cfg)
	engine.Run(os.Stdin)
}
