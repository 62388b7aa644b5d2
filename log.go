/*
log.go sets up the engine's diagnostic logger. Grounded on
other_examples/c95dcd73_frankkopp-FrankyGo__internal-attacks-attacks.go.go and
a222fc5b_frankkopp-FrankyGo__internal-movegen-movegen.go.go, which both hold a
package-level *logging.Logger from github.com/op/go-logging (manifest:
other_examples/manifests/frankkopp-FrankyGo/go.mod). The UCI front end writes
only the wire protocol to stdout; its diagnostics — unknown commands,
malformed position commands, debug and setoption notes — go through this
logger to stderr, so they can never corrupt the UCI stream a GUI is parsing.
A config load failure happens before InitLogging runs, so cmd/corvid prints
it to stderr directly instead.
*/
package corvid

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("corvid")

// InitLogging wires the package logger to stderr with a level controllable
// at runtime (the UCI front end exposes this via `setoption name LogLevel`).
func InitLogging(level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc} > %{message}`,
	))
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}

// ParseLogLevel maps a UCI setoption value to a go-logging level, defaulting
// to INFO for an unrecognized string rather than erroring — a malformed
// LogLevel value should never take down a running engine.
func ParseLogLevel(s string) logging.Level {
	lvl, err := logging.LogLevel(s)
	if err != nil {
		return logging.INFO
	}
	return lvl
}
