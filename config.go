/*
config.go loads optional engine defaults from a TOML file (corvid.toml in
the working directory unless cmd/corvid's -config flag names another path).
Grounded on other_examples/manifests/frankkopp-FrankyGo/go.mod and
Mgrdich-TermChess/go.mod, the two manifests in the retrieval pack that carry
github.com/BurntSushi/toml; neither is a complete repo in this pack, so the
decode call itself follows toml's own documented DecodeFile idiom rather
than a teacher file. UCI setoption can override the Hash and LogLevel
fields at runtime. A missing file is not an error, since the engine must
remain usable with no configuration at all; a malformed file is.
*/
package corvid

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the engine defaults a corvid.toml file may override. HashSizeMB
// and LogLevel also have UCI setoption equivalents (Hash, LogLevel), which
// take precedence once the engine is running; the other fields have none.
type Config struct {
	EngineName   string `toml:"engine_name"`
	EngineAuthor string `toml:"engine_author"`
	HashSizeMB   int    `toml:"hash_size_mb"`
	Contempt     int    `toml:"contempt"`
	LogLevel     string `toml:"log_level"`
}

// DefaultConfig is used whenever no corvid.toml is present or a field is
// absent from one that is.
func DefaultConfig() Config {
	return Config{
		EngineName:   "corvid",
		EngineAuthor: "corvid contributors",
		HashSizeMB:   64,
		Contempt:     -10,
		LogLevel:     "INFO",
	}
}

// LoadConfig reads path and overlays it onto DefaultConfig. A missing file
// is not an error — the defaults apply. A malformed file is an error, since
// an operator who placed a corvid.toml likely wants to know it was ignored.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
