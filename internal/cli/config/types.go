// Package config provides configuration for the hangman CLI, loaded
// from a yaml file, environment variables, and flags.
package config

// DefaultLogFile is where the diagnostic log goes when --log-file is
// not given.
const DefaultLogFile = "hangman.log"

// Config holds the resolved runtime configuration.
type Config struct {
	// DictDir is the directory holding the WordNet data files
	// (data.noun, data.verb, data.adj, data.adv).
	DictDir string `koanf:"dict_dir"`
	// LogFile is where the append-only diagnostic log is written.
	LogFile string `koanf:"log_file"`
	// Verbose enables debug-level log records.
	Verbose bool `koanf:"verbose"`
}
