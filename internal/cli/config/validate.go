package config

import (
	"fmt"
	"os"
)

// ValidateDictDir checks that the configured dictionary directory is
// set and actually a directory. Play and words commands require it.
func ValidateDictDir(cfg *Config) error {
	if cfg.DictDir == "" {
		return fmt.Errorf("dictionary directory is required (set --dict-dir, HANGMAN_DICT_DIR, or dict_dir in hangman.yaml)")
	}
	info, err := os.Stat(cfg.DictDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("dictionary directory does not exist: %s", cfg.DictDir)
		}
		return fmt.Errorf("dictionary directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", cfg.DictDir)
	}
	return nil
}
