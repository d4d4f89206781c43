package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// defaultDotEnvFiles are tried in order. A value from .env.local wins over
// .env because godotenv never overrides variables that are already set.
var defaultDotEnvFiles = []string{".env.local", ".env"}

// loadDotEnv loads every existing file from files. Missing files are skipped.
func loadDotEnv(files ...string) error {
	for _, file := range files {
		err := godotenv.Load(file)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}

		return fmt.Errorf("error loading %s: %w", file, err)
	}

	return nil
}
