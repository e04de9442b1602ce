package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const (
	// envFileVariable names the variable that points to an alternative
	// .env file.
	envFileVariable = "ENV_FILE"

	defaultEnvFile = ".env"
)

// loadDotEnv exports the variables of the given .env file (".env" when path
// is empty) into the process environment. Variables that are already set
// keep their value. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}
