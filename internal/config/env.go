package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/frrdocs/internal/logfields"
)

var errNoEnvFile = errors.New("no .env file found")

// loadEnvFiles loads the first of .env/.env.local found in dir.
// Existing process environment variables are not overwritten.
func loadEnvFiles(dir string) error {
	for _, name := range []string{".env", ".env.local"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return err
		}
		slog.Debug("Loaded environment variables", logfields.Path(path))
		return nil
	}
	return errNoEnvFile
}
