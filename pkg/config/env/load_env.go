package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from .env files.
// ENV_PATH overrides defaultPaths. Variables already set in the process
// environment are never overwritten. A missing file is only an error when
// env is "local".
func LoadDotEnv(env string, defaultPaths ...string) error {
	paths := defaultPaths
	if p := os.Getenv("ENV_PATH"); p != "" {
		paths = []string{p}
	} else {
		slog.Debug("ENV_PATH is not set, using default paths", "defaultPaths", defaultPaths)
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if env == "local" {
				slog.Error("Failed to load environment variables in local mode", "path", p, "error", err)
				return err
			}
			slog.Debug("Skipping .env ...", "path", p)
		}
	}

	return nil
}
