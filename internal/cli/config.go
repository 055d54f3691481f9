package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides: AOCSEARCH_INPUT_DIR, ...
const envPrefix = "AOCSEARCH"

// Config is the resolved run configuration. Precedence, highest first:
// explicit flag, environment (including the .env file), flag default.
type Config struct {
	InputDir      string
	LogLevel      slog.Level
	MaxExpansions int
	Stats         bool
}

// loadEnvFile exports the variables of a dotenv file. A missing file is not
// an error; variables already present in the environment win.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// loadConfig binds the root persistent flags and the environment into v and
// reads the result back.
func loadConfig(v *viper.Viper, root *cobra.Command) (Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(root.PersistentFlags()); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	cfg := Config{
		InputDir:      v.GetString("input-dir"),
		MaxExpansions: v.GetInt("max-expansions"),
		Stats:         v.GetBool("stats"),
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return Config{}, fmt.Errorf("log-level: %w", err)
	}
	if cfg.MaxExpansions < 0 {
		return Config{}, fmt.Errorf("max-expansions must be ≥ 0, got %d", cfg.MaxExpansions)
	}
	return cfg, nil
}
