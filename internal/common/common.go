// Package common holds the helpers shared by the CLI actions: logging,
// input reading, report output, and configuration assembly.
package common

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/polisapp/copydesk/models"
	dbpkg "github.com/polisapp/copydesk/pkg/db"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// NewLogger builds the JSON logger used by all actions.
func NewLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// ReadInput resolves the text under analysis: --text wins, then --file,
// then stdin.
func ReadInput(c *cli.Context) (string, error) {
	if text := c.String("text"); text != "" {
		return text, nil
	}
	if path := c.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	info, err := os.Stdin.Stat()
	if err == nil && (info.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	return "", fmt.Errorf("no input: pass --text, --file, or pipe text on stdin")
}

// WriteReport prints a report in the requested format. YAML is the
// default; json selects indented JSON.
func WriteReport(w io.Writer, v interface{}, format string) error {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprint(w, string(data))
		return err
	}
}

// OpenDatabase opens the database at --db, or next to the binary when
// the flag is unset.
func OpenDatabase(c *cli.Context) (*dbpkg.DB, error) {
	if path := c.String("db"); path != "" {
		return dbpkg.OpenAt(path)
	}
	return dbpkg.Open()
}

// LoadEngineConfig assembles the effective configuration: built-in
// defaults, overlaid by the --config YAML file, overlaid by settings
// stored in the database. The caller owns the database handle; a nil
// handle skips the stored tier. Both outer tiers are optional and their
// load failures are non-fatal.
func LoadEngineConfig(c *cli.Context, logger *slog.Logger, database *dbpkg.DB) *models.Config {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Warn("Config file not loaded; using defaults", "error", err)
	}

	if database == nil {
		return cfg
	}

	settings, err := database.LoadSettings()
	if err != nil {
		logger.Warn("Failed to load stored settings", "error", err)
		return cfg
	}
	for contentType, target := range settings {
		cfg.SetTarget(contentType, target)
	}

	return cfg
}
