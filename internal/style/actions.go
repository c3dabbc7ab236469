// Package style implements the style build/check CLI commands.
package style

import (
	"fmt"
	"os"

	"github.com/polisapp/copydesk/internal/common"
	"github.com/polisapp/copydesk/pkg/styleprofile"
	"github.com/urfave/cli/v2"
)

// BuildAction builds and prints a speaker's style profile from their
// stored reference corpus.
func BuildAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	speaker := c.String("speaker")
	if speaker == "" {
		return fmt.Errorf("speaker name is required")
	}

	database, err := common.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	corpus, err := database.QuotesForSpeaker(speaker)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	logger.Info("Building style profile", "speaker", speaker, "quotes", len(corpus))

	profiler := styleprofile.NewProfiler(nil)
	profile := profiler.BuildProfile(corpus)
	if profile.SampleCount == 0 {
		logger.Warn("Empty corpus; profile carries no variance data", "speaker", speaker)
	}

	return common.WriteReport(os.Stdout, profile, c.String("format"))
}

// CheckAction compares a new text against a speaker's profile.
func CheckAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	speaker := c.String("speaker")
	if speaker == "" {
		return fmt.Errorf("speaker name is required")
	}

	text, err := common.ReadInput(c)
	if err != nil {
		return err
	}

	database, err := common.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	corpus, err := database.QuotesForSpeaker(speaker)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	profiler := styleprofile.NewProfiler(nil)
	profile := profiler.BuildProfile(corpus)
	deviations := profiler.CheckConsistency(text, profile)

	logger.Info("Checked style consistency",
		"speaker", speaker,
		"corpus_size", profile.SampleCount,
		"deviations", len(deviations),
	)

	if len(deviations) == 0 {
		fmt.Println("No style deviations found")
		return nil
	}
	return common.WriteReport(os.Stdout, deviations, c.String("format"))
}
