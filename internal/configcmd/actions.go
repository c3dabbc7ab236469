// Package configcmd implements the config inspection and mutation CLI
// commands.
package configcmd

import (
	"fmt"
	"os"

	"github.com/polisapp/copydesk/internal/common"
	"github.com/polisapp/copydesk/models"
	"github.com/urfave/cli/v2"
)

// ShowAction prints the effective configuration after all tiers merge.
func ShowAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	database, err := common.OpenDatabase(c)
	if err != nil {
		logger.Warn("Database unavailable; skipping stored settings", "error", err)
		database = nil
	} else {
		defer database.Close()
	}

	cfg := common.LoadEngineConfig(c, logger, database)
	return common.WriteReport(os.Stdout, cfg, c.String("format"))
}

// SetTargetAction persists one content type's grade target so it
// overrides the built-in default without a restart or redeploy.
func SetTargetAction(c *cli.Context) error {
	contentType := c.String("type")
	if contentType == "" {
		return fmt.Errorf("content type is required")
	}
	if !c.IsSet("target") {
		return fmt.Errorf("target grade is required")
	}

	target := models.GradeTarget{
		Target: c.Float64("target"),
		Min:    c.Float64("min"),
		Max:    c.Float64("max"),
		Note:   c.String("note"),
	}
	if target.Min == 0 && target.Max == 0 {
		target.Min = target.Target - 1
		target.Max = target.Target + 2
	}
	if target.Max < target.Min {
		return fmt.Errorf("max grade %.1f is below min grade %.1f", target.Max, target.Min)
	}

	database, err := common.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	if err := database.SaveSetting(contentType, target); err != nil {
		return err
	}

	fmt.Printf("Set %s target to grade %.0f (range %.0f-%.0f)\n",
		contentType, target.Target, target.Min, target.Max)
	return nil
}
