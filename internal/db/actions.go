// Package db implements the saved-run inspection CLI commands.
package db

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/polisapp/copydesk/internal/common"
	"github.com/urfave/cli/v2"
)

// RunsAction lists recent saved analysis runs.
func RunsAction(c *cli.Context) error {
	database, err := common.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListAnalyses(c.Int("limit"))
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No saved runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-15s %-8s %-8s %-9s %-20s\n",
		"ID", "Created", "Type", "Grade", "Target", "OnTarget", "Readiness")
	fmt.Println(strings.Repeat("-", 95))
	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-15s %-8.1f %-8.1f %-9t %-20s\n",
			r.AnalysisID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.ContentType,
			r.AverageGrade,
			r.TargetGrade,
			r.OnTarget,
			r.Readiness,
		)
	}
	fmt.Printf("\nTotal: %d run(s)\n", len(runs))
	fmt.Printf("\nTip: Use 'copydesk db run <id>' to see the full report\n")
	return nil
}

// RunAction prints the full stored report of one run.
func RunAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("run ID is required")
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run ID: %s", c.Args().First())
	}

	database, err := common.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	run, err := database.GetAnalysis(id)
	if err != nil {
		return err
	}

	fmt.Println(run.ReportJSON)
	return nil
}
