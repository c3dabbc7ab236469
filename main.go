package main

import (
	"log"
	"os"

	"github.com/polisapp/copydesk/internal/analyze"
	"github.com/polisapp/copydesk/internal/configcmd"
	"github.com/polisapp/copydesk/internal/corpus"
	dbcmd "github.com/polisapp/copydesk/internal/db"
	"github.com/polisapp/copydesk/internal/score"
	"github.com/polisapp/copydesk/internal/style"
	"github.com/urfave/cli/v2"
)

func main() {
	inputFlags := []cli.Flag{
		&cli.StringFlag{Name: "text", Usage: "text to analyze"},
		&cli.StringFlag{Name: "file", Usage: "file containing the text to analyze"},
	}

	app := &cli.App{
		Name:  "copydesk",
		Usage: "score and critique drafted campaign copy",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file"},
			&cli.StringFlag{Name: "db", Usage: "path to the database (default: next to the binary)"},
			&cli.StringFlag{Name: "format", Value: "yaml", Usage: "output format: yaml or json"},
			&cli.BoolFlag{Name: "quiet", Usage: "log errors only"},
		},
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "full readability, structure, and suggestion report",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "type", Value: "statement", Usage: "content type (statement, press_release, speech, ...)"},
					&cli.Float64Flag{Name: "target", Usage: "override the target grade"},
					&cli.Float64Flag{Name: "tolerance", Usage: "override the grade tolerance"},
					&cli.StringFlag{Name: "speaker", Usage: "also check style against this speaker's corpus"},
					&cli.BoolFlag{Name: "strict", Usage: "use the stricter spoken-delivery sentence thresholds"},
					&cli.BoolFlag{Name: "save", Usage: "save the run to the database"},
				}, inputFlags...),
				Action: analyze.AnalyzeAction,
			},
			{
				Name:  "runon",
				Usage: "flag run-on sentences",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{Name: "strict", Usage: "use the stricter spoken-delivery thresholds"},
					&cli.BoolFlag{Name: "all", Usage: "print every sentence, not just flagged ones"},
				}, inputFlags...),
				Action: analyze.RunOnAction,
			},
			{
				Name:  "style",
				Usage: "speaker style profiles",
				Subcommands: []*cli.Command{
					{
						Name:  "build",
						Usage: "build and print a speaker's style profile",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "speaker", Required: true, Usage: "speaker name"},
						},
						Action: style.BuildAction,
					},
					{
						Name:  "check",
						Usage: "check a new text against a speaker's profile",
						Flags: append([]cli.Flag{
							&cli.StringFlag{Name: "speaker", Required: true, Usage: "speaker name"},
						}, inputFlags...),
						Action: style.CheckAction,
					},
				},
			},
			{
				Name:  "score",
				Usage: "weighted quality score and readiness verdict",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "type", Value: "statement", Usage: "assignment type keyed into the criteria sets"},
					&cli.Float64Flag{Name: "target", Usage: "override the target grade"},
					&cli.Float64Flag{Name: "tolerance", Usage: "override the grade tolerance"},
					&cli.StringFlag{Name: "speaker", Usage: "style-check against this speaker's corpus"},
					&cli.StringFlag{Name: "brief", Usage: "path to a YAML communications brief"},
				}, inputFlags...),
				Action: score.ScoreAction,
			},
			{
				Name:  "corpus",
				Usage: "manage speaker reference corpora",
				Subcommands: []*cli.Command{
					{
						Name:  "import",
						Usage: "fetch transcript pages and store their paragraphs as quotes",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "speaker", Required: true, Usage: "speaker name"},
							&cli.StringFlag{Name: "urls", Required: true, Usage: "comma-separated transcript URLs"},
						},
						Action: corpus.ImportAction,
					},
					{
						Name:  "add",
						Usage: "store one quote directly",
						Flags: append([]cli.Flag{
							&cli.StringFlag{Name: "speaker", Required: true, Usage: "speaker name"},
							&cli.StringFlag{Name: "source", Usage: "source URL or citation"},
						}, inputFlags...),
						Action: corpus.AddAction,
					},
					{
						Name:   "list",
						Usage:  "list speakers and corpus sizes",
						Action: corpus.ListAction,
					},
					{
						Name:  "show",
						Usage: "print one speaker's stored quotes",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "speaker", Required: true, Usage: "speaker name"},
						},
						Action: corpus.ShowAction,
					},
				},
			},
			{
				Name:  "config",
				Usage: "inspect and tune scoring configuration",
				Subcommands: []*cli.Command{
					{
						Name:   "show",
						Usage:  "print the effective configuration",
						Action: configcmd.ShowAction,
					},
					{
						Name:  "set-target",
						Usage: "persist a content type's grade target",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "type", Required: true, Usage: "content type"},
							&cli.Float64Flag{Name: "target", Usage: "target grade"},
							&cli.Float64Flag{Name: "min", Usage: "lowest acceptable grade"},
							&cli.Float64Flag{Name: "max", Usage: "highest acceptable grade"},
							&cli.StringFlag{Name: "note", Usage: "editorial note"},
						},
						Action: configcmd.SetTargetAction,
					},
				},
			},
			{
				Name:  "db",
				Usage: "inspect saved runs",
				Subcommands: []*cli.Command{
					{
						Name:  "runs",
						Usage: "list recent saved runs",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "max rows"},
						},
						Action: dbcmd.RunsAction,
					},
					{
						Name:   "run",
						Usage:  "print one saved run's full report",
						Action: dbcmd.RunAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
