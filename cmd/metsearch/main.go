package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/five82/metsearch/internal/app"
	"github.com/five82/metsearch/internal/logtail"
)

const defaultLogLines = 50

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// A .env in the working directory may supply METSEARCH_* variables.
	_ = godotenv.Load()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "metsearch: %v\n", err)
		return 1
	}
	return 0
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "metsearch",
		Usage: "Browse the Metropolitan Museum of Art collection from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "config file path (default ~/.config/metsearch/config.toml)",
				EnvVars: []string{"METSEARCH_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "prefs",
				Usage: "preferences file path (default ~/.config/metsearch/prefs.toml)",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "diagnostics log path; overrides log_file from config",
				EnvVars: []string{"METSEARCH_LOG_FILE"},
			},
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "search to run on start; positional arg is a fallback",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log request starts in addition to outcomes",
			},
		},
		Action: runAction,
		Commands: []*cli.Command{
			{
				Name:  "logs",
				Usage: "Print the end of the diagnostics log",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "lines",
						Aliases: []string{"n"},
						Usage:   "number of lines to print; 0 prints the whole file",
						Value:   defaultLogLines,
					},
				},
				Action: logsAction,
			},
		},
	}
}

func runAction(c *cli.Context) error {
	query := strings.TrimSpace(c.String("query"))
	if query == "" && c.NArg() > 0 {
		query = strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	}

	return app.Run(c.Context, app.Options{
		ConfigPath: c.String("config"),
		PrefsPath:  c.String("prefs"),
		LogFile:    c.String("log-file"),
		Query:      query,
		Debug:      c.Bool("debug"),
	})
}

func logsAction(c *cli.Context) error {
	path, err := app.ResolveLogPath(c.String("config"), c.String("log-file"))
	if err != nil {
		return err
	}
	lines, err := logtail.Read(path, c.Int("lines"))
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Fprintf(c.App.ErrWriter, "no diagnostics recorded at %s\n", path)
		return nil
	}
	for _, line := range logtail.NewColorizer(nil).Lines(lines) {
		fmt.Fprintln(c.App.Writer, line)
	}
	return nil
}
