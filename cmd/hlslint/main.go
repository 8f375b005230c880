// Command hlslint reads an HLS playlist, reports each line by kind, and
// flags the first line that fails to classify.
package main

import (
	"fmt"
	"os"

	"github.com/lightninglabs/btclog"
	"github.com/urfave/cli/v2"
)

var (
	log     btclog.Logger
	handler *btclog.DefaultHandler
)

func main() {
	handler = btclog.NewDefaultHandler(os.Stderr)
	log = btclog.NewSLogger(handler)

	app := &cli.App{
		Name:  "hlslint",
		Usage: "lint and optionally rewrite an HLS playlist, line by line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "loglevel",
				Usage: "trace, debug, info, warn, error, critical",
				Value: "info",
			},
			&cli.BoolFlag{
				Name:  "rewrite",
				Usage: "round-trip the playlist through mutate/serialize and write it back out",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "destination for -rewrite output (default: stdout)",
			},
		},
		ArgsUsage: "<playlist-file|->",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "hlslint:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if lvl, ok := btclog.LevelFromString(c.String("loglevel")); ok {
		handler.SetLevel(lvl)
	}

	path := c.Args().First()
	if path == "" {
		return cli.Exit("missing playlist file argument (use - for stdin)", 2)
	}

	data, err := readInput(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading %s: %s", path, err), 1)
	}

	report, lintErr := lintPlaylist(path, data)
	for _, l := range report.lines {
		log.Infof("line %d: %s", l.number, l.kind)
	}
	if lintErr != nil {
		log.Errorf("%s:%d: %s", path, lintErr.line, lintErr.err)
		return cli.Exit("lint failed", 1)
	}
	log.Infof("%s: %d lines, no errors", path, len(report.lines))

	if !c.Bool("rewrite") {
		return nil
	}

	out, err := rewritePlaylist(data)
	if err != nil {
		return cli.Exit(fmt.Sprintf("rewrite: %s", err), 1)
	}
	return writeOutput(c.String("output"), out)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return readAllStdin()
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
