package main

import (
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli"
)

func newApp(stdout, stderr io.Writer) *cli.App {
	r := &runner{
		out:    stdout,
		logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	app := cli.NewApp()
	app.Name = "stateiter"
	app.Usage = "run example sequences and find sequence factories"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level",
			Value:  "info",
			Usage:  "debug, info, warn or error",
			EnvVar: "STATEITER_LOG_LEVEL",
		},
		cli.StringFlag{
			Name:   "log-file",
			Usage:  "also write JSON logs to `FILE`",
			EnvVar: "STATEITER_LOG_FILE",
		},
		cli.BoolFlag{
			Name:  "journal",
			Usage: "also log to the systemd journal",
		},
	}
	app.Before = func(c *cli.Context) error {
		logger, closeLog, err := newLogger(logConfig{
			Level:   c.String("log-level"),
			File:    c.String("log-file"),
			Journal: c.Bool("journal"),
		}, stderr)
		if err != nil {
			return err
		}
		r.logger = logger
		r.closeLog = closeLog
		return nil
	}
	app.After = func(c *cli.Context) error {
		return r.close()
	}
	app.Commands = []cli.Command{
		runCommand(r),
		listCommand(r),
	}
	return app
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
