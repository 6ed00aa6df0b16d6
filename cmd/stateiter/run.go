package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tmr232/stateiter"
	"github.com/tmr232/stateiter/examples"
	"github.com/urfave/cli"
	"golang.org/x/xerrors"
)

type runner struct {
	out      io.Writer
	logger   *slog.Logger
	closeLog func() error
}

func (r *runner) close() error {
	if r.closeLog == nil {
		return nil
	}
	return r.closeLog()
}

// drain prints up to take items of seq, one per line. A take of 0 prints
// everything, which only finite sequences may ask for.
func drain[T any](r *runner, name string, seq *stateiter.Sequence[T], take int, infinite bool) error {
	if take < 0 {
		return xerrors.Errorf("%s: take must not be negative, got %d", name, take)
	}
	if take == 0 && infinite {
		return xerrors.Errorf("%s never terminates; pass --take", name)
	}

	logger := r.logger.With("sequence", name)
	count := 0
	for take == 0 || count < take {
		item, ok := seq.Pull()
		if !ok {
			logger.Debug("sequence terminated", "items", count)
			break
		}
		if _, err := fmt.Fprintln(r.out, item); err != nil {
			return xerrors.Errorf("writing item: %w", err)
		}
		count++
	}
	logger.Info("done", "items", count)
	return nil
}

func parseItems(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var items []int
	for _, field := range strings.Split(s, ",") {
		x, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, xerrors.Errorf("parsing items: %w", err)
		}
		items = append(items, x)
	}
	return items, nil
}

func takeFlag(value int) cli.IntFlag {
	return cli.IntFlag{
		Name:  "take, n",
		Value: value,
		Usage: "print at most `N` items, 0 for all",
	}
}

func runCommand(r *runner) cli.Command {
	return cli.Command{
		Name:  "run",
		Usage: "print the items of an example sequence",
		Subcommands: []cli.Command{
			{
				Name:  "counter",
				Usage: "count up from 0 forever",
				Flags: []cli.Flag{takeFlag(10)},
				Action: func(c *cli.Context) error {
					return drain(r, "counter", examples.NewInfiniteCounter(), c.Int("take"), true)
				},
			},
			{
				Name:  "finite",
				Usage: "count from 0 up to and including --last",
				Flags: []cli.Flag{
					takeFlag(0),
					cli.IntFlag{Name: "last", Value: 10, Usage: "last value to count to"},
				},
				Action: func(c *cli.Context) error {
					return drain(r, "finite", examples.NewFiniteCounter(c.Int("last")), c.Int("take"), false)
				},
			},
			{
				Name:  "marquee",
				Usage: "rotate a list of integers",
				Flags: []cli.Flag{
					takeFlag(10),
					cli.StringFlag{Name: "items", Value: "0,1,2", Usage: "comma separated integers"},
				},
				Action: func(c *cli.Context) error {
					items, err := parseItems(c.String("items"))
					if err != nil {
						return err
					}
					return drain(r, "marquee", examples.NewMarquee(items), c.Int("take"), true)
				},
			},
			{
				Name:  "fibonacci",
				Usage: "print Fibonacci numbers",
				Flags: []cli.Flag{takeFlag(10)},
				Action: func(c *cli.Context) error {
					return drain(r, "fibonacci", examples.NewFibonacci(), c.Int("take"), false)
				},
			},
		},
	}
}
