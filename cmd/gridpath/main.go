// Command gridpath finds a route between two cells of a random or
// user-described grid and prints it one "x y" pair per line.
//
// Usage:
//
//	gridpath -c 10 -r 10 -s 0 -q 0 -e 9 -t 9 [-o 20] [-l obstacles.json] [--order chain|forward]
//
// The default chain order prints the goal's predecessor first and the start
// last, without the goal itself. --order forward prints start to goal.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
)

const (
	msgFound   = "The way found!!!"
	msgNoRoute = "There is no legal way...You can decrease obstacle ration (default 20)"
)

var requiredKeys = []string{"cols", "rows", "start_x", "start_y", "end_x", "end_y"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one search and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := config.NewFlagSet("gridpath")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := config.Load(fs, requiredKeys...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log, err := config.NewLogger(*cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log.SetOutput(stderr)
	astar.Log = log
	log.WithFields(cfg.Fields()).Debug("config")

	spec, err := cfg.ObstacleSpec()
	if err != nil {
		log.WithError(err).Error("unable to read obstacles")
		return 1
	}

	gg, err := astar.Build(cfg.Cols, cfg.Rows, cfg.Start(), cfg.End(), spec, cfg.SearchOptions()...)
	if err != nil {
		log.WithError(err).Error("unable to build grid")
		return 1
	}
	res, err := astar.Search(gg, cfg.Start(), cfg.End(), cfg.SearchOptions()...)
	if err != nil {
		log.WithError(err).Error("search failed")
		return 1
	}

	if !res.Found {
		if _, breach, err := gg.MinBreach(cfg.Start(), cfg.End()); err == nil {
			log.WithFields(logrus.Fields{
				"obstacles":  gg.ObstacleCount(),
				"min_breach": breach,
			}).Debug("no route")
		}
		fmt.Fprintln(stdout, msgNoRoute)
		return 0
	}

	fmt.Fprintln(stdout, msgFound)
	printPoints(stdout, output(res, cfg.Order))

	return 0
}

// output picks the lines to print. A start == end route has an empty chain,
// so the single cell is printed instead.
func output(res *astar.Result, order string) []gridgraph.Point {
	if order == config.OrderForward {
		return res.Path
	}
	if chain := res.PredecessorChain(); len(chain) > 0 {
		return chain
	}
	return res.Path
}

func printPoints(w io.Writer, points []gridgraph.Point) {
	for _, p := range points {
		fmt.Fprintln(w, p)
	}
}
