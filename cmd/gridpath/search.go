package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/mhastar"
	"github.com/katalvlaran/gridpath/pathexport"
)

func (a *app) searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "find a path on a map file",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "map", Aliases: []string{"m"}, Required: true, Usage: "map file, or - for stdin"},
			&cli.StringFlag{Name: "start", Usage: "override the map's start, as x,y"},
			&cli.StringFlag{Name: "goal", Usage: "override the map's goal, as x,y"},
			&cli.StringFlag{Name: "profile", Aliases: []string{"p"}, Usage: "named search profile"},
			&cli.StringFlag{Name: "profiles", Usage: "HCL file with extra profiles"},
			&cli.StringFlag{Name: "mode", Usage: "astar, weighted, uniform or sequential"},
			&cli.FloatFlag{Name: "weight", Aliases: []string{"w"}, Usage: "heuristic inflation weight"},
			&cli.FloatFlag{Name: "weight2", Usage: "non-anchor lane tolerance (sequential)"},
			&cli.StringSliceFlag{Name: "heuristic", Aliases: []string{"H"}, Usage: "heuristic, repeatable; the first is the anchor"},
			&cli.IntFlag{Name: "max-expansions", Usage: "give up after this many expansions (0: unlimited)"},
			&cli.DurationFlag{Name: "timeout", Value: time.Minute, Usage: "search time limit"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "output format: text, json or geojson"},
			&cli.BoolFlag{Name: "verify", Usage: "compare the cost against the exact optimum"},
		},
		Action: a.search,
	}
}

func (a *app) search(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	switch format {
	case "text", "json", "geojson":
	default:
		return cli.Exit(fmt.Sprintf("unknown format %q", format), exitInvalid)
	}

	m, err := readMap(cmd.String("map"))
	if err != nil {
		return cli.Exit(err.Error(), exitInvalid)
	}
	for _, end := range []struct {
		flag string
		dst  *grid.Coord
	}{{"start", &m.Start}, {"goal", &m.Goal}} {
		if !cmd.IsSet(end.flag) {
			continue
		}
		if *end.dst, err = grid.ParseCoord(cmd.String(end.flag)); err != nil {
			return cli.Exit(err.Error(), exitInvalid)
		}
	}

	profile, err := profileFromFlags(cmd)
	if err != nil {
		return cli.Exit(err.Error(), exitInvalid)
	}

	logger := a.logger.With(slog.String("profile", profile.Name))
	if !m.Grid.Connected(m.Start, m.Goal) {
		logger.Warn("start and goal lie in different components",
			slog.String("start", m.Start.String()),
			slog.String("goal", m.Goal.String()),
		)
	}

	ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()

	opts := append(profile.Options(), mhastar.WithLogger(logger))
	res, err := mhastar.Search(ctx, m.Grid, m.Start, m.Goal, opts...)
	switch {
	case errors.Is(err, mhastar.ErrInvalidConfiguration):
		return cli.Exit(err.Error(), exitInvalid)
	case errors.Is(err, mhastar.ErrNoPath):
		return cli.Exit(fmt.Sprintf("%v: %v → %v", err, m.Start, m.Goal), exitNoPath)
	case err != nil:
		return cli.Exit(err.Error(), exitFailure)
	}

	var check *verification
	if cmd.Bool("verify") {
		if check, err = verify(m.Grid, res, profile); err != nil {
			return cli.Exit(err.Error(), exitFailure)
		}
	}

	return writeResult(a.stdout, format, m, profile, res, check)
}

// readMap decodes the map at path; "-" reads stdin.
func readMap(path string) (*grid.Map, error) {
	if path == "-" {
		return grid.Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := grid.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// profileFromFlags picks the named profile, or builds one from the inline
// flags. The two are mutually exclusive.
func profileFromFlags(cmd *cli.Command) (*config.Profile, error) {
	inline := cmd.IsSet("mode") || cmd.IsSet("weight") || cmd.IsSet("weight2") || cmd.IsSet("heuristic")

	if name := cmd.String("profile"); name != "" {
		if inline {
			return nil, errors.New("--profile cannot be combined with --mode, --weight, --weight2 or --heuristic")
		}
		ps := config.Builtin()
		if file := cmd.String("profiles"); file != "" {
			var err error
			if ps, err = config.LoadFile(file); err != nil {
				return nil, err
			}
		}
		p, err := ps.Get(name)
		if err != nil {
			return nil, err
		}
		if cmd.IsSet("max-expansions") {
			limited := *p
			limited.MaxExpansions = cmd.Int("max-expansions")
			p = &limited
		}
		return p, nil
	}

	params := config.Params{Name: "flags", Heuristics: cmd.StringSlice("heuristic")}
	if cmd.IsSet("mode") {
		mode := cmd.String("mode")
		params.Mode = &mode
	} else if len(params.Heuristics) > 1 {
		// More than one heuristic implies the sequential mode.
		mode := string(mhastar.ModeSequential)
		params.Mode = &mode
	} else if cmd.IsSet("weight") {
		mode := string(mhastar.ModeWeighted)
		params.Mode = &mode
	}
	if cmd.IsSet("weight") {
		w := cmd.Float("weight")
		params.Weight = &w
	}
	if cmd.IsSet("weight2") {
		w2 := cmd.Float("weight2")
		params.Weight2 = &w2
	}
	if cmd.IsSet("max-expansions") {
		n := cmd.Int("max-expansions")
		params.MaxExpansions = &n
	}
	return params.Resolve()
}

// verification compares a result with the exact optimum.
type verification struct {
	Optimal float64 `json:"optimal"`
	Ratio   float64 `json:"ratio"`
	// Bound is the suboptimality guarantee of the profile, or 0 when the
	// map has highways or the anchor is inadmissible and no bound holds.
	Bound  float64 `json:"bound,omitempty"`
	Within bool    `json:"within"`
}

func verify(g *grid.Grid, res *mhastar.Result, p *config.Profile) (*verification, error) {
	_, opt, err := dijkstra.ShortestPath(g, res.Path[0], res.Path[len(res.Path)-1])
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	v := &verification{Optimal: opt, Ratio: 1, Within: true}
	if opt > 0 {
		v.Ratio = res.Cost / opt
	}

	anchor := p.Heuristics[0]
	if anchor == heuristic.Uniform || (anchor.Admissible() && !hasHighways(g)) {
		v.Bound = math.Max(p.Weight, 1)
		if len(p.Heuristics) > 1 {
			v.Bound *= p.Weight2
		}
		v.Within = v.Ratio <= v.Bound+1e-9
	}
	return v, nil
}

func hasHighways(g *grid.Grid) bool {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(grid.C(x, y)).Highway() {
				return true
			}
		}
	}
	return false
}

// searchOutput is the JSON form of a search result.
type searchOutput struct {
	Start      grid.Coord     `json:"start"`
	Goal       grid.Coord     `json:"goal"`
	Profile    string         `json:"profile"`
	Mode       mhastar.Mode   `json:"mode"`
	Path       []grid.Coord   `json:"path"`
	Cost       float64        `json:"cost"`
	Lane       int            `json:"lane"`
	Heuristic  heuristic.Kind `json:"heuristic"`
	Expansions int            `json:"expansions"`
	Verify     *verification  `json:"verify,omitempty"`
}

func writeResult(w io.Writer, format string, m *grid.Map, p *config.Profile, res *mhastar.Result, check *verification) error {
	switch format {
	case "geojson":
		data, err := pathexport.Marshal(m.Grid, res, pathexport.WithObstacles())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(searchOutput{
			Start:      m.Start,
			Goal:       m.Goal,
			Profile:    p.Name,
			Mode:       p.Mode,
			Path:       res.Path,
			Cost:       res.Cost,
			Lane:       res.Lane,
			Heuristic:  res.Heuristic,
			Expansions: res.Expansions,
			Verify:     check,
		})
	}

	cells := make([]string, len(res.Path))
	for i, c := range res.Path {
		cells[i] = c.String()
	}
	fmt.Fprintf(w, "profile:    %s (%s)\n", p.Name, p.Mode)
	fmt.Fprintf(w, "path:       %s\n", strings.Join(cells, " "))
	fmt.Fprintf(w, "cells:      %d\n", len(res.Path))
	fmt.Fprintf(w, "cost:       %.4f\n", res.Cost)
	fmt.Fprintf(w, "lane:       %d (%s)\n", res.Lane, res.Heuristic)
	fmt.Fprintf(w, "expansions: %d\n", res.Expansions)
	if check != nil {
		fmt.Fprintf(w, "optimal:    %.4f (ratio %.4f)\n", check.Optimal, check.Ratio)
		if check.Bound > 0 {
			fmt.Fprintf(w, "bound:      %.4f (within: %t)\n", check.Bound, check.Within)
		}
	}
	return nil
}
