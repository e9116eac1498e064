package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/gridpath/config"
)

func (a *app) profilesCommand() *cli.Command {
	return &cli.Command{
		Name:  "profiles",
		Usage: "list the built-in search profiles and those of a profiles file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "profiles", Usage: "HCL file with extra profiles"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "output format: text or json"},
		},
		Action: a.listProfiles,
	}
}

func (a *app) listProfiles(_ context.Context, cmd *cli.Command) error {
	ps := config.Builtin()
	if file := cmd.String("profiles"); file != "" {
		var err error
		if ps, err = config.LoadFile(file); err != nil {
			return cli.Exit(err.Error(), exitInvalid)
		}
	}

	switch cmd.String("format") {
	case "json":
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ps.All())
	case "text":
	default:
		return cli.Exit(fmt.Sprintf("unknown format %q", cmd.String("format")), exitInvalid)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMODE\tWEIGHT\tWEIGHT2\tHEURISTICS\tMAX EXPANSIONS")
	for _, p := range ps.All() {
		limit := "-"
		if p.MaxExpansions > 0 {
			limit = fmt.Sprint(p.MaxExpansions)
		}
		fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%s\t%s\n",
			p.Name, p.Mode, p.Weight, p.Weight2, strings.Join(p.HeuristicNames(), ","), limit)
	}
	return tw.Flush()
}
