package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"setdex/internal/analysis"
	"setdex/internal/setdex"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var tier string
	var gen string
	var jsonOutput bool
	var render bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a single analysis file and show its sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := ctx.newRun(cmd, "parse")
			if err != nil {
				return err
			}
			path := args[0]
			dex, stats, err := setdex.ParseFile(path, tier, gen)
			if err != nil {
				return err
			}
			logger.Debug("analysis parsed",
				"path", path,
				"sets", stats.Sets,
				"discarded", stats.Discarded,
			)

			out := cmd.OutOrStdout()
			switch {
			case jsonOutput:
				return writeJSON(cmd, newParseView(dex))
			case render:
				fmt.Fprintln(out, setdex.Serialize(dex))
				return nil
			}
			if dex.Len() == 0 {
				fmt.Fprintln(out, "No sets kept")
				return nil
			}
			fmt.Fprintln(out, renderSetsTable(dex))
			if stats.Discarded > 0 {
				fmt.Fprintf(out, "%d set(s) discarded\n", stats.Discarded)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tier, "tier", "", "Tier label (default: the file's directory name)")
	cmd.Flags().StringVar(&gen, "gen", "", "Generation code (default: derived from the file's path)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the sets as JSON")
	cmd.Flags().BoolVar(&render, "render", false, "Print the sets in setdex object syntax")
	cmd.MarkFlagsMutuallyExclusive("json", "render")
	return cmd
}

func renderSetsTable(dex *setdex.Setdex) string {
	headers := []string{"Subject", "Set", "Lvl", "Nature", "Ability", "Item", "Moves"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignLeft}
	var rows [][]string
	for _, subject := range dex.Subjects() {
		for _, set := range dex.Sets(subject) {
			d := set.Details
			rows = append(rows, []string{
				subject,
				set.Label,
				strconv.Itoa(d.Level),
				d.Nature,
				d.Ability,
				d.Item,
				joinMoves(d.Moves),
			})
		}
	}
	return renderTable(headers, rows, aligns, nil)
}

func joinMoves(moves [4]string) string {
	parts := make([]string, 0, len(moves))
	for _, move := range moves {
		if move == analysis.NullMove {
			continue
		}
		parts = append(parts, move)
	}
	return strings.Join(parts, ", ")
}

type parseView struct {
	Subjects []subjectView `json:"subjects"`
}

type subjectView struct {
	Subject string    `json:"subject"`
	Sets    []setView `json:"sets"`
}

type setView struct {
	Label   string            `json:"label"`
	Level   int               `json:"level"`
	EVs     map[string]string `json:"evs,omitempty"`
	IVs     map[string]string `json:"ivs,omitempty"`
	Nature  string            `json:"nature,omitempty"`
	Ability string            `json:"ability,omitempty"`
	Item    string            `json:"item,omitempty"`
	Moves   []string          `json:"moves"`
}

func newParseView(dex *setdex.Setdex) parseView {
	view := parseView{Subjects: make([]subjectView, 0, dex.Len())}
	for _, subject := range dex.Subjects() {
		sv := subjectView{Subject: subject}
		for _, set := range dex.Sets(subject) {
			d := set.Details
			sv.Sets = append(sv.Sets, setView{
				Label:   set.Label,
				Level:   d.Level,
				EVs:     spreadView(d.EVs),
				IVs:     spreadView(d.IVs),
				Nature:  d.Nature,
				Ability: d.Ability,
				Item:    d.Item,
				Moves:   d.Moves[:],
			})
		}
		view.Subjects = append(view.Subjects, sv)
	}
	return view
}

func spreadView(spread analysis.Spread) map[string]string {
	if spread == nil {
		return nil
	}
	out := make(map[string]string, len(spread))
	for stat, value := range spread {
		out[string(stat)] = value
	}
	return out
}
