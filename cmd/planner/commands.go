package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
	"github.com/KirkDiggler/loadout-planner/internal/domain/rulebook/compatibility"
	"github.com/KirkDiggler/loadout-planner/internal/domain/rulebook/setbonus"
	"github.com/spf13/cobra"
)

func newEvaluateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Print a build's set bonus totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := opts.open(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			eval, err := s.planner.Evaluate(ctx, s.buildID)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd, eval)
			}

			stats := make([]string, 0, len(eval.Totals))
			for stat := range eval.Totals {
				stats = append(stats, stat)
			}
			sort.Strings(stats)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STAT\tTOTAL\tBUCKETS")
			for _, stat := range stats {
				buckets := ""
				for _, view := range eval.Breakdown[stat] {
					buckets += fmt.Sprintf("%gx%d", view.Value, view.Count)
					if view.Capped {
						buckets += "(capped)"
					}
					buckets += " "
				}
				fmt.Fprintf(w, "%s\t%g%%\t%s\n", setbonus.DisplayName(stat), eval.Totals[stat], buckets)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			for _, d := range eval.Diagnostics {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s in %s: %s (%s)\n", d.SetID, d.PowerName, d.Detail, d.Kind)
			}
			return nil
		},
	}
}

type lookupFlags struct {
	power    string
	category string
	setType  string
}

func (f *lookupFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.power, "power", "", "power name")
	cmd.Flags().StringVar(&f.category, "category", string(catalog.CategoryIOSet), "set category: io-set, purple, ato, event")
	_ = cmd.MarkFlagRequired("power")
}

func newCompatibleCmd(opts *options) *cobra.Command {
	flags := &lookupFlags{}
	cmd := &cobra.Command{
		Use:   "compatible",
		Short: "List the sets a power can slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			matches, err := compatibleSets(cmd, opts, flags)
			if err != nil {
				return err
			}
			matches = compatibility.FilterByType(matches, flags.setType)
			if opts.asJSON {
				out := make([]map[string]any, 0, len(matches))
				for _, m := range matches {
					out = append(out, map[string]any{"id": m.SetID, "name": m.Set.Name, "type": m.Set.Type})
				}
				return printJSON(cmd, out)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tLEVELS")
			for _, m := range matches {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d-%d\n", m.SetID, m.Set.Name, m.Set.Type, m.Set.MinLevel, m.Set.MaxLevel)
			}
			return w.Flush()
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&flags.setType, "type", "", "only list one set type")
	return cmd
}

func newTypesCmd(opts *options) *cobra.Command {
	flags := &lookupFlags{}
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Count the compatible sets of a power per set type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			matches, err := compatibleSets(cmd, opts, flags)
			if err != nil {
				return err
			}
			counts := compatibility.CountByType(matches)
			if opts.asJSON {
				return printJSON(cmd, counts)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tSETS")
			for _, tc := range counts {
				fmt.Fprintf(w, "%s\t%d\n", tc.Type, tc.Count)
			}
			return w.Flush()
		},
	}
	flags.bind(cmd)
	return cmd
}

func compatibleSets(cmd *cobra.Command, opts *options, flags *lookupFlags) ([]compatibility.SetMatch, error) {
	ctx := cmd.Context()
	s, err := opts.open(ctx)
	if err != nil {
		return nil, err
	}
	defer s.close()

	return s.planner.CompatibleSets(ctx, s.buildID, flags.power, catalog.SetCategory(flags.category))
}
