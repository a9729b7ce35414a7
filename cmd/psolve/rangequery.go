package main

import (
	"fmt"
	"slices"

	"github.com/g-m-twostay/psolving/Trees"
	"github.com/spf13/cobra"
)

func (a *app) rangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Report the keys of a balanced search tree within [low, high]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			low, high := a.v.GetInt("range.low"), a.v.GetInt("range.high")
			sorted, err := a.ints("range.keys")
			if err != nil {
				return err
			}
			slices.Sort(sorted)
			tree := Trees.From(sorted, false)
			a.log.Debug("built tree", "size", len(sorted), "height", Trees.Height(tree))
			res, err := Trees.QueryRange(tree, low, high)
			if err != nil {
				return fmt.Errorf("range query: %w", err)
			}
			if a.v.GetBool("range.dot") {
				_, err = fmt.Fprint(cmd.OutOrStdout(), Trees.Dot(tree, low, high))
				return err
			}
			found := res.Slice()
			slices.Sort(found)
			a.log.Info("range query", "low", low, "high", high, "found", len(found))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), found)
			return err
		},
	}
	cmd.Flags().IntSlice("keys", nil, "comma separated tree keys, in any order")
	cmd.Flags().Int("low", 0, "lower bound, inclusive")
	cmd.Flags().Int("high", 0, "upper bound, inclusive, greater than low")
	cmd.Flags().Bool("dot", false, "print the tree as a Graphviz digraph with the keys in range filled")
	a.bind("range.keys", cmd.Flags().Lookup("keys"))
	a.bind("range.low", cmd.Flags().Lookup("low"))
	a.bind("range.high", cmd.Flags().Lookup("high"))
	a.bind("range.dot", cmd.Flags().Lookup("dot"))
	return cmd
}
