package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/g-m-twostay/psolving/Sets/Multiset"
	"github.com/spf13/cobra"
)

func (a *app) intersectCmd() *cobra.Command {
	var flagSets []string
	cmd := &cobra.Command{
		Use:   "intersect [--set SET]... [SET...]",
		Short: "Intersect multisets of integers, keeping repeats",
		Long: "Each SET is a comma separated list of integers, for example 1,2,2,3. " +
			"The intersection holds every value as many times as it appears in all sets, printed in ascending order. " +
			"Sets starting with a negative number must be given with --set, as in --set -1,2, or after --.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := append(slices.Clone(flagSets), args...)
			if len(all) == 0 {
				return errors.New("requires at least 1 set")
			}
			sets := make([][]int, len(all))
			for i, arg := range all {
				s, err := parseInts(arg)
				if err != nil {
					return fmt.Errorf("set %d: %w", i+1, err)
				}
				sets[i] = s
			}
			res := Multiset.Intersect(sets...)
			slices.Sort(res)
			a.log.Debug("intersected", "sets", len(sets), "size", len(res))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), res)
			return err
		},
	}
	cmd.Flags().StringArrayVar(&flagSets, "set", nil, "a comma separated multiset, repeatable, intersected before the positional SETs")
	return cmd
}
