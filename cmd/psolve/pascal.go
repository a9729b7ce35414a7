package main

import (
	"fmt"

	"github.com/g-m-twostay/psolving/Maths"
	"github.com/spf13/cobra"
)

func (a *app) pascalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pascal",
		Short: "Print the first rows of Pascal's triangle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := a.v.GetInt("pascal.rows")
			a.log.Debug("printing triangle", "rows", rows)
			if err := Maths.PrintPascalTriangle(cmd.OutOrStdout(), rows); err != nil {
				return fmt.Errorf("pascal triangle of %d rows: %w", rows, err)
			}
			return nil
		},
	}
	cmd.Flags().Int("rows", 5, "number of rows")
	a.bind("pascal.rows", cmd.Flags().Lookup("rows"))
	return cmd
}
