package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newWellsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "wells",
		Short: "List the wells in the table with their sample counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := c.table(cmd.Context())
			if err != nil {
				return err
			}
			wells, err := tbl.Wells()
			if err != nil {
				return err
			}
			counts, err := tbl.WellCounts()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total rows: %s\n", humanize.Comma(int64(tbl.Len())))
			fmt.Fprintf(out, "Wells: %d\n", len(wells))
			for _, w := range wells {
				fmt.Fprintf(out, "%s: %s\n", w, humanize.Comma(int64(counts[w])))
			}
			return nil
		},
	}
}
