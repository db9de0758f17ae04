package main

import (
	"github.com/spf13/cobra"

	"github.com/iafilius/welltracks/src/charts"
)

func newBatchCmd(c *cli) *cobra.Command {
	var kind, variant string
	var workers int
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Render one chart per well for every well in the table",
		Long: `batch renders the chart for every well without opening windows. Validation
charts are saved to --out; with --preview-dir every figure is also written
as a preview PNG.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := charts.ParseVariant(variant)
			if err != nil {
				return err
			}
			reg, err := c.registry()
			if err != nil {
				return err
			}
			tbl, err := c.table(cmd.Context())
			if err != nil {
				return err
			}
			results, err := charts.Batch(cmd.Context(), tbl, kind, v, c.output(reg, false), workers)
			if err != nil {
				return err
			}
			for _, res := range results {
				printResult(cmd, res)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "litho", "Chart kind")
	cmd.Flags().StringVarP(&variant, "variant", "v", "val", "Variant: data, val or test")
	cmd.Flags().IntVar(&workers, "workers", c.cfg.Workers, "Concurrent renders")
	return cmd
}
