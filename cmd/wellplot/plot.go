package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iafilius/welltracks/src/charts"
)

func newPlotCmd(c *cli) *cobra.Command {
	var well, kind, variant string
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render one chart for one well",
		Example: `  wellplot plot -i logs.csv --well "15/9-F-11 A" --kind litho --variant val
  wellplot plot -i logs.xlsx#Logs --well A-1 --kind gas --headless --preview-dir previews`,
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
			res, err := charts.Plot(tbl, well, kind, v, c.output(reg, true))
			if err != nil {
				return err
			}
			printResult(cmd, res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&well, "well", "w", "", "Well identifier")
	cmd.Flags().StringVarP(&kind, "kind", "k", "litho", "Chart kind (see 'wellplot kinds')")
	cmd.Flags().StringVarP(&variant, "variant", "v", "data", "Variant: data, val or test")
	_ = cmd.MarkFlagRequired("well")
	return cmd
}

func printResult(cmd *cobra.Command, res charts.Result) {
	out := cmd.OutOrStdout()
	if res.Saved != "" {
		fmt.Fprintf(out, "%s\t%s\t%s\t%d panels\t%s\n", res.Well, res.Kind, res.Variant, res.Panels, res.Saved)
		return
	}
	fmt.Fprintf(out, "%s\t%s\t%s\t%d panels\n", res.Well, res.Kind, res.Variant, res.Panels)
}
