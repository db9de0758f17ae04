package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iafilius/welltracks/src/charts"
)

func newKindsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List chart kinds and their panels",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range reg.Names() {
				k, err := reg.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\n", k.Name)
				fmt.Fprintf(out, "  columns:  %s / %s\n", k.Truth, k.Pred)
				var pairs []string
				for i, col := range k.Palette {
					label := "?"
					if i < len(k.Classes) {
						label = k.Classes[i]
					}
					pairs = append(pairs, fmt.Sprintf("%d=%s(%s)", i, label, col))
				}
				fmt.Fprintf(out, "  classes:  %s\n", strings.Join(pairs, " "))
				fmt.Fprintf(out, "  panels:   data %d, val %d, test %d\n",
					charts.PanelCount(k, charts.VariantData), charts.PanelCount(k, charts.VariantVal), charts.PanelCount(k, charts.VariantTest))
				fmt.Fprintf(out, "  saves as: <well> %s.png\n", k.Suffix)
			}
			return nil
		},
	}
}
