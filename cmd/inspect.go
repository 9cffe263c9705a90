package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfeldner/gridrewind/pkg/export"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [dataset.json]",
	Short: "Summarise a previously written scenario dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  inspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func inspect(cmd *cobra.Command, args []string) error {
	d, err := export.ReadFile(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s (%d-%d)\n", d.Metadata.RunID, d.Metadata.StartYear, d.Metadata.EndYear)
	fmt.Fprintf(out, "historical: %d capacity years, %d events, %d emissions years\n",
		len(d.Historical.CapacityTimeseries), len(d.Historical.Events), len(d.Historical.Emissions))
	fmt.Fprintf(out, "counterfactual: %d capacity years, %d events, %d emissions years\n",
		len(d.Counterfactual.CapacityTimeseries), len(d.Counterfactual.Events), len(d.Counterfactual.Emissions))
	if n := len(d.Counterfactual.CapacityTimeseries); n > 0 {
		last := d.Counterfactual.CapacityTimeseries[n-1]
		fmt.Fprintf(out, "final counterfactual capacity: %.1f MW nuclear, %.1f MW fossil\n",
			last.NuclearMW, last.FossilMW)
	}
	return nil
}
