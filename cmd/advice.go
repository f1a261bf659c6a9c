package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kisanlabs/plantdoctor/internal/advice"
)

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Browse the crop disease reference dataset",
}

var adviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dataset labels",
	RunE: func(cmd *cobra.Command, args []string) error {
		crop, _ := cmd.Flags().GetString("crop")

		entries := advice.All()
		if crop != "" {
			entries = advice.ByCrop(crop)
		}
		if len(entries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No entries for crop %q.\n", crop)
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-48s  %-24s  %s\n", "Label", "Crop", "Organic")
		fmt.Fprintln(out, strings.Repeat("─", 84))
		for _, e := range entries {
			organic := ""
			if e.Advice.IsSafeOrganic {
				organic = "✓"
			}
			fmt.Fprintf(out, "%-48s  %-24s  %s\n", e.Label, e.Crop, organic)
		}
		return nil
	},
}

var adviceShowCmd = &cobra.Command{
	Use:   "show <label>",
	Short: "Show the advice for one disease label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, ok := advice.Find(args[0])
		if !ok {
			return fmt.Errorf("label %q is not in the dataset", args[0])
		}

		out := cmd.OutOrStdout()
		heading := color.New(color.FgGreen, color.Bold)

		heading.Fprintln(out, e.Label)
		fmt.Fprintf(out, "Crop:     %s\n", e.Crop)
		fmt.Fprintf(out, "Disease:  %s\n", e.Disease)
		fmt.Fprintf(out, "Organic:  %v\n\n", e.Advice.IsSafeOrganic)
		fmt.Fprintln(out, e.Advice.Explanation)

		heading.Fprintln(out, "\nTreatment")
		for i, s := range e.Advice.TreatmentSteps {
			fmt.Fprintf(out, "  %d. %s\n", i+1, s)
		}
		heading.Fprintln(out, "\nPrevention")
		for _, s := range e.Advice.PreventionTips {
			fmt.Fprintf(out, "  - %s\n", s)
		}
		return nil
	},
}

func init() {
	adviceListCmd.Flags().String("crop", "", "Only show entries for this crop")

	adviceCmd.AddCommand(adviceListCmd)
	adviceCmd.AddCommand(adviceShowCmd)
}
