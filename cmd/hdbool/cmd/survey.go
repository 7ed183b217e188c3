package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/hdbool/config"
	"github.com/spacemeshos/hdbool/survey"
)

func newSurveyCmd(a *app) *cobra.Command {
	surveyCmd := &cobra.Command{
		Use:   "survey",
		Short: "Measure recovery of true and false under every flip mask",
		Long: `survey flips every possible combination of k bits of each canonical
word and reports how many of them still decode to the original boolean.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := survey.Run(cmd.Context(),
				survey.WithLogger(a.logger),
				survey.WithWorkers(a.cfg.Workers),
				survey.WithFlipRange(a.cfg.MinFlips, a.cfg.MaxFlips),
			)
			if err != nil {
				return fmt.Errorf("survey failed: %w", err)
			}

			rows := make([][]string, 0, len(report.Rows))
			for _, row := range report.Rows {
				rows = append(rows, []string{
					strconv.Itoa(row.Flips),
					row.Value.String(),
					strconv.Itoa(row.Masks),
					strconv.Itoa(row.Recovered),
					strconv.Itoa(row.Lost()),
					strconv.FormatFloat(row.Rate()*100, 'f', 1, 64) + "%",
				})
			}

			out := cmd.OutOrStdout()
			render(out, a.cfg.Format, []string{"flips", "value", "masks", "recovered", "lost", "rate"}, rows)
			fmt.Fprintf(out, "tolerance: %d\n", report.Tolerance())
			return nil
		},
	}

	defaults := config.DefaultConfig()
	surveyCmd.Flags().Int("workers", defaults.Workers, "number of flip counts surveyed concurrently")
	surveyCmd.Flags().Int("min-flips", defaults.MinFlips, "smallest number of flipped bits")
	surveyCmd.Flags().Int("max-flips", defaults.MaxFlips, "largest number of flipped bits")
	return surveyCmd
}
