package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/hdbool"
)

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "normalize <word>...",
		Aliases: []string{"refresh"},
		Short:   "Refresh words into their canonical form",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := parseWords(args)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(words))
			for _, w := range words {
				h := hdbool.FromUint8(w)
				rows = append(rows, []string{
					formatWord(w),
					formatBits(w),
					strconv.Itoa(hdbool.HDBool(w).Ones()),
					formatWord(h.Uint8()),
					strconv.FormatBool(h.Bool()),
				})
			}
			render(cmd.OutOrStdout(), a.cfg.Format, []string{"word", "bits", "ones", "canonical", "bool"}, rows)
			return nil
		},
	}
}
