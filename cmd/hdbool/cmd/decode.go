package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/hdbool"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <word>...",
		Short: "Print the boolean meaning of words",
		Long: `decode prints the boolean each word resolves to.
Words with more than 4 bits set are true; all others, including 4/4 ties, are false.
Words may be given in decimal, or with a 0x, 0b or 0o prefix.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := parseWords(args)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(words))
			for _, w := range words {
				h := hdbool.HDBool(w)
				if !h.IsCanonical() {
					a.logger.Debug("refreshing non-canonical word",
						zap.String("word", formatBits(w)),
						zap.Int("ones", h.Ones()),
					)
				}
				rows = append(rows, []string{formatWord(w), strconv.FormatBool(h.Bool())})
			}
			render(cmd.OutOrStdout(), a.cfg.Format, []string{"word", "bool"}, rows)
			return nil
		},
	}
}
