package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/hdbool"
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <bool>",
		Short: "Print the canonical word of a boolean",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("invalid bool %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatWord(hdbool.Encode(b)))
			return nil
		},
	}
}
