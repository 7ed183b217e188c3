package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/spacemeshos/hdbool/config"
)

var ErrInvalidWord = errors.New("invalid word")

// parseWord parses a word given in decimal or with a 0x, 0b or 0o prefix.
func parseWord(s string) (uint8, error) {
	w, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("%w %q: expected a value in [0, 255]", ErrInvalidWord, s)
	}
	return uint8(w), nil
}

func parseWords(args []string) ([]uint8, error) {
	words := make([]uint8, 0, len(args))
	for _, arg := range args {
		w, err := parseWord(arg)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

func formatWord(w uint8) string {
	return fmt.Sprintf("0x%02x", w)
}

func formatBits(w uint8) string {
	return fmt.Sprintf("0b%08b", w)
}

// render writes rows either as a bordered table or as tab-separated lines.
func render(out io.Writer, format string, header []string, rows [][]string) {
	if format == config.FormatPlain {
		for _, row := range rows {
			for i, cell := range row {
				if i > 0 {
					fmt.Fprint(out, "\t")
				}
				fmt.Fprint(out, cell)
			}
			fmt.Fprintln(out)
		}
		return
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(rows)
	table.Render()
}
