package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/spacemeshos/hdbool"
	"github.com/spacemeshos/hdbool/bitstream"
	"github.com/spacemeshos/hdbool/flip"
)

type benchCase struct {
	name string
	// run processes n words and returns an error if the results are inconsistent.
	run func(n int) error
}

func main() {
	rounds := pflag.Int("rounds", 1<<12, "number of passes over all 256 words")
	lead := pflag.Uint("lead", 3, "number of header bits preceding the packed words in stream cases")
	pflag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize zap logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("bench config", zap.Int("rounds", *rounds), zap.Uint("lead", *lead))

	n := *rounds * 256
	cases := genCases(*lead % 8)
	data := make([][]string, 0, len(cases))
	for i, c := range cases {
		logger.Info("bench case starting", zap.String("case", c.name), zap.Int("index", i+1), zap.Int("total", len(cases)))

		t := time.Now()
		if err := c.run(n); err != nil {
			logger.Fatal("bench case failed", zap.String("case", c.name), zap.Error(err))
		}
		elapsed := time.Since(t)

		data = append(data, row(c.name, n, elapsed))
	}

	header := []string{"case", "words", "size", "elapsed", "ns/word", "throughput"}
	report(os.Stdout, header, data)
}

func row(name string, n int, elapsed time.Duration) []string {
	perSecond := uint64(0)
	if elapsed > 0 {
		perSecond = uint64(float64(n) / elapsed.Seconds())
	}
	return []string{
		name,
		strconv.Itoa(n),
		bytefmt.ByteSize(uint64(n)),
		elapsed.Round(time.Microsecond).String(),
		strconv.FormatFloat(float64(elapsed.Nanoseconds())/float64(n), 'f', 2, 64),
		bytefmt.ByteSize(perSecond) + "/s",
	}
}

func report(out io.Writer, header []string, data [][]string) {
	fmt.Fprintf(out, "\n\nBENCHMARKS:\n")

	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()
}

func genCases(lead uint) []benchCase {
	return []benchCase{
		{name: "refresh", run: benchRefresh},
		{name: "decode", run: benchDecode},
		{name: "stream", run: func(n int) error { return benchStream(n, lead) }},
	}
}

func benchRefresh(n int) error {
	var ones int
	for i := 0; i < n; i++ {
		if hdbool.Refresh(uint8(i)) == 0xFF {
			ones++
		}
	}
	// 93 of the 256 words have more than 4 bits set.
	if expected := n / 256 * 93; ones != expected {
		return fmt.Errorf("refresh: expected %d true words, got %d", expected, ones)
	}
	return nil
}

func benchDecode(n int) error {
	for i := 0; i < n; i++ {
		h := hdbool.HDBool(uint8(i))
		if h.Bool() != hdbool.FromUint8(uint8(i)).Bool() {
			return fmt.Errorf("decode: mismatch for word %#08b", uint8(i))
		}
	}
	return nil
}

// benchStream packs n words, each a canonical value with 3 flipped bits,
// after lead header bits, and reads them back refreshed.
func benchStream(n int, lead uint) error {
	buf := bytes.NewBuffer(make([]byte, 0, n+1))
	w := bitstream.NewWriter(buf)
	for i := uint(0); i < lead; i++ {
		if err := w.WriteBit(bitstream.One); err != nil {
			return err
		}
	}

	masks := flip.Masks(3)
	for i := 0; i < n; i++ {
		v := hdbool.New(i%2 == 0)
		if err := w.WriteHDBool(flip.Mask(v, masks[i%len(masks)])); err != nil {
			return err
		}
	}
	if err := w.Flush(bitstream.Zero); err != nil {
		return err
	}

	r := bitstream.NewReader(buf)
	if _, err := r.Read(lead); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		h, err := r.ReadHDBool()
		if err != nil {
			return err
		}
		if h != hdbool.New(i%2 == 0) {
			return fmt.Errorf("stream: word %d decoded to %v", i, h)
		}
	}
	return nil
}
