package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spacemeshos/hdbool/cmd/hdbool/cmd"
)

var (
	// Version is the version of the binary.
	Version = "0.0.0"

	// Commit is the commit hash of the binary.
	Commit = ""
)

func main() {
	cmd.Version = Version
	cmd.Commit = Commit

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "hdbool:", err)
		stop()
		os.Exit(1)
	}
}
