// Package main provides a CLI for computing stable participant-to-project matchings.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	lvmatchcmd "github.com/katalvlaran/lvmatch/internal/cmd/lvmatch"
)

func main() {
	cfg, err := lvmatchcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := lvmatchcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		exitf("Error: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
