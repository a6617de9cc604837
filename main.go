package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/rana/vidq/cmd"
	"github.com/rana/vidq/internal/version"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// First signal cancels the running download and the rest of the batch
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupting...")
		cancel()
		// Second signal forces exit
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nForce exiting...")
		os.Exit(1)
	}()

	cli := cmd.CLI{}
	kongCtx := kong.Parse(&cli,
		kong.Name("vidq"),
		kong.Description("Keep a list of videos and download them with yt-dlp"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Short()},
	)

	err := cli.Run(&cmd.Context{Context: ctx})
	kongCtx.FatalIfErrorf(err)
}
