package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andres-b-devops/desafio-03/report"
)

func main() {
	logger := log.New(os.Stderr, "[desafio-03] ", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "desafio-03",
		Short:         "Print a system status report and search the process table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := report.NewDriver(os.Stdout, os.Stdin, logger)
			return d.Run(cmd.Context())
		},
	}

	err := root.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}
	if errors.Is(err, report.ErrInterrupted) || errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "interrupted")
		os.Exit(1)
	}
	logger.Println(err)
	os.Exit(1)
}
