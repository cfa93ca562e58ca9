// Package cmd implements the CLI (Command Line Interface) of the application.
//
// run     - Process a message file (or stdin) and print the reports
// consume - Process messages from a Kafka topic partition
// serve   - Accept messages and answer statistics requests over HTTP
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// BuildVersion is set at link time.
var BuildVersion = "master"

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:          "footstats",
	Short:        "Running football statistics from a stream of result messages",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	setupCLI()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if errExecute := rootCmd.ExecuteContext(ctx); errExecute != nil {
		stop()
		os.Exit(1)
	}
}

func setupCLI() {
	rootCmd.Version = BuildVersion
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(consumeCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/footstats.yml or ./footstats.yml)")
}

// ignoreCancel treats an interrupted run as a normal shutdown.
func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
