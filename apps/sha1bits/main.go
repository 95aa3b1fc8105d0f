//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/markkurossi/sha1bits/env"
)

type options struct {
	logLevel string
	config   env.Config
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		log.WithError(err).Fatal("sha1bits failed")
	}
}

func newRootCmd() *cobra.Command {
	opts := new(options)

	rootCmd := &cobra.Command{
		Use:           "sha1bits",
		Short:         "SHA-1 over bit strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := env.NewLogger(os.Stderr, opts.logLevel)
			if err != nil {
				return err
			}
			opts.config.Logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	addGlobalFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.AddCommand(
		newSumCmd(opts),
		newBitsCmd(opts),
		newCompareCmd(opts),
		newParamsCmd(),
	)
	return rootCmd
}

func addGlobalFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVar(&opts.logLevel, "log-level", log.InfoLevel.String(),
		"The logging level (panic, fatal, error, warn, info, debug, trace)")
}
