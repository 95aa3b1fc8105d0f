//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markkurossi/sha1bits/compare"
)

func newCompareCmd(opts *options) *cobra.Command {
	var cfg compare.Config
	var seed string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the engine against crypto/sha1",
		Long: `Hash pseudorandom messages with the bit-oriented engine, feeding
them in pseudorandom chunks, and compare the digests with crypto/sha1.`,
		Example: "sha1bits compare --trials 1000 --seed 00112233",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(seed) > 0 {
				data, err := hex.DecodeString(seed)
				if err != nil {
					return fmt.Errorf("invalid seed: %w", err)
				}
				cfg.Seed = data
			}
			report, err := compare.Run(context.Background(), &opts.config,
				cfg)
			if err != nil {
				return err
			}
			report.Print(cmd.OutOrStdout())
			if !report.OK() {
				return fmt.Errorf("%d of %d trials failed",
					len(report.Mismatches), report.Trials)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.Trials, "trials", 100, "Number of messages")
	cmd.Flags().IntVar(&cfg.MaxBytes, "max-bytes", 4096,
		"Maximum message length in bytes")
	cmd.Flags().IntVar(&cfg.MaxChunk, "max-chunk", compare.DefaultMaxChunk,
		"Maximum chunk length in bits")
	cmd.Flags().IntVar(&cfg.Workers, "workers", 0,
		"Number of concurrent trials (0 for one per CPU)")
	cmd.Flags().StringVar(&seed, "seed", "",
		"Hex-encoded seed for reproducible runs")

	return cmd
}
