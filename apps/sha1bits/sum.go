//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/markkurossi/sha1bits/bitvec"
	"github.com/markkurossi/sha1bits/sha1"
)

func newSumCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sum [FILE...]",
		Short: "Print SHA-1 digests of files",
		Long: `Print SHA-1 digests of files. With no FILE, or when FILE is -,
standard input is read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			digests, err := sumFiles(context.Background(), opts, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for idx, digest := range digests {
				fmt.Fprintf(out, "%v  %s\n", digest, args[idx])
			}
			return nil
		},
	}
}

// sumFiles hashes the files concurrently, each with its own engine.
func sumFiles(ctx context.Context, opts *options, files []string) (
	[]sha1.Digest, error) {

	logger := opts.config.GetLogger()
	digests := make([]sha1.Digest, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for idx, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var in io.Reader
			if file == "-" {
				in = os.Stdin
			} else {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			digest, err := sumReader(in)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			logger.WithField("file", file).Debugf("digest %v", digest)
			digests[idx] = digest
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return digests, nil
}

func sumReader(in io.Reader) (sha1.Digest, error) {
	h := sha1.New()
	buf := make([]byte, 32*1024)
	for {
		n, err := in.Read(buf)
		h.Add(bitvec.FromBytes(buf[:n]))
		if err == io.EOF {
			return h.Finalize(), nil
		}
		if err != nil {
			return sha1.Digest{}, err
		}
	}
}
