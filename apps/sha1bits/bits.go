//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markkurossi/sha1bits/bitvec"
	"github.com/markkurossi/sha1bits/sha1"
)

type bitsOptions struct {
	chunk int
	text  bool
}

func newBitsCmd(opts *options) *cobra.Command {
	var bopts bitsOptions

	cmd := &cobra.Command{
		Use:   "bits [flags] MESSAGE...",
		Short: "Print the SHA-1 digest of a bit string",
		Long: `Print the SHA-1 digest of the concatenation of the MESSAGE
arguments. Each argument is a string of 0 and 1 characters, or text with
--text, and it is added to the hash as one chunk.`,
		Example: "sha1bits bits 0110_0001 0110_0010 01100011",
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, bits, err := hashArgs(args, bopts)
			if err != nil {
				return err
			}
			opts.config.GetLogger().
				WithField("bits", bits).Debug("message hashed")
			fmt.Fprintln(cmd.OutOrStdout(), digest)
			return nil
		},
	}
	cmd.Flags().IntVar(&bopts.chunk, "chunk", 0,
		"Re-split the message into chunks of this many bits")
	cmd.Flags().BoolVar(&bopts.text, "text", false,
		"Treat the arguments as text instead of bit strings")

	return cmd
}

func hashArgs(args []string, opts bitsOptions) (sha1.Digest, uint64, error) {
	if opts.chunk < 0 {
		return sha1.Digest{}, 0, fmt.Errorf("invalid chunk size %d",
			opts.chunk)
	}
	var chunks []bitvec.Vector
	for _, arg := range args {
		if opts.text {
			chunks = append(chunks, bitvec.FromBytes([]byte(arg)))
			continue
		}
		v, err := bitvec.Parse(arg)
		if err != nil {
			return sha1.Digest{}, 0, err
		}
		chunks = append(chunks, v)
	}
	if opts.chunk > 0 {
		var msg bitvec.Vector
		for _, c := range chunks {
			msg = msg.Append(c)
		}
		chunks = nil
		for ofs := 0; ofs < msg.Len(); ofs += opts.chunk {
			end := ofs + opts.chunk
			if end > msg.Len() {
				end = msg.Len()
			}
			chunks = append(chunks, msg.Slice(ofs, end))
		}
	}

	h := sha1.New()
	for _, c := range chunks {
		h.Add(c)
	}
	bits := h.Len()
	return h.Finalize(), bits, nil
}
