//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
	"github.com/spf13/cobra"

	"github.com/markkurossi/sha1bits/sha1"
)

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print SHA-1 algorithm parameters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printParams(cmd.OutOrStdout())
		},
	}
}

func pow2(n int) string {
	return "2" + superscript.Itoa(n)
}

func printParams(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Parameter").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)

	row := tab.Row()
	row.Column("Block")
	row.Column(fmt.Sprintf("%s bits", pow2(9)))

	row = tab.Row()
	row.Column("Digest")
	row.Column(fmt.Sprintf("%d bits", sha1.Size*8))

	row = tab.Row()
	row.Column("Rounds")
	row.Column("80")

	row = tab.Row()
	row.Column("Max message")
	row.Column(fmt.Sprintf("%s-1 bits", pow2(64)))

	for idx, w := range sha1.InitialState {
		row = tab.Row()
		row.Column(fmt.Sprintf("H%d", idx))
		row.Column(fmt.Sprintf("0x%08x", w))
	}

	tab.Print(out)
}
