package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/treepeg/treepeg"
	"github.com/treepeg/treepeg/examples/mdblocks"
)

func newBlocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks [FILE]",
		Short: "Parse a markdown document's block structure",
		Long: `Parse a markdown document into its block-level structure and print
one tree per block.

If no file is provided, the document is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("treepeg.blocks")

			var source []byte
			var err error
			if len(args) == 0 {
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				source, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			tokens := mdblocks.Tokenize(string(source))
			st := treepeg.NewTokenState(tokens)
			if err := mdblocks.NewGrammar().Parse(st, false); err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			if st.Position() < len(tokens) {
				log.Warningf("stopped after %d of %d lines", st.Position(), len(tokens))
			}

			for _, block := range st.Values() {
				fmt.Println(treepeg.Pretty(block))
			}
			return nil
		},
	}
	return cmd
}
