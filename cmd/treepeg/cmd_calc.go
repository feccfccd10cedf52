package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/treepeg/treepeg"
	"github.com/treepeg/treepeg/examples/calc"
)

func newCalcCmd() *cobra.Command {
	var evaluate bool

	cmd := &cobra.Command{
		Use:   "calc EXPR",
		Short: "Parse an arithmetic expression and print its tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("treepeg.calc")

			input := args[0]
			st := treepeg.NewTextState(input)
			root, err := calc.NewGrammar().Apply(st)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			log.Debugf("consumed %d of %d characters", st.Position(), len(input))

			fmt.Println(treepeg.Pretty(root))

			if evaluate {
				result, err := calc.Eval(root)
				if err != nil {
					return fmt.Errorf("eval: %w", err)
				}
				fmt.Println(result)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&evaluate, "eval", "e", false, "Evaluate the expression after parsing")
	return cmd
}
