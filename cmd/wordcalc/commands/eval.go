package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wordcalc/internal/domain"
	"wordcalc/internal/speech"
)

// eval <expression>: evaluate and print the result, its words and phrase.
func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := domain.NewExpression(args[0])

			calc, err := appCtx.Calculator.Calculate(cmd.Context(), expr)
			if errors.Is(err, domain.ErrEvaluation) {
				fmt.Println(domain.ErrorText)
				return err
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s = %s\n", expr.Display(), calc.Result)
			fmt.Println(calc.Phrase)

			// One-shot invocation: hold the process open until playback ends.
			if w, ok := appCtx.Speaker.(speech.Waiter); ok {
				w.Wait()
			}
			return nil
		},
	}
}
