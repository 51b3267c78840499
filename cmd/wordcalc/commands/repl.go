package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wordcalc/internal/domain"
)

// repl: interactive calculator loop. Typed text appends to the live
// expression; a lone "=" evaluates it.
func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive calculator",
		Long: `Interactive calculator. Typed text appends to the expression.

  =      evaluate the current expression
  c      clear the expression
  h      list history
  u <n>  reload history entry n into the expression
  q      quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var expr domain.Expression

			scanner := bufio.NewScanner(os.Stdin)
			fmt.Print("> ")
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				switch {
				case line == "q":
					return nil
				case line == "c":
					expr = expr.Clear()
				case line == "h":
					for i, rec := range appCtx.History.List() {
						fmt.Printf("%2d  %s = %g\n", i+1, rec.Expression, rec.Result)
					}
				case strings.HasPrefix(line, "u "):
					expr = reloadEntry(expr, strings.TrimPrefix(line, "u "))
				case line == "=":
					expr = evaluateLive(cmd, expr)
				default:
					expr = expr.Append(line)
				}
				if !expr.IsEmpty() {
					fmt.Println(expr.Display())
				}
				fmt.Print("> ")
			}
			return scanner.Err()
		},
	}
}

func evaluateLive(cmd *cobra.Command, expr domain.Expression) domain.Expression {
	calc, err := appCtx.Calculator.Calculate(cmd.Context(), expr)
	if errors.Is(err, domain.ErrEmptyExpression) {
		return expr
	}
	if err != nil {
		return expr.Fail()
	}
	fmt.Printf("%s = %s\n", expr.Display(), calc.Result)
	fmt.Println(calc.Phrase)
	return expr.Replace(calc.Result.String())
}

// reloadEntry replaces the live expression with a stored one.
func reloadEntry(expr domain.Expression, arg string) domain.Expression {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	recs := appCtx.History.List()
	if err != nil || n < 1 || n > len(recs) {
		fmt.Println("no such history entry")
		return expr
	}
	return expr.Replace(recs[n-1].Expression)
}
