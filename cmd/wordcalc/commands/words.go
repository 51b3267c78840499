package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordcalc/internal/engine/words"
)

// words <number>: print the English words for a decimal number.
func wordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words <number>",
		Short: "Spell a number out in English",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := words.FromString(args[0])
			if err != nil {
				return fmt.Errorf("not a number: %q", args[0])
			}
			fmt.Println(w)
			return nil
		},
	}
}
