package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// history: list past calculations; history clear: drop them.
func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past calculations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs := appCtx.History.List()
			if len(recs) == 0 {
				fmt.Println("no history")
				return nil
			}
			for i, rec := range recs {
				fmt.Printf("%2d  %s  %s = %g\n", i+1,
					rec.Timestamp.Local().Format("2006-01-02 15:04"),
					rec.Expression, rec.Result)
				fmt.Printf("    %s\n", rec.Words)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all history",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.History.Clear()
			fmt.Println("history cleared")
			return nil
		},
	})
	return cmd
}
