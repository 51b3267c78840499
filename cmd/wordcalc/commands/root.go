package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"wordcalc/internal/app"
)

var (
	home     string
	logLevel string
	speak    bool

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "wordcalc",
		Short: "Arithmetic calculator that spells results out in English",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".wordcalc")
			}

			var err error
			appCtx, err = app.NewWire(app.Config{
				Home:     home,
				LogLevel: logLevel,
				Speech:   speak,
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.wordcalc)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&speak, "speak", false, "speak results aloud (needs PlayHT credentials)")

	root.AddCommand(evalCmd(), wordsCmd(), historyCmd(), replCmd())
	return root.Execute()
}
