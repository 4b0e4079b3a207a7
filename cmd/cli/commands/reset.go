package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ResetCmd creates the reset command
func ResetCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the session seed so the next rota is drawn afresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed, ok := app.Session.Current(); ok {
				app.Logger.Debug("Session seed cleared")
				fmt.Fprintf(app.Out, "Seed %d discarded; the next rota uses a new seed.\n", seed)
			} else {
				fmt.Fprintln(app.Out, "No seed in use; the next rota uses a new seed.")
			}
			app.Session.Reset()
			return nil
		},
	}
}
