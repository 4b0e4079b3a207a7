package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ListRolesCmd creates the listRoles command
func ListRolesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRoles",
		Short: "List the configured roles and who is eligible for each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(app.Out, "\nRoles (%d):\n\n", len(app.Cfg.Roles))
			for _, role := range app.Cfg.Roles {
				fmt.Fprintf(app.Out, "  %-12s %-16s %-9s x%d\n", role.Key, role.Label, role.Day, role.Headcount)
				if len(role.Eligible) == 0 {
					fmt.Fprintln(app.Out, "      (nobody eligible)")
					continue
				}
				fmt.Fprintf(app.Out, "      %s\n", strings.Join(role.Eligible, ", "))
			}
			fmt.Fprintf(app.Out, "\nRoster: %d people\n\n", len(app.Cfg.Roster))
			return nil
		},
	}
}
