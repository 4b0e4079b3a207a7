package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/weekend-rota/pkg/server"
)

// ServeCmd creates the serve command
func ServeCmd(app *AppContext) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rota generator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = app.Cfg.Port()
			}

			fmt.Fprintf(app.Out, "Listening on :%s (Ctrl+C to stop)\n", port)
			return server.New(app.Cfg, app.Logger).Run(app.Ctx, ":"+port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Port to listen on (default: $PORT, server.port, then 8000)")
	return cmd
}
