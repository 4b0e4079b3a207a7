package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/weekend-rota/pkg/core/services"
	"github.com/jakechorley/weekend-rota/pkg/render"
)

// PublishRotaCmd creates the publishRota command
func PublishRotaCmd(app *AppContext) *cobra.Command {
	var flags rotaFlags

	cmd := &cobra.Command{
		Use:   "publishRota",
		Short: "Generate a rota and publish it to the configured Google Sheet",
		Long: `Generate a rota exactly as generateRota does and write it to a tab of the
spreadsheet set in publish.spreadsheetID. An existing tab for the same range
is overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(cmd, app)
			if err != nil {
				return err
			}

			result, err := services.GenerateRota(app.Ctx, app.Cfg, app.Logger, req)
			if err != nil {
				return err
			}

			publisher, err := app.NewPublisher()
			if err != nil {
				return fmt.Errorf("failed to connect to sheets: %w", err)
			}

			published, err := services.PublishRota(app.Ctx, publisher, app.Cfg, app.Logger, result)
			if err != nil {
				return err
			}

			render.Warnings(app.Out, result.Warnings)
			fmt.Fprintf(app.Out, "\n✓ Rota published to tab %q (seed %d)\n\n", published.Title, result.Seed)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
