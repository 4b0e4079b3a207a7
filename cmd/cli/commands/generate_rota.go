package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/weekend-rota/pkg/core/services"
	"github.com/jakechorley/weekend-rota/pkg/render"
)

const dateFlagLayout = "2006-01-02"

// rotaFlags are the range and seed flags shared by generateRota and publishRota
type rotaFlags struct {
	start string
	end   string
	seed  int64
}

func (f *rotaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "start", "", "First date of the range (YYYY-MM-DD, default: next Saturday)")
	cmd.Flags().StringVar(&f.end, "end", "", "Last date of the range (YYYY-MM-DD, default: the Sunday after the horizon)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed for the draw (default: the session seed)")
}

// request builds the generation request, pinning the session to an explicit seed
// and otherwise reusing the session's seed
func (f *rotaFlags) request(cmd *cobra.Command, app *AppContext) (services.GenerateRotaRequest, error) {
	var req services.GenerateRotaRequest

	start, err := parseDateFlag("start", f.start)
	if err != nil {
		return req, err
	}
	end, err := parseDateFlag("end", f.end)
	if err != nil {
		return req, err
	}
	req.Start, req.End = start, end

	switch {
	case cmd.Flags().Changed("seed"):
		if f.seed < 0 {
			return req, fmt.Errorf("seed must not be negative, got %d", f.seed)
		}
		app.Session.Set(f.seed)
		req.Seed = &f.seed
	case app.Cfg.Seed != nil:
		// Configured seed applies through ResolveSeed
	default:
		seed := app.Session.Seed()
		req.Seed = &seed
	}

	return req, nil
}

func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(dateFlagLayout, value)
	if err != nil {
		return nil, fmt.Errorf("--%s must be a date like 2025-10-04: %w", name, err)
	}
	return &date, nil
}

// GenerateRotaCmd creates the generateRota command
func GenerateRotaCmd(app *AppContext) *cobra.Command {
	var flags rotaFlags

	cmd := &cobra.Command{
		Use:   "generateRota",
		Short: "Generate a balanced weekend rota",
		Long: `Generate a balanced weekend rota for a date range.

Within a session the same seed is reused, so running the command again
reproduces the same rota until 'reset' is run or a new --seed is given.`,
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

			render.Rota(app.Out, result)
			render.ValidationErrors(app.Out, result.ValidationErrors)
			fmt.Fprintln(app.Out)

			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
