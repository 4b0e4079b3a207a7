package commands

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/jakechorley/weekend-rota/internal/config"
	"github.com/jakechorley/weekend-rota/pkg/core/services"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg     *config.Config
	Env     string
	Logger  *zap.Logger
	Ctx     context.Context
	Session *services.SeedSession

	// Out receives rendered rotas
	Out io.Writer

	// NewPublisher connects to the spreadsheet service on first publish
	NewPublisher func() (services.RotaPublisher, error)
}
