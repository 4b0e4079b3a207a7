package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/weekend-rota/cmd/cli/commands"
	"github.com/jakechorley/weekend-rota/internal/config"
	"github.com/jakechorley/weekend-rota/pkg/clients/sheetsclient"
	"github.com/jakechorley/weekend-rota/pkg/core/services"
	"github.com/jakechorley/weekend-rota/pkg/utils/logging"
)

var (
	env        string
	configPath string
	verbose    bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &commands.AppContext{
		Ctx:     ctx,
		Out:     os.Stdout,
		Session: services.NewSeedSession(),
	}

	rootCmd := &cobra.Command{
		Use:   "rota",
		Short: "Weekend rota - balanced Saturday and Sunday schedules",
		Long: `A CLI tool that builds balanced weekend rotas: nobody serves twice in a
weekend, consecutive weekends are avoided when possible, and every draw is
reproducible from its seed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (selects rota_config.<env>.yaml and the log/token names)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (overrides lookup)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs to the console")

	rootCmd.AddCommand(commands.GenerateRotaCmd(app))
	rootCmd.AddCommand(commands.ResetCmd(app))
	rootCmd.AddCommand(commands.ListRolesCmd(app))
	rootCmd.AddCommand(commands.PublishRotaCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp loads .env, sets up the logger and loads the configuration
func initApp(app *commands.AppContext) error {
	loadDotEnv()

	var err error
	app.Env = env
	app.Logger, err = logging.New(logging.Options{Env: env, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.String("environment", env))

	app.Cfg, err = loadConfig(env, configPath)
	switch {
	case errors.Is(err, config.ErrNotFound):
		app.Logger.Info("No config file found, using the built-in parish rota")
		app.Cfg = config.Default()
	case err != nil:
		return fmt.Errorf("failed to load config: %w", err)
	default:
		app.Logger.Debug("Configuration loaded successfully")
	}

	app.NewPublisher = func() (services.RotaPublisher, error) {
		oauthCfg, err := config.LoadOAuthClientWithEnv(env)
		if err != nil {
			return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
		}
		client, err := sheetsclient.NewClient(app.Ctx, oauthCfg, env, app.Logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	return nil
}

func loadConfig(env, path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.LoadWithEnv(env)
}

// loadDotEnv loads the first .env found in the working directory or its parents
func loadDotEnv() {
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}
