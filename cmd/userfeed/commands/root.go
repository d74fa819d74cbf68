package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"userfeed/cmd/userfeed/di"
	"userfeed/internal/config"
	"userfeed/pkg/logger"
)

var (
	configPath string
	cfg        *config.Config
	log        *zap.Logger
	container  *di.Container
)

// Execute builds and runs the userfeed command tree.
func Execute() error {
	root := &cobra.Command{
		Use:          "userfeed",
		Short:        "Fetch and watch the remote users feed",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = os.Getenv("CONFIG_PATH")
			}
			if path == "" {
				path = "."
			}

			var err error
			cfg, err = config.LoadConfig(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log, err = initLogger(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			container, err = di.NewContainer(cfg, log)
			if err != nil {
				return fmt.Errorf("failed to create container: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if container != nil {
				_ = container.Close()
			}
			if log != nil {
				_ = log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config directory (default $CONFIG_PATH or .)")

	root.AddCommand(fetchCmd(), watchCmd())
	return root.Execute()
}

// initLogger initializes the application logger
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	return logger.NewWithConfig(logger.Config{
		Level:          cfg.Logger.Level,
		Format:         cfg.Logger.Format,
		OutputPath:     cfg.Logger.OutputPath,
		EnableSampling: cfg.Logger.EnableSampling,
		ServiceName:    cfg.Logger.ServiceName,
		ServiceVersion: cfg.Logger.ServiceVersion,
		Environment:    env,
	})
}
