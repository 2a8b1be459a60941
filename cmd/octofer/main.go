package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AbelHristodor/octofer"
	"github.com/AbelHristodor/octofer/config"
	"github.com/AbelHristodor/octofer/webhook"
	"github.com/brigadecore/brigade-foundations/signals"
	"github.com/brigadecore/brigade-foundations/version"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "octofer",
		Short:        "Run and inspect octofer GitHub Apps",
		SilenceUsage: true,
	}
	cmd.AddCommand(devCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func devCmd() *cobra.Command {
	var envFile string
	var port int
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start a development server that logs every webhook delivery",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.New(
				zerolog.ConsoleWriter{Out: os.Stderr},
			).With().Timestamp().Logger()

			// A missing .env file is fine; the environment may already be
			// populated.
			if err := godotenv.Load(envFile); err != nil {
				logger.Debug().Str("file", envFile).Msg("No env file loaded")
			}

			cfg, authenticated := loadConfig(logger)
			if port != 0 {
				cfg.Server.Port = port
			}

			var app *octofer.App
			var err error
			if authenticated {
				if app, err = octofer.New(cfg, octofer.WithLogger(logger)); err != nil {
					return err
				}
			} else {
				app = octofer.NewUnauthenticated(cfg, octofer.WithLogger(logger))
			}

			registerEchoHandlers(app)
			return app.Start(signals.Context())
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "file to load environment variables from")
	cmd.Flags().IntVar(&port, "port", 0, "override the configured server port")
	return cmd
}

// loadConfig assembles configuration from the environment, falling back to
// credential-less development defaults when no GitHub App is configured.
func loadConfig(logger zerolog.Logger) (config.Config, bool) {
	cfg, err := config.FromEnv()
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("No GitHub App configured; starting without API access")
		return config.Default(), false
	}
	return cfg, true
}

// registerEchoHandlers registers a logging handler for every known event
// kind so deliveries are visible during development.
func registerEchoHandlers(app *octofer.App) {
	for _, kind := range webhook.KnownEventKinds() {
		app.On(
			kind,
			func(ctx context.Context, c *webhook.Context, _ interface{}) error {
				event := zerolog.Ctx(ctx).Info().
					Str("kind", c.Kind()).
					Int("payload_bytes", len(c.Payload()))
				if installationID, ok := c.Installation(); ok {
					event = event.Int64("installation", installationID)
				}
				event.Msg("Delivery received")
				return nil
			},
			nil,
		)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf(
				"octofer -- version %s -- commit %s\n",
				version.Version(),
				version.Commit(),
			)
		},
	}
}
