// Package cli implements the fridgectl command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fridge-inventory/config"
	"fridge-inventory/pkg/log"
)

var (
	// Global flags
	userID  string
	verbose   bool
	envFile   string

	// Resolved values
	cfg    *config.Config
	logger log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fridgectl",
	Short: "Operate the fridge inventory service",
	Long: `fridgectl runs migrations, issues local access tokens and sends commands
or queries through the same pipeline the API uses.

Configuration is read from config.yaml and the environment, like the API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "help", "completion":
			return nil
		}

		if envFile != "" {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		} else {
			_ = godotenv.Load()
		}

		var err error
		if cfg, err = config.Load(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := "warn"
		if verbose {
			level = "debug"
		}
		logger = log.Init(log.ZapConfig{Level: level, Mode: "development", Encoding: "console", ColorEnabled: true})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline details")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment from this file instead of ./.env")
}

// Execute runs the root command, cancelling its context on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// requireUser returns the --user flag or an error naming the command.
func requireUser(cmd *cobra.Command) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%s: --user is required", cmd.Name())
	}
	return userID, nil
}
