package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeffleon2/draftea-webhook-pipeline/config"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/app"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "webhooks",
		Short:         "Payment webhook ingestion pipeline",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(roleCmd("receiver", "Serve the webhook HTTP endpoint", (*app.App).RunReceiver))
	rootCmd.AddCommand(roleCmd("processor", "Consume the processing queue", (*app.App).RunProcessor))
	rootCmd.AddCommand(roleCmd("notifier", "Consume the notification queue and send alerts", (*app.App).RunNotifier))
	rootCmd.AddCommand(roleCmd("router", "Route bus events through the rules table", (*app.App).RunRouter))
	rootCmd.AddCommand(localCmd())
	rootCmd.AddCommand(signCmd())
	rootCmd.AddCommand(rulesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func roleCmd(name, short string, run func(*app.App, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return fmt.Errorf("error reading config: %w", err)
			}
			return runApp(cfg, run)
		},
	}
}

func localCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "local",
		Short: "Run every role in one process on sqlite and in-memory queues",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return fmt.Errorf("error reading config: %w", err)
			}
			cfg.Queue.Backend = config.QueueBackendMemory
			cfg.DB.DRIVER = "sqlite"
			cfg.Alerts.Channel = config.AlertChannelLog
			return runApp(cfg, (*app.App).RunAll)
		},
	}
}

func runApp(cfg *config.Config, run func(*app.App, context.Context) error) error {
	logger.Setup(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	myApp := &app.App{}
	if err := myApp.Initialize(cfg); err != nil {
		return err
	}
	defer func() {
		if err := myApp.Close(); err != nil {
			logrus.Errorf("Error closing app: %s", err.Error())
		}
	}()

	return run(myApp, ctx)
}
