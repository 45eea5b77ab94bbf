// Package cli wires the projstats commands: scan, serve and tui.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/guidefari/projstats/internal/client"
	"github.com/guidefari/projstats/internal/config"
	"github.com/guidefari/projstats/internal/server"
	"github.com/guidefari/projstats/internal/service"
	"github.com/guidefari/projstats/internal/tracing"
	"github.com/guidefari/projstats/internal/tui"
)

func NewRootCmd() *cobra.Command {
	var cliConfig CLIConfig

	root := &cobra.Command{
		Use:           "projstats",
		Short:         "Code statistics for a project folder",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindGlobalFlags(root, &cliConfig)

	root.AddCommand(newScanCmd(&cliConfig), newServeCmd(&cliConfig), newTUICmd(&cliConfig))
	return root
}

// setup loads the config and builds the logger shared by every command.
func setup(cliConfig *CLIConfig, stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cliConfig.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	if cliConfig.LogLevel != "" {
		cfg.Log.Level = cliConfig.LogLevel
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	return cfg, logger, nil
}

func newScanner(cfg *config.Config, logger *slog.Logger, remote string) client.Scanner {
	switch remote {
	case "":
	case configEndpoint:
		return client.New(cfg.Client.Endpoint, cfg.Client.Timeout)
	default:
		return client.New(remote, cfg.Client.Timeout)
	}
	return service.New(cfg.ServiceOptions(logger))
}

func newScanCmd(cliConfig *CLIConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a project folder and print code statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliConfig.RootPath = "."
			if len(args) == 1 {
				cliConfig.RootPath = args[0]
			}
			if err := validateFormat(cliConfig.Format); err != nil {
				return err
			}
			return runScan(cmd.Context(), cliConfig, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	bindScanFlags(cmd, cliConfig)
	return cmd
}

func runScan(ctx context.Context, cliConfig *CLIConfig, stdout, stderr io.Writer) error {
	cfg, logger, err := setup(cliConfig, stderr)
	if err != nil {
		return err
	}

	exporter, shutdown := tracing.Init(cliConfig.ShowTimings)
	defer shutdown(context.WithoutCancel(ctx))

	path := cliConfig.RootPath
	if cliConfig.Remote == "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	session := client.NewSession(newScanner(cfg, logger, cliConfig.Remote))
	start := time.Now()
	rep, err := session.Scan(ctx, path, cliConfig.TopN)
	if err != nil {
		return errors.New(client.ErrorMessage(err))
	}
	elapsed := time.Since(start)

	if err := Render(stdout, rep, session.Label(), cliConfig.Format); err != nil {
		return err
	}

	if cliConfig.ExportPath != "" {
		if err := exportTo(session, cliConfig.ExportPath); err != nil {
			return fmt.Errorf("could not export report to %s: %w", cliConfig.ExportPath, err)
		}
		fmt.Fprintf(stderr, "Report exported to: %s\n", cliConfig.ExportPath)
	}

	if exporter != nil {
		RenderTimings(stdout, exporter.Timings(), elapsed)
	}
	return nil
}

func exportTo(session *client.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := session.Export(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newServeCmd(cliConfig *CLIConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP scan API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cliConfig, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			addr := cfg.Server.Addr
			if cliConfig.Addr != "" {
				addr = cliConfig.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			api := server.New(service.New(cfg.ServiceOptions(logger)), logger)
			return api.ServeContext(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&cliConfig.Addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func newTUICmd(cliConfig *CLIConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive scan form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cliConfig, io.Discard)
			if err != nil {
				return err
			}
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			session := client.NewSession(newScanner(cfg, logger, cliConfig.Remote))
			return tui.Run(cmd.Context(), session, wd)
		},
	}
	bindRemoteFlag(cmd, cliConfig)
	return cmd
}
