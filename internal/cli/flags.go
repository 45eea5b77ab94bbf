package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guidefari/projstats/internal/core"
)

type CLIConfig struct {
	ConfigPath  string
	LogLevel    string
	RootPath    string
	TopN        int
	ExportPath  string
	Format      string
	ShowTimings bool
	Remote      string
	Addr        string
}

func bindGlobalFlags(cmd *cobra.Command, config *CLIConfig) {
	cmd.PersistentFlags().StringVar(&config.ConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
}

func bindScanFlags(cmd *cobra.Command, config *CLIConfig) {
	cmd.Flags().IntVar(&config.TopN, "top", core.DefaultTopN, "number of largest files to list")
	cmd.Flags().StringVar(&config.ExportPath, "export", "", "write the plain-text report to this file")
	cmd.Flags().StringVar(&config.Format, "format", "table", "output format: table, json or yaml")
	cmd.Flags().BoolVar(&config.ShowTimings, "time", false, "show performance timing breakdown")
	bindRemoteFlag(cmd, config)
}

// configEndpoint stands for a bare --remote: use client.endpoint.
const configEndpoint = "config"

func bindRemoteFlag(cmd *cobra.Command, config *CLIConfig) {
	cmd.Flags().StringVar(&config.Remote, "remote", "", "scan through a projstats server; --remote=URL, or bare --remote for client.endpoint")
	cmd.Flags().Lookup("remote").NoOptDefVal = configEndpoint
}

func validateFormat(format string) error {
	switch format {
	case "table", "json", "yaml":
		return nil
	}
	return fmt.Errorf("invalid format %q, must be 'table', 'json' or 'yaml'", format)
}
