// Command tushare queries the tushare pro API from the command line.
//
// Usage:
//
//	tushare query stock_basic -p list_status=L --fields ts_code,name
//	tushare query daily -p ts_code=000001.SZ -p start_date=2024-01-01 --all -o daily.parquet
//	tushare endpoints
//
// The token comes from --token, TUSHARE_TOKEN, a .env file or tushare.toml.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"

	"github.com/DrewBradfordXYZ/tushare-go/client"
	"github.com/DrewBradfordXYZ/tushare-go/internal/config"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	token      string
	baseURL    string
	logLevel   string

	config *config.Config
	logger arbor.ILogger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tushare",
		Short: "Query the tushare pro financial data API",
		Long: `tushare sends queries to the tushare pro API and prints or saves the
resulting tables. Declared endpoints are checked against the endpoint
schema; use --raw to query any endpoint by name.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Configuration file (default tushare.toml if present)")
	root.PersistentFlags().StringVar(&a.token, "token", "", "API token (overrides config and TUSHARE_TOKEN)")
	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "API endpoint (overrides config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(newQueryCmd(a), newEndpointsCmd(a))
	return root
}

// load applies priority: defaults -> file -> env -> flags.
func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.token != "" {
		cfg.Token = a.token
	}
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	a.config = cfg
	a.logger = newLogger(cfg.Logging)
	return nil
}

func newLogger(cfg config.LoggingConfig) arbor.ILogger {
	logger := arbor.NewLogger()
	if cfg.File != "" {
		logger = logger.WithFileWriter(models.WriterConfiguration{
			Type:             models.LogWriterTypeFile,
			FileName:         cfg.File,
			TimeFormat:       "15:04:05",
			MaxSize:          10 * 1024 * 1024, // 10 MB
			MaxBackups:       3,
			OutputType:       models.OutputFormatLogfmt,
			DisableTimestamp: false,
		})
	} else {
		logger = logger.WithConsoleWriter(models.WriterConfiguration{
			Type:             models.LogWriterTypeConsole,
			TimeFormat:       "15:04:05",
			DisableTimestamp: false,
		})
	}
	return logger.WithLevelFromString(cfg.Level)
}

// newClient builds a client from the validated configuration.
func (a *app) newClient() (*client.Client, error) {
	if err := a.config.Validate(); err != nil {
		return nil, fmt.Errorf("%w (set TUSHARE_TOKEN or pass --token)", err)
	}
	opts := append(a.config.ClientOptions(), client.WithLogger(a.logger))
	return client.New(a.config.Token, opts...), nil
}
