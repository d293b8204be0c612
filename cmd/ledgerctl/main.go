// Command ledgerctl is the terminal dashboard for the fund transfer API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"school-erp/internal/dashboard"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.Default()}

	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Fund transfers and account ledgers from the terminal",
		Long: `ledgerctl talks to the fee office transfer API: list and add accounts,
record transfers between them and read each account's ledger.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/ledgerctl/config.yaml)")
	flags.String("server", "http://localhost:4000", "transfer API base URL")
	flags.Duration("timeout", 10*time.Second, "per-request timeout")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	_ = a.v.BindPFlag("server.url", flags.Lookup("server"))
	_ = a.v.BindPFlag("server.timeout", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(accountsCmd(a))
	rootCmd.AddCommand(transfersCmd(a))
	rootCmd.AddCommand(ledgerCmd(a))
	rootCmd.AddCommand(watchCmd(a))

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, dashboard.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home + "/.config/ledgerctl")
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigName("ledgerctl")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("LEDGER")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	logger, err := newLogger(a.v.GetString("logging.level"), a.v.GetString("logging.format"), cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) client() *dashboard.Client {
	return dashboard.NewClient(a.v.GetString("server.url"), a.v.GetDuration("server.timeout"), a.logger)
}

// page returns a dashboard page with a fresh snapshot
func (a *app) page(ctx context.Context) (*dashboard.Page, error) {
	page := dashboard.NewPage(a.client(), a.logger)
	if err := page.Refresh(ctx); err != nil {
		return nil, err
	}
	return page, nil
}
