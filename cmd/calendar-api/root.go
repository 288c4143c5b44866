package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/klabast/wb-services/calendar-api/internal/app"
	"github.com/klabast/wb-services/calendar-api/internal/commands"
	"github.com/spf13/cobra"
)

var (
	configPath string
	addr       string
	dataFile   string
	logFormat  string
	memory     bool
)

var rootCmd = &cobra.Command{
	Use:   "calendar-api",
	Short: "HTTP API for calendar events stored in a JSON file",
	Long: `calendar-api serves /api/v1/calendar/items: one event per date, each with
a short title and free text, exchanged as "date|title|text" strings.

Configuration is read from an optional YAML file (--config), then from
CALENDAR_* environment variables, then from flags.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the stored calendar file",
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data-file", app.DefaultCalendarFile, "Path to the calendar JSON file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", app.LogFormatAuto, "Log format: auto, text or json")
	rootCmd.Flags().StringVar(&addr, "addr", app.DefaultAddr, "Address to listen on")
	rootCmd.Flags().BoolVar(&memory, "memory", false, "Keep events in memory only")

	rootCmd.AddCommand(checkCmd)
}

// loadConfig resolves the config and applies explicitly set flags on top
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = addr
	}
	if flags.Changed("data-file") {
		cfg.DataFile = dataFile
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if flags.Changed("memory") {
		cfg.Memory = memory
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	slog.SetDefault(app.NewLogger(os.Stderr, cfg.LogFormat))
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return commands.Serve(ctx, cfg)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	problems, err := commands.Check(cfg.DataFile, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if problems > 0 {
		return fmt.Errorf("%d problems found", problems)
	}
	return nil
}
