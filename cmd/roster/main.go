package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmanzanog/employee-roster/internal/application"
	"github.com/jmanzanog/employee-roster/internal/domain"
	"github.com/jmanzanog/employee-roster/internal/infrastructure/config"
	"github.com/jmanzanog/employee-roster/internal/infrastructure/persistence/memory"
	"github.com/jmanzanog/employee-roster/internal/interfaces/cli"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// openLogOutput returns where log records go and a func that releases it.
// Logs never share stdout with the menu.
func openLogOutput(cfg *config.Config, stderr io.Writer) (io.Writer, func() error, error) {
	if cfg.LogFile == "" {
		return stderr, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o750); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxFiles,
	}
	return writer, writer.Close, nil
}

// setupLogger configures the default structured logger. Every record carries
// the session id so interleaved runs can be told apart in a shared log file.
func setupLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		AddSource: level <= slog.LevelDebug,
		Level:     level,
	}

	var handler slog.Handler
	if cfg.LogFormat == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With("session_id", uuid.NewString())
	slog.SetDefault(logger)
	return logger, nil
}

type flagOverrides struct {
	logLevel     string
	logFormat    string
	bonusPercent string
}

func (o flagOverrides) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Changed("bonus-percent") {
		percent, err := config.ParseBonusPercent(o.bonusPercent)
		if err != nil {
			return fmt.Errorf("invalid BONUS_PERCENT: %w", err)
		}
		cfg.BonusPercent = percent
	}
	return cfg.Validate()
}

// run contains the application logic without os.Exit calls.
// dotenvLoaded only affects logging.
func run(ctx context.Context, cfg *config.Config, dotenvLoaded bool, in io.Reader, out, errOut io.Writer) error {
	logOutput, closeLog, err := openLogOutput(cfg, errOut)
	if err != nil {
		return fmt.Errorf("failed to open log output: %w", err)
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(errOut, "failed to close log output: %v\n", err)
		}
	}()

	if _, err := setupLogger(cfg, logOutput); err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	if !dotenvLoaded {
		slog.DebugContext(ctx, "No .env file found, using environment variables")
	}

	repo := memory.NewEmployeeRepository()
	rosterService := application.NewRosterService(repo, cfg.BonusPercent)
	shell := cli.NewShell(rosterService, in, out)

	slog.InfoContext(ctx, "Roster session started", "bonus_percent", cfg.BonusPercent.String())

	if err := shell.Run(ctx); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}

	return nil
}

func newRootCommand() *cobra.Command {
	var overrides flagOverrides

	cmd := &cobra.Command{
		Use:           "roster",
		Short:         "Manage an in-memory employee roster from an interactive menu",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			envErr := godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := overrides.apply(cmd, cfg); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			return run(cmd.Context(), cfg, envErr == nil, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&overrides.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
	cmd.Flags().StringVar(&overrides.logFormat, "log-format", "", "log format (text, json); overrides LOG_FORMAT")
	cmd.Flags().StringVar(&overrides.bonusPercent, "bonus-percent", strconv.Itoa(domain.DefaultBonusPercent), "bonus as a percentage of salary; overrides BONUS_PERCENT")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("Application error", "error", err)
		os.Exit(1)
	}
}
