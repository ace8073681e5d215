package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"voice-memos/config"
	"voice-memos/internal/memo"
	memoSQLite "voice-memos/internal/memo/repository/sqlite"
	memoUsecase "voice-memos/internal/memo/usecase"
	"voice-memos/pkg/clipboard"
	"voice-memos/pkg/executor"
	"voice-memos/pkg/log"
	pkgSQLite "voice-memos/pkg/sqlite"
)

var (
	cfgFile string
	verbose bool

	// Set by PersistentPreRunE, released by PersistentPostRunE.
	cfg    *config.Config
	logger log.Logger
	db     *sql.DB
)

var rootCmd = &cobra.Command{
	Use:   "memos",
	Short: "Manage transcribed voice memos",
	Long: `memos manages a local store of transcribed voice memos.

Store commands:
  list, kill, merge, set-content, label
Host commands:
  open, things, copy
Pipeline:
  import, autolabel, watch`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command until it returns or SIGINT/SIGTERM arrives.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func setup(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		os.Setenv("CONFIG_PATH", cfgFile)
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Logger.Level
	if !verbose {
		level = "warn"
	}
	logger = log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	db, err = pkgSQLite.Connect(cmd.Context(), pkgSQLite.Config{Path: cfg.Database.Path})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if db == nil {
		return nil
	}
	return pkgSQLite.Disconnect(db)
}

func newMemoUseCase() memo.UseCase {
	return memoUsecase.New(memoSQLite.New(db, logger), logger, executor.New(), clipboard.New(), memoUsecase.Config{
		StorageDir:    cfg.Storage.Dir,
		PlayerPath:    cfg.Player.Path,
		PlayerArgs:    cfg.Player.Args,
		PlayerMacOnly: cfg.Player.MacOnly,
		ThingsAppPath: cfg.Things.AppPath,
		ThingsOpener:  cfg.Things.Opener,
	})
}

// parseDuration falls back to def for empty or malformed values.
func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
