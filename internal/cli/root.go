// Package cli implements the bsviz CLI commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rcliao/bsearch-viz/internal/config"
	"github.com/rcliao/bsearch-viz/internal/parse"
	"github.com/rcliao/bsearch-viz/internal/store"
)

var (
	cfgFile    string
	formatFlag string
	verbose    bool

	v      = viper.New()
	cfg    *config.Config
	logger = zap.NewNop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "bsviz",
	Short: "Binary search, one comparison at a time",
	Long: `A teaching tool that runs binary search over a sorted list of integers and
shows every comparison it makes: the active window, the middle element and the
decision taken, followed by the final state.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = c

		zc := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		logger.Debug("config loaded",
			zap.String("config", v.ConfigFileUsed()),
			zap.String("db", cfg.DB),
			zap.String("delimiter", cfg.Delimiter))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "Config file (default: ./bsviz.yaml or ~/.bsviz/bsviz.yaml)")
	pf.StringP("db", "d", "", "Lesson database path (default: $BSVIZ_DB or ~/.bsviz/lessons.db)")
	pf.String("delimiter", "", "List delimiter (default: $BSVIZ_DELIMITER or \",\")")
	pf.StringVarP(&formatFlag, "format", "f", "text", "Output format: text, json or html")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	v.BindPFlag("db", pf.Lookup("db"))
	v.BindPFlag("delimiter", pf.Lookup("delimiter"))
}

func parseOptions() parse.Options {
	return parse.Options{Delimiter: cfg.Delimiter}
}

func openStore() (*store.SQLiteStore, error) {
	logger.Debug("opening lesson store", zap.String("db", cfg.DB))
	return store.NewSQLiteStore(cfg.DB)
}

func exitErr(msg string, err error) {
	logger.Debug(msg, zap.Error(err))
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// exitInput reports a bad list or target on the command's stderr and exits 1.
func exitInput(cmd *cobra.Command, err error) {
	printInputError(cmd.ErrOrStderr(), err)
	os.Exit(1)
}

// printInputError writes validation errors as their bare message and
// anything else in the exitErr form.
func printInputError(w io.Writer, err error) {
	var ve *parse.ValidationError
	if errors.As(err, &ve) {
		logger.Debug("rejected input", zap.String("kind", string(ve.Kind)))
		fmt.Fprintln(w, "Error: "+ve.Error())
		return
	}
	logger.Debug("input", zap.Error(err))
	fmt.Fprintf(w, "error: %v\n", err)
}
