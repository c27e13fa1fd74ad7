package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/bsearch-viz/internal/server"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the visualizer over HTTP",
		Long:  "Serve an HTML form at / and a JSON API at /api/search, /api/random and /api/lessons.",
		Run:   runServe,
	}

	cmd.Flags().String("listen", "", "Listen address (default: $BSVIZ_LISTEN or 127.0.0.1:7860)")
	v.BindPFlag("listen", cmd.Flags().Lookup("listen"))

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		Addr:    cfg.Listen,
		Parse:   parseOptions(),
		Logger:  logger,
		Lessons: s,
	})
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("server stopped", zap.Error(err))
		exitErr("serve", err)
	}
}
