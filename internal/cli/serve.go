package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the demo echo server until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			log := cfg.InitLogger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg, log, appOptions{withServer: true})
			if err != nil {
				return err
			}
			if err := a.start(ctx); err != nil {
				_ = a.stop(context.Background())
				return err
			}

			<-ctx.Done()
			log.Info("Shutting down")
			return a.stop(context.Background())
		},
	}
}
