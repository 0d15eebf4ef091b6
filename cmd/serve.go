package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/bacprep-backend/internal/app"
	bphttp "github.com/yungbote/bacprep-backend/internal/http"
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.NewLogger()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, log)
			if err != nil {
				log.Error("failed to initialize app", "error", err)
				log.Sync()
				return err
			}
			defer a.Close()

			addr := ":" + a.Cfg.Port
			if port != "" {
				addr = ":" + port
			}
			a.Log.Info("listening", "addr", addr, "provider", a.Clients.Completions.Name())
			srv := &bphttp.Server{Engine: a.Router}
			return srv.Run(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (defaults to PORT)")
	return cmd
}
