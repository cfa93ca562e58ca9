package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/utakatalp/football-statistics/internal/api"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// serveCmd represents the serve command.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Accept messages and answer statistics requests over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, errApp := newApp(ctx, cmd.OutOrStdout())
			if errApp != nil {
				return errApp
			}
			defer app.Close()

			httpServer := &http.Server{
				Addr:              app.conf.HTTP.Addr(),
				Handler:           api.NewServer(app.proc, app.table).Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			group, groupCtx := errgroup.WithContext(ctx)
			group.Go(func() error {
				slog.Info("Starting HTTP listener", slog.String("addr", httpServer.Addr))
				if errServe := httpServer.ListenAndServe(); errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
					return errServe
				}

				return nil
			})
			group.Go(func() error {
				<-groupCtx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				return httpServer.Shutdown(shutdownCtx) //nolint:contextcheck
			})

			return group.Wait()
		},
	}
}
