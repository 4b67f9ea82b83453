package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/chronos-workspace/internal/auth"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
	"github.com/saulo-duarte/chronos-workspace/internal/container"
	"github.com/saulo-duarte/chronos-workspace/internal/database"
)

func newServeCmd() *cobra.Command {
	var (
		port    int
		migrate bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				settings.Port = port
			}
			auth.Init()

			c, err := container.New(settings)
			if err != nil {
				return err
			}
			defer c.Close()

			if migrate {
				if err := database.AutoMigrate(c.DB); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			c.StartBackground(ctx)

			srv := &http.Server{
				Addr:    fmt.Sprintf(":%d", settings.Port),
				Handler: c.Handler(),
			}
			errCh := make(chan error, 1)
			go func() {
				config.Logger.WithFields(logrus.Fields{
					"port": settings.Port,
					"env":  settings.Env,
				}).Info("Server listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			config.Logger.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.Shutdown)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides settings)")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply schema migrations before serving")
	return cmd
}
