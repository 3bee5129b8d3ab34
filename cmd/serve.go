package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/eclipse-robotics/vexu-site/internal/content"
	appmw "github.com/eclipse-robotics/vexu-site/internal/middleware"
	"github.com/eclipse-robotics/vexu-site/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
}

// newServer builds the Echo instance with middleware and routes.
func newServer(cfg *service.Config, site *content.Site) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: appmw.NewRequestID,
	}))
	e.Use(appmw.RequestLogger())
	e.Use(appmw.SecurityHeaders())

	svc := service.New(cfg, site)
	svc.RegisterRoutes(e)

	return e
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	site, err := content.Load()
	if err != nil {
		return err
	}

	e := newServer(a.config, site)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%s", a.config.Port)
	slog.Info("Eclipse Robotics site starting",
		"url", fmt.Sprintf("http://localhost:%s", a.config.Port),
		"port", a.config.Port,
		"environment", a.config.Environment,
		"feed", a.config.Feed.URL,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server failed", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
