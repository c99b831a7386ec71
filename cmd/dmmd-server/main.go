// Command dmmd-server provides a REST API for dmmd operations.
//
// Usage:
//
//	dmmd-server [options]
//
// Options:
//
//	--port     Port to listen on (default: 8080)
//	--host     Host to bind to (default: localhost)
//	--config   Config file supplying the FASTA directory and window defaults
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dmmd-lab/dmmd-go/api"
	"github.com/dmmd-lab/dmmd-go/internal/config"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		port     int
		host     string
		cfgFile  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "dmmd-server",
		Short:        "Serve the dmmd REST API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger := logrus.New()
			logger.SetLevel(level)
			logger.SetFormatter(&logrus.JSONFormatter{})

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			return serve(fmt.Sprintf("%s:%d", host, port), api.NewRouter(cfg, logger), logger)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on")
	cmd.Flags().StringVar(&host, "host", "localhost", "Host to bind to")
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Config file (yaml, json or toml)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	return cmd
}

func serve(addr string, handler http.Handler, logger *logrus.Logger) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan error, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		done <- server.Shutdown(ctx)
	}()

	logger.WithField("addr", "http://"+addr).Info("dmmd API server starting")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not listen on %s: %w", addr, err)
	}

	if err := <-done; err != nil {
		return fmt.Errorf("could not gracefully shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
