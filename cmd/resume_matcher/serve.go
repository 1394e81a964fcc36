package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: "Serves the analysis operations as a JSON API. When DATABASE_URL is set, analyses can be saved " +
		"and the history endpoints are enabled.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides PORT and the config file)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	rt, err := newRuntime(ctx, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	if servePort > 0 {
		rt.cfg.Port = servePort
	}

	opts := server.Options{Config: rt.cfg, Engine: rt.engine, Logger: &rt.logger}
	if rt.cfg.DatabaseURL != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		database, err := openDatabase(connectCtx, rt)
		cancel()
		if err != nil {
			return err
		}
		defer database.Close()
		opts.Store = database
		rt.logger.Info().Msg("database connected")
	} else {
		rt.logger.Warn().Msg("DATABASE_URL not set, history endpoints are disabled")
	}

	return server.New(opts).Start()
}

var _ server.Store = (*db.DB)(nil)
