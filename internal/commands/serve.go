package commands

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/finmap-dev/finmap/internal/config"
	"github.com/finmap-dev/finmap/internal/hierarchy"
	"github.com/finmap-dev/finmap/internal/server"
)

func newServeCommand() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the graph and recompute API for a rendering front end",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(configPath, addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "finmap.yaml", "hierarchy config file")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

func runServe(configPath, addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	h, err := hierarchy.New(cfg.Definition())
	if err != nil {
		return fmt.Errorf("building hierarchy: %w", err)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.NewHandler(h),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("finmap listening on %s", addr)
	return srv.ListenAndServe()
}
