package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/fetch"
	"github.com/jonathan/ats-optimizer/internal/ingestion"
	"github.com/jonathan/ats-optimizer/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the /api endpoints and the streaming analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 5000)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	port := cfg.Port
	if servePort > 0 {
		port = servePort
	}

	in := &ingestion.Ingester{Log: log}
	if cfg.UseBrowser {
		in.Renderer = fetch.NewBrowserRenderer(log)
	}

	srv := server.New(server.Config{
		Port:     port,
		Service:  svc,
		Log:      log,
		Ingester: in,
	})
	return srv.Start()
}
