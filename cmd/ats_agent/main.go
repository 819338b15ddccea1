// Package main provides the ats_agent CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/config"
	"github.com/jonathan/ats-optimizer/internal/logging"
	"github.com/jonathan/ats-optimizer/internal/remote"
	"github.com/jonathan/ats-optimizer/internal/service"
)

var (
	configPath string
	verbose    bool
	remoteURL  string
	outPath    string
)

// Set by the root command before any subcommand runs.
var (
	cfg *config.Config
	log *logrus.Logger
	svc service.Service
)

var rootCmd = &cobra.Command{
	Use:   "ats_agent",
	Short: "ATS resume analyzer and optimizer",
	Long: "ats_agent extracts keywords from job postings, parses plain-text resumes, " +
		"scores them for ATS compatibility and rewrites them to match the posting. " +
		"Commands run locally, or against a remote ats_agent server with --remote.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging and human-readable summaries on stderr")
	rootCmd.PersistentFlags().StringVar(&remoteURL, "remote", "", "Base URL of an ats_agent server to try before running locally")
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "Write output to this file instead of stdout")
}

// setup loads configuration and builds the logger and service shared by all
// commands.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		loaded.Verbose = true
		loaded.LogLevel = "debug"
	}
	if remoteURL != "" {
		loaded.RemoteURL = remoteURL
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	log = logging.New(cfg.LogLevel, cfg.LogFormat)
	svc = newService(cfg, log)
	return nil
}

// newService returns the local service, or a remote-first one when a remote
// URL is configured.
func newService(c *config.Config, l *logrus.Logger) service.Service {
	if c.RemoteURL == "" {
		return service.Local{}
	}
	l.WithField("remote", c.RemoteURL).Debug("using remote service with local fallback")
	return service.NewFallback(remote.NewClient(c.RemoteURL, nil), l)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
