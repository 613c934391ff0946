package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/server"
)

var (
	servePort  int
	serveLimit int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing analysis, synonym learning, and synonym reload endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().IntVar(&serveLimit, "rate-limit", 60, "Requests per minute per client")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	a, _, err := buildAnalyzer()
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:           servePort,
		LimitPerMinute: serveLimit,
	}, a)

	return srv.Start()
}
