// Package main implements the agenda CLI, a terminal client for the agenda
// API.
package main

import (
	"os"

	"agenda_tecnica/internal/domain/entities"
	"agenda_tecnica/pkg/client"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "agenda",
	Short:        "Agenda técnica - schedule and track technician visits",
	SilenceUsage: true,
}

var apiURL string

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Agenda API base URL (overrides AGENDA_API_URL and the config file)")
}

// newClient resolves the base URL and builds the API client. "Today" is
// computed in AGENDA_TIMEZONE, defaulting to the server's default zone.
func newClient() (*client.Client, error) {
	cfg, err := loadFileConfig()
	if err != nil {
		return nil, err
	}
	c := client.New(resolveBaseURL(apiURL, os.Getenv(envAPIURL), cfg.BaseURL), nil)
	return c.WithLocation(entities.LoadLocation(os.Getenv(envTimezone))), nil
}
