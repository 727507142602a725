// Command rashictl inspects the rashi tree catalog and talks to a running
// rashi-tree-guide service.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	timeout   time.Duration
	asJSON    bool
	local     bool
	subject   string
	roles     string
)

var rootCmd = &cobra.Command{
	Use:           "rashictl",
	Short:         "Browse the rashi tree catalog and compute rashis against the guide service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	defaultServer := os.Getenv("RASHICTL_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "Base URL of the guide service (env RASHICTL_SERVER)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Overall timeout for a command")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print raw JSON")
	rootCmd.PersistentFlags().BoolVar(&local, "local", false, "Read the built-in catalog instead of calling the service")
	rootCmd.PersistentFlags().StringVar(&subject, "subject", "", "Caller id sent on operator requests")
	rootCmd.PersistentFlags().StringVar(&roles, "roles", "", "Comma-separated roles sent on operator requests")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
