package commands

import (
	"fmt"
	"os"

	"storefront/client"

	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:8082"

var (
	apiURL     string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the storefront catalog and manage the cart and favorites",
	Long: `shop is a terminal client for the storefront API.

The product list is fetched once per command and searched, filtered, sorted
and paginated locally. Cart and favorites changes are applied to a local
mirror first and then confirmed or rolled back by the server.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("STOREFRONT_API_URL", defaultAPIURL), "Storefront API base URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newClient() *client.Client {
	return client.New(apiURL)
}
