// Command apitest runs smoke checks against a running lunar calendar API.
//
// Usage:
//
//	go run ./cmd/apitest --url http://localhost:8080 --api-key $API_KEY
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	var (
		baseURL string
		apiKey  string
	)

	cmd := &cobra.Command{
		Use:          "apitest",
		Short:        "Smoke-test a running lunar calendar API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := &http.Client{Timeout: 2 * time.Second}
			resp, err := client.Get(baseURL + "/health")
			if err != nil {
				return fmt.Errorf("cannot connect to %s, make sure the API server is running: %w", baseURL, err)
			}
			resp.Body.Close()

			runner := NewTestRunner(cmd.OutOrStdout(), baseURL, apiKey)
			if failed := runner.Run(); failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the API")
	cmd.Flags().StringVar(&apiKey, "api-key", os.Getenv("API_KEY"), "API key for the birthday checks (skipped when empty)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
