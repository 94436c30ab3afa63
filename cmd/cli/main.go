package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cashtrack-cli",
		Short: "CashTrack CLI tool",
		Long:  `A command line interface for interacting with the CashTrack API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the CashTrack API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(balanceCmd())
	rootCmd.AddCommand(scopesCmd())
	rootCmd.AddCommand(overdueCmd())
	rootCmd.AddCommand(cashCountCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func balanceCmd() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "balance <scope>",
		Short: "Show the running balance of a scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/scopes/" + args[0] + "/balance"
			if asOf != "" {
				path += "?as_of=" + asOf
			}
			return getAndPrint(path)
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Balance as of date (YYYY-MM-DD)")

	return cmd
}

func scopesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scopes",
		Short: "List all scopes with their balances, largest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/summaries/scopes")
		},
	}
}

func overdueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List disbursement orders past their due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/disbursement-orders/overdue")
		},
	}
}

func cashCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cash-count <id>",
		Short: "Show a recorded cash count and its ledger comparison",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/cash-counts/" + args[0])
		},
	}
}

func getAndPrint(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	printJSON(result)
	return nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
