package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	leadersMetric string
	leadersLimit  int
	loginUser     string
	loginPassword string
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(leadersCmd)
	rootCmd.AddCommand(teamTotalsCmd)
	rootCmd.AddCommand(teamAveragesCmd)
	rootCmd.AddCommand(playerTotalsCmd)
	rootCmd.AddCommand(playerAveragesCmd)

	leadersCmd.Flags().StringVar(&leadersMetric, "metric", "", "Only rank this metric, e.g. points or FG3")
	leadersCmd.Flags().IntVar(&leadersLimit, "limit", 5, "Number of players per leaderboard")

	loginCmd.Flags().StringVarP(&loginUser, "username", "u", "", "Account username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange a username and password for an access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := json.Marshal(map[string]string{"username": loginUser, "password": loginPassword})
		if err != nil {
			return err
		}
		return performRequest(http.MethodPost, "/auth/token", body)
	},
}

var leadersCmd = &cobra.Command{
	Use:   "leaders",
	Short: "Show the career leaderboards",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{"limit": {strconv.Itoa(leadersLimit)}}
		if leadersMetric != "" {
			query.Set("metric", leadersMetric)
		}
		return performRequest(http.MethodGet, "/analytics/leaders?"+query.Encode(), nil)
	},
}

var teamTotalsCmd = &cobra.Command{
	Use:   "team-totals",
	Short: "Show the team's season totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/analytics/team/totals", nil)
	},
}

var teamAveragesCmd = &cobra.Command{
	Use:   "team-averages",
	Short: "Show the team's per-game averages",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/analytics/team/averages", nil)
	},
}

var playerTotalsCmd = &cobra.Command{
	Use:   "player-totals <player-id>",
	Short: "Show a player's career totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid player id %q", args[0])
		}
		return performRequest(http.MethodGet, fmt.Sprintf("/players/%d/totals", id), nil)
	},
}

var playerAveragesCmd = &cobra.Command{
	Use:   "player-averages <player-id>",
	Short: "Show a player's per-game averages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid player id %q", args[0])
		}
		return performRequest(http.MethodGet, fmt.Sprintf("/players/%d/averages", id), nil)
	},
}

func performRequest(method, endpoint string, body []byte) error {
	target := host + endpoint
	fmt.Printf("Making request to %s\n", target)

	req, err := http.NewRequest(method, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	if resp.StatusCode >= 400 {
		return fmt.Errorf("server responded with %s", resp.Status)
	}
	return nil
}
