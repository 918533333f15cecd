package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sports-api",
	Short: "ScoreSense sports data backend",
	Long: `ScoreSense serves teams, players, matches, news and per-match player
statistics over REST and GraphQL, behind a JWT authentication and
role-based access gateway.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
