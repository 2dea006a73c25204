package main

import (
	"os"

	"github.com/spf13/cobra"

	"courtside/internal/interfaces/cli/migrate"
	"courtside/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "courtside",
		Short: "Courtside - inquiry support service",
		Long:  `Courtside serves member inquiries and the moderation dashboard, with live fan-out over Redis.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
