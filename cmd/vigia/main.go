package main

import (
	"os"

	"github.com/spf13/cobra"

	"vigia/internal/interfaces/cli/migrate"
	"vigia/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vigia",
		Short: "Vigia - maintenance alert escalation service",
		Long:  `Vigia tracks maintenance alerts, collects resolution deadlines over Telegram, and escalates alerts whose deadlines pass.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
