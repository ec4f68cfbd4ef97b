package main

import (
	"os"

	"github.com/spf13/cobra"

	"telmesh/internal/interfaces/cli/migrate"
	"telmesh/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "telmesh",
		Short: "Telmesh ISP service management backend",
		Long: `Telmesh manages regions, subscribers, service plans, coverage,
network status, orders, payments, feedback and support tickets
for a telecom service provider.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
