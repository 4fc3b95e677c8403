package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"innkeeper/internal/commands"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	rootCmd := &cobra.Command{
		Use:   "innkeeper",
		Short: "Tenant reservation workflow over the generic record store",
	}

	rootCmd.AddCommand(
		commands.InitCmd(),
		commands.ReserveCmd(logger),
		commands.ApproveCmd(logger),
		commands.CheckinCmd(logger),
		commands.ReservationsCmd(logger),
		commands.TenantsCmd(logger),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
