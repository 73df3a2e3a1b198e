package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"aidforpaws/internal/adapter"
	"aidforpaws/internal/infra"
)

var Version = "dev"

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "shelterctl",
		Short:         "Operator tooling for the AidForPaws API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("database-url", os.Getenv("DATABASE_URL"), "store URL (postgres://, mongodb:// or memory://)")
	rootCmd.PersistentFlags().String("mongo-database", envOr("MONGO_DATABASE", "aidforpaws"), "database name for mongodb:// URLs")

	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(hashPasswordCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(auditCmd())
	return rootCmd
}

// openStores is replaced in tests.
var openStores = func(ctx context.Context, cmd *cobra.Command) (*adapter.Stores, error) {
	dsn, _ := cmd.Flags().GetString("database-url")
	if dsn == "" {
		return nil, fmt.Errorf("--database-url or DATABASE_URL is required")
	}
	mongoDB, _ := cmd.Flags().GetString("mongo-database")
	cfg := &infra.Config{DatabaseURL: dsn, MongoDatabase: mongoDB}
	return adapter.Open(ctx, cfg, infra.NewLogger(envOr("APP_ENV", "development")))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
