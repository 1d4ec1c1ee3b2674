package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/vaultpass/pwgen/internal/cli"
)

func main() {
	// .env is optional for the CLI; it only supplies TOKEN_SECRET.
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		slog.Error("pwgen failed", "error", err)
		os.Exit(1)
	}
}
