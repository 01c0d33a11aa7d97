// Package main provides the CLI entrypoint for the pet registry service.
// It wires subcommands (serve, migrate, token), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"petregistry/internal/config"
	"petregistry/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "petregistry",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath and envFile here are parsed using the standard flags package.
	// following lines are just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")
	rootCmd.PersistentFlags().StringP("env", "e", ".env", "Env File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	envFile := flag.String("e", ".env", "The env file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		tokenCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
