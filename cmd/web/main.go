package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/aws-billing/pkg/server"
	"github.com/de-tools/aws-billing/pkg/services/billing/aws_ce"
	"github.com/de-tools/aws-billing/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	profile string
	region  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the AWS billing API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to an optional billing settings file")
	rootCmd.Flags().StringVar(&profile, "profile", "", "AWS profile name")
	rootCmd.Flags().StringVar(&region, "region", "", "AWS region name")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if profile != "" {
		settings.Profile = profile
	}
	if region != "" {
		settings.Region = region
	}

	explorer, err := aws_ce.ExplorerFactory(ctx, settings.Profile, settings.Region)
	if err != nil {
		return fmt.Errorf("failed to create billing explorer: %w", err)
	}

	if path := config.DefaultSharedConfigPath(); path != "" {
		if registry, err := config.NewRegistry(path); err == nil {
			profiles, _ := registry.GetProfiles(ctx)
			logger.Info().Msgf("Found the following AWS profiles:")
			for _, p := range profiles {
				logger.Info().Msgf("Name: `%s`", p)
			}
		}
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	addr := net.JoinHostPort(host, port)

	api := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Explorer:   explorer,
			DateFormat: settings.DateFormat,
		},
	})

	return api.Start()
}
