package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"launch-browser/api"
	"launch-browser/app"
	"launch-browser/config"
	"launch-browser/log"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version      = "1.0.0"
	endpointFlag string
	noMouseFlag  bool
	pagesFlag    int
	queryFlag    string

	rootCmd = &cobra.Command{
		Use:   "launch-browser",
		Short: "Launch Browser - browse launches in the terminal",
		Long: `Launch Browser lists launches from the launch collection endpoint,
loading more pages as you scroll to the end of the list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("launch-browser needs an interactive terminal; use 'launch-browser list' for plain output")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log.Initialize(cfg.LogConfig())
			defer log.Close()

			client, err := newClient(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
			defer stop()
			return app.Run(ctx, cfg, client)
		},
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print launches as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log.Initialize(cfg.LogConfig())
			defer log.Close()

			client, err := newClient(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			b, err := app.CollectLaunches(ctx, client, pagesFlag)
			if err != nil {
				// Print what was loaded before the failure.
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			b.SetQuery(queryFlag)

			launches := b.Visible()
			if len(launches) == 0 {
				if queryFlag != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "No launches match %q\n", queryFlag)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "No launches")
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.RenderTable(launches))
			if !b.HasMore() {
				fmt.Fprintln(cmd.OutOrStdout(), "no more data fetched to load.")
			}
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			logPath, err := log.GetLogFilePath(cfg.LogConfig())
			if err != nil {
				logPath = log.LogFilePath()
			}

			client, err := newClient(cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Fprintf(cmd.OutOrStdout(), "Log file: %s\n", logPath)
			fmt.Fprintf(cmd.OutOrStdout(), "First page: %s\n", client.PageURL(1))
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of launch-browser",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "launch-browser version %s\n", version)
		},
	}
)

// loadConfig loads the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.LoadConfig()

	if cmd.Flags().Changed("endpoint") {
		cfg.Endpoint = endpointFlag
	}
	if noMouseFlag {
		cfg.MouseEnabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newClient(cfg *config.Config) (*api.Client, error) {
	return api.NewClient(cfg.Endpoint,
		api.WithTimeout(cfg.RequestTimeout()),
		api.WithUserAgent("launch-browser/"+version),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", api.DefaultEndpoint,
		"Launch collection URL to page through")
	rootCmd.Flags().BoolVar(&noMouseFlag, "no-mouse", false,
		"Disable mouse wheel scrolling")

	listCmd.Flags().IntVarP(&pagesFlag, "pages", "n", 0, "Maximum number of pages to load (0 loads until the end)")
	listCmd.Flags().StringVarP(&queryFlag, "query", "q", "", "Only print launches whose mission name contains this text")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
