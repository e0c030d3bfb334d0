package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/paintmytown/iconsmith/internal/generate"
	"github.com/paintmytown/iconsmith/internal/server"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the icon set in a browser",
	Long:  "Preview generates the icon set and serves a gallery with live reload on config changes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		overrides := map[string]any{}
		if cmd.Flags().Changed("port") {
			port, _ := cmd.Flags().GetInt("port")
			overrides["port"] = port
		}
		if cmd.Flags().Changed("host") {
			host, _ := cmd.Flags().GetString("host")
			overrides["host"] = host
		}
		if noReload, _ := cmd.Flags().GetBool("no-live-reload"); noReload {
			overrides["livereload"] = false
		}
		cfg.WithOverrides(overrides)

		// Initial generation.
		gen, err := generate.New(cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		result, err := gen.Run()
		if err != nil {
			return fmt.Errorf("initial generation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nGenerated %d icons in %s\n\n",
			result.Icons, result.Duration.Round(time.Millisecond))

		srv := server.New(gen.Set(), server.Options{
			Port:       cfg.Preview.Port,
			Host:       cfg.Preview.Host,
			IconDir:    cfg.Output.Dir,
			LiveReload: cfg.Preview.LiveReload,
		})

		// Regenerate when the config file changes.
		configPath, _ := cmd.Root().PersistentFlags().GetString("config")
		watcher := server.NewWatcher(configPath, 100*time.Millisecond, func() {
			log.Println("Config changed, regenerating...")
			newCfg, err := loadConfig(cmd)
			if err != nil {
				log.Printf("Reload failed: %v", err)
				return
			}
			newCfg.WithOverrides(overrides)
			newCfg.Output.Dir = cfg.Output.Dir

			regen, err := generate.New(newCfg, os.Stdout)
			if err != nil {
				log.Printf("Reload failed: %v", err)
				return
			}
			if _, err := regen.Run(); err != nil {
				log.Printf("Regeneration failed: %v", err)
				return
			}
			srv.NotifyReload()
		})
		srv.SetWatcher(watcher)

		// Graceful shutdown.
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			fmt.Println("\nShutting down...")
			cancel()
		}()

		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().Int("port", 4747, "server port")
	previewCmd.Flags().String("host", "localhost", "bind address")
	previewCmd.Flags().Bool("no-live-reload", false, "disable live reload")

	rootCmd.AddCommand(previewCmd)
}
