package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paintmytown/iconsmith/internal/deploy"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the generated icon set to S3",
	Long:  "Publish uploads the asset-catalog directory to an S3 bucket, skipping unchanged objects.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		overrides := map[string]any{}
		if cmd.Flags().Changed("bucket") {
			bucket, _ := cmd.Flags().GetString("bucket")
			overrides["bucket"] = bucket
		}
		if cmd.Flags().Changed("prefix") {
			prefix, _ := cmd.Flags().GetString("prefix")
			overrides["prefix"] = prefix
		}
		cfg.WithOverrides(overrides)

		if cfg.Publish.Bucket == "" {
			return fmt.Errorf("no bucket configured: set publish.bucket or pass --bucket")
		}

		if _, err := os.Stat(cfg.Output.Dir); err != nil {
			return fmt.Errorf("icon directory %s not found; run iconsmith generate first", cfg.Output.Dir)
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")

		deployCfg := deploy.Config{
			Bucket:  cfg.Publish.Bucket,
			Region:  cfg.Publish.Region,
			Prefix:  cfg.Publish.Prefix,
			DryRun:  dryRun,
			Verbose: verbose,
		}

		client, err := deploy.DefaultS3Client(cmd.Context(), deployCfg.Region, deployCfg.Bucket)
		if err != nil {
			return err
		}

		result, err := deploy.Publish(cmd.Context(), deployCfg, cfg.Output.Dir, client)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d, skipped %d\n", result.Uploaded, result.Skipped)
		if len(result.Errors) > 0 {
			for _, e := range result.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %v\n", e)
			}
			return fmt.Errorf("publish finished with %d errors", len(result.Errors))
		}
		return nil
	},
}

func init() {
	publishCmd.Flags().String("bucket", "", "S3 bucket")
	publishCmd.Flags().String("prefix", "", "key prefix inside the bucket")
	publishCmd.Flags().Bool("dry-run", false, "print the plan without uploading")

	rootCmd.AddCommand(publishCmd)
}
