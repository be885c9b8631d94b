package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is injected via ldflags at build time
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorColor("error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "moodbite",
		Short:         "Mood-aware recipe browser with a virtual pet and missions",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "config.yaml", "path to the YAML config file")
	flags.StringVar(&opts.dataset, "dataset", "", "dataset location: file path, http(s) URL or s3://bucket/key")
	flags.StringVar(&opts.store, "store", "", "record store driver: memory or postgres")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newRecipesCmd(opts),
		newExportCmd(opts),
		newMoodCmd(opts),
		newTokenCmd(opts),
	)
	return rootCmd
}
