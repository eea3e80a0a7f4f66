// Package main is the campushub binary: the catalog listing API and its
// operational commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/campushub/internal/config"
	"github.com/kailas-cloud/campushub/internal/version"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "campushub",
		Short: "Catalog listing service for projects, teammates, mentors and funding",
		Long: `campushub serves the platform catalogs over HTTP and lets callers narrow
each one with a free-text query and a set of selected tags.

Run without a subcommand to start the HTTP server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), env)
		},
	}

	cmd.PersistentFlags().StringVar(&env, "env", config.GetEnv(), "Config environment (config/<env>.yaml)")

	cmd.AddCommand(
		serveCmd(&env),
		seedCmd(&env),
		browseCmd(&env),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), "campushub", version.String())
			},
		},
	)

	return cmd
}
