package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/campushub/internal/config"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
)

func seedCmd(env *string) *cobra.Command {
	var force, drop bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the reference catalogs into the configured store",
		Long: `Writes the reference projects, members, mentors and funding catalogs.
Catalogs that are already loaded are left alone unless --force is given.
With --clear the catalogs are deleted instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), *env)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.cfg.Database.Driver == config.DriverEmbedded {
				a.logger.Warn("Seeding the embedded store: data is discarded when the command exits")
			}

			if drop {
				cleared, err := a.loader().Clear(cmd.Context())
				if err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				for _, k := range cleared {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: cleared\n", k)
				}
				return nil
			}

			report, err := a.loader().Load(cmd.Context(), force)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(report) == 0 {
				fmt.Fprintln(out, "all catalogs already loaded")
				return nil
			}
			for _, k := range kind.All() {
				if n, ok := report[k]; ok {
					fmt.Fprintf(out, "%s: %d records\n", k, n)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite catalogs that are already loaded")
	cmd.Flags().BoolVar(&drop, "clear", false, "Delete the catalogs instead of loading them")
	cmd.MarkFlagsMutuallyExclusive("force", "clear")
	return cmd
}
