package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/campushub/internal/domain"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
	domlisting "github.com/kailas-cloud/campushub/internal/domain/listing"
	chiTransport "github.com/kailas-cloud/campushub/internal/transport/chi"
	listinguc "github.com/kailas-cloud/campushub/internal/usecase/listing"
)

func browseCmd(env *string) *cobra.Command {
	var (
		query string
		tags  []string
	)

	cmd := &cobra.Command{
		Use:       "browse <kind>",
		Short:     "Print the records of a catalog visible under a filter",
		Example:   "  campushub browse projects --tag AI --tag IoT\n  campushub browse members --q stanford",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"projects", "members", "mentors", "funding"},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := kind.Kind(args[0])
			if !k.IsValid() {
				return fmt.Errorf("%q: %w", args[0], domain.ErrUnknownKind)
			}

			a, err := newApp(cmd.Context(), *env)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.ensureSeeded(cmd.Context()); err != nil {
				return err
			}

			state := domlisting.NewState(query, tags...)
			return browse(cmd.Context(), cmd.OutOrStdout(), a.services(nil), k, state)
		},
	}

	cmd.Flags().StringVar(&query, "q", "", "Free-text query (case-insensitive substring)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Selected tag; repeat for several (any may match)")
	return cmd
}

func browse(
	ctx context.Context, w io.Writer, s chiTransport.Services, k kind.Kind, state domlisting.State,
) error {
	switch k {
	case kind.Projects:
		return printPage(ctx, w, s.Projects, state)
	case kind.Members:
		return printPage(ctx, w, s.Members, state)
	case kind.Mentors:
		return printPage(ctx, w, s.Mentors, state)
	case kind.Funding:
		return printPage(ctx, w, s.Funding, state)
	default:
		return fmt.Errorf("%q: %w", k, domain.ErrUnknownKind)
	}
}

func printPage[R any](ctx context.Context, w io.Writer, svc *listinguc.Service[R], state domlisting.State) error {
	page, err := svc.Browse(ctx, state)
	if err != nil {
		return fmt.Errorf("browse %s: %w", svc.Kind(), err)
	}

	ex := svc.Extractor()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, it := range page.Items {
		var headline string
		if f := ex.Fields(it); len(f) > 0 {
			headline = f[0]
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ex.ID(it), headline, strings.Join(ex.Tags(it), ", "))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Fprintf(w, "%d of %d %s\n", page.Count, page.Total, svc.Kind())
	return nil
}
