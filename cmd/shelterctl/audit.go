package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"aidforpaws/internal/service"
)

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List donations whose animal has been deleted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			stores, err := openStores(ctx, cmd)
			if err != nil {
				return err
			}
			defer stores.Close(context.Background())

			return runAudit(ctx, service.NewDonationService(stores.Donations), cmd.OutOrStdout())
		},
	}
	return cmd
}

func runAudit(ctx context.Context, donations *service.DonationService, out io.Writer) error {
	items, err := donations.Dangling(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(out, "no dangling donations")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DONATION\tANIMAL\tAMOUNT\tPAYMENT\tCREATED")
	for _, d := range items {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\n", d.ID, d.AnimalID, d.Amount, d.PaymentID, d.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d dangling donation(s)\n", len(items))
	return nil
}
