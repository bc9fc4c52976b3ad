package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facturakit/facturakit/internal/invoice"
	"github.com/facturakit/facturakit/internal/layout"
	"github.com/facturakit/facturakit/internal/store"
)

type previewFlags struct {
	compact  bool
	template string
	user     string
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	preview := previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview [invoice.json]",
		Short: "Render an invoice to the terminal",
		Long: `Render an invoice document to stdout. Without an argument the sample
invoice is rendered. When --user is set, one generation credit is consumed
from that account's plan.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, flags, preview, args)
		},
	}

	cmd.Flags().BoolVarP(&preview.compact, "compact", "c", false, "Render at thumbnail width")
	cmd.Flags().StringVarP(&preview.template, "template", "t", "", "Override the invoice's template")
	cmd.Flags().StringVarP(&preview.user, "user", "u", "", "Consume a generation credit from this account")

	return cmd
}

func runPreview(cmd *cobra.Command, flags *rootFlags, preview previewFlags, args []string) error {
	settings, err := loadSettings(flags)
	if err != nil {
		return err
	}
	log, err := newLogger(flags, settings)
	if err != nil {
		return err
	}

	inv := invoice.Sample()
	if len(args) == 1 {
		inv, err = readInvoice(args[0])
		if err != nil {
			return err
		}
	}
	if preview.template != "" {
		inv.TemplateID = preview.template
		inv.AccentColor = ""
	}

	if preview.user != "" {
		accounts, err := store.New(settings.StorePath)
		if err != nil {
			return err
		}
		plan, err := accounts.ConsumeCredit(preview.user)
		if err != nil {
			return err
		}
		if err := accounts.Save(); err != nil {
			return err
		}
		log.WithFields(map[string]any{
			"user":      preview.user,
			"remaining": plan.Remaining,
		}).Info("generation credit consumed")
	}

	out, err := layout.Render(&inv, layout.Options{
		Compact:        preview.compact,
		CurrencySymbol: settings.CurrencySymbol,
	})
	if err != nil {
		return err
	}

	totals := invoice.ComputeTotals(inv.Items, inv.Discount, inv.TaxRatePercent)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %s\n", invoice.FormatMoneyWith(totals.Total, settings.CurrencySymbol))
	return nil
}
