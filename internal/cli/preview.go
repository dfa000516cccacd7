package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"transfers.app/billing/model"
	"transfers.app/billing/preview"
	"transfers.app/billing/pricing"
	"transfers.app/internal/config"
	"transfers.app/internal/logger"
)

func newPreviewCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a bill for a client",
		Example: `  # Preview every unbilled record of a client
  billctl preview --client 6f1c1c1e-8a55-4d7a-9a43-2c1f3a7d9e10

  # Preview two records with tax included in prices
  billctl preview --client <id> --record <id> --record <id> --tax included`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, cfg)
		},
	}

	cmd.Flags().String("client", "", "Client id")
	cmd.Flags().StringSlice("record", nil, "Service record id, repeatable (default: all unbilled records of the client)")
	cmd.Flags().String("tax-rate", cfg.DefaultTaxRate.String(), "Tax rate in percent")
	cmd.Flags().String("tax", string(cfg.DefaultTaxApplication), "Tax application: included or excluded")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}

func runPreview(cmd *cobra.Command, cfg *config.Config) error {
	log := logger.WithComponent("preview")

	clientRaw, _ := cmd.Flags().GetString("client")
	recordRaw, _ := cmd.Flags().GetStringSlice("record")
	rateRaw, _ := cmd.Flags().GetString("tax-rate")
	mode, _ := cmd.Flags().GetString("tax")
	format, _ := cmd.Flags().GetString("format")

	clientID, err := uuid.Parse(clientRaw)
	if err != nil {
		return fmt.Errorf("invalid client id %q", clientRaw)
	}
	rate, err := decimal.NewFromString(rateRaw)
	if err != nil {
		return fmt.Errorf("invalid tax rate %q", rateRaw)
	}
	taxApplication := model.TaxApplication(mode)
	if !taxApplication.Valid() {
		return fmt.Errorf("tax must be included or excluded, got %q", mode)
	}

	ds, err := loadDataset(cmd)
	if err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(recordRaw))
	for _, r := range recordRaw {
		id, err := uuid.Parse(r)
		if err != nil {
			return fmt.Errorf("invalid record id %q", r)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		ids = ds.Unbilled(clientID)
	}

	log.Debug().Str("client_id", clientID.String()).Int("records", len(ids)).Msg("calculating preview")

	src := preview.NewMemorySource(ds.Clients, ds.Records).WithInvalid(ds.Invalid...)
	p, err := preview.NewAssembler(src).Calculate(cmd.Context(), preview.Request{
		ClientID:         clientID,
		ServiceRecordIDs: ids,
		TaxRate:          rate,
		TaxApplication:   taxApplication,
	})
	if err != nil {
		return err
	}
	for _, s := range p.Skipped {
		log.Warn().Str("record_id", s.ServiceRecordID.String()).Str("reason", string(s.Reason)).Msg("record skipped")
	}

	if format == "json" {
		return writeJSON(cmd.OutOrStdout(), p)
	}
	return printPreview(cmd.OutOrStdout(), p)
}

func printPreview(out io.Writer, p *model.BillPreview) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Cliente:\t%s\n\n", p.ClientName)
	for _, item := range preview.ExpandItems(p) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			item.Description,
			item.Quantity.String(),
			pricing.FormatMoney(item.UnitPrice),
			pricing.FormatMoney(item.TotalPrice),
		)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Subtotal:\t%s\n", pricing.FormatMoney(p.SubTotal))
	fmt.Fprintf(w, "IVA (%s%%, %s):\t%s\n", p.TaxRate.String(), p.TaxApplication, pricing.FormatMoney(p.TaxAmount))
	fmt.Fprintf(w, "Total:\t%s\n", pricing.FormatMoney(p.Total))
	if len(p.Skipped) > 0 {
		fmt.Fprintf(w, "Omitidos:\t%d\n", len(p.Skipped))
	}

	return w.Flush()
}
