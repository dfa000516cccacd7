package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"transfers.app/billing/business/report"
	"transfers.app/billing/model"
	"transfers.app/billing/pricing"
	"transfers.app/internal/logger"
)

func newProfitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profits",
		Short:   "Revenue and commissions over a date range",
		Example: `  billctl profits --from 2024-05-01 --to 2024-05-31 -f json`,
		Args:    cobra.NoArgs,
		RunE:    runProfits,
	}

	cmd.Flags().String("from", "", "First service date, YYYY-MM-DD")
	cmd.Flags().String("to", "", "Last service date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runProfits(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("profits")

	fromRaw, _ := cmd.Flags().GetString("from")
	toRaw, _ := cmd.Flags().GetString("to")
	format, _ := cmd.Flags().GetString("format")

	from, err := time.Parse(dateLayout, fromRaw)
	if err != nil {
		return fmt.Errorf("invalid --from %q", fromRaw)
	}
	to, err := time.Parse(dateLayout, toRaw)
	if err != nil {
		return fmt.Errorf("invalid --to %q", toRaw)
	}
	if to.Before(from) {
		return fmt.Errorf("--to must not be before --from")
	}

	ds, err := loadDataset(cmd)
	if err != nil {
		return err
	}

	r := report.BuildProfitReport(from, to, ds.Between(from, to))
	r.Invalid += len(ds.Invalid)
	log.Debug().Int("services", r.Services).Int("invalid", r.Invalid).Msg("profit report built")

	if format == "json" {
		return writeJSON(cmd.OutOrStdout(), r)
	}
	return printProfits(cmd.OutOrStdout(), r)
}

func printProfits(out io.Writer, r *model.ProfitReport) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Periodo:\t%s - %s\n", r.From.Format(dateLayout), r.To.Format(dateLayout))
	fmt.Fprintf(w, "Servicios:\t%d\n", r.Services)

	kinds := make([]model.ServiceKind, 0, len(r.ByKind))
	for k := range r.ByKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		stat := r.ByKind[k]
		fmt.Fprintf(w, "  %s:\t%d\t%s\n", pricing.ServiceLabel(k), stat.Services, pricing.FormatMoney(stat.Revenue))
	}

	fmt.Fprintf(w, "Ingresos:\t%s\n", pricing.FormatMoney(r.Revenue))
	fmt.Fprintf(w, "Comisiones:\t%s\n", pricing.FormatMoney(r.Commissions))
	for _, c := range r.Collaborators {
		fmt.Fprintf(w, "  %s:\t%d\t%s\n", c.Name, c.Services, pricing.FormatMoney(c.Amount))
	}
	fmt.Fprintf(w, "Neto:\t%s\n", pricing.FormatMoney(r.Net))
	if r.Invalid > 0 {
		fmt.Fprintf(w, "Inválidos:\t%d\n", r.Invalid)
	}

	return w.Flush()
}
