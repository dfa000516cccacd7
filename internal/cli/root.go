// Package cli implements billctl, an offline companion of the billing
// service. It prices JSON exports with the same calculators the service uses.
package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"transfers.app/internal/config"
)

const dateLayout = "2006-01-02"

var version = "dev"

// NewRootCommand builds the billctl command tree.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "billctl",
		Short: "Price transfer exports offline",
		Long: `billctl prices a JSON export of clients and service records with the
billing engine: bill previews with tax totals and profit reports with
collaborator commissions.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("data", "d", "transfers.json", "Dataset JSON file")
	root.PersistentFlags().StringP("format", "f", "text", "Output format: text or json")

	root.AddCommand(newPreviewCommand(cfg))
	root.AddCommand(newProfitsCommand())

	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func loadDataset(cmd *cobra.Command) (*Dataset, error) {
	path, _ := cmd.Flags().GetString("data")
	return LoadDataset(path)
}
