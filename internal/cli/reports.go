package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print totals, the cash/digital split and daily averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := domain.ParseDateRange(start, end)
			if err != nil {
				return describeError(err)
			}
			svc, err := a.svc(cmd)
			if err != nil {
				return err
			}
			res, err := svc.Analytics.GetAnalytics(cmd.Context(), r)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), res)
		},
	}
	registerRangeFlags(cmd, &start, &end)
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var start, end, out string
	cmd := &cobra.Command{
		Use:       "export csv|pdf",
		Short:     "Export transactions as CSV or a PDF report",
		Example:   "  fruitshopctl export pdf --start 2024-01-01 --end 2024-01-31 --out january.pdf",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"csv", "pdf"},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := domain.ParseDateRange(start, end)
			if err != nil {
				return describeError(err)
			}
			svc, err := a.svc(cmd)
			if err != nil {
				return err
			}

			var data []byte
			switch args[0] {
			case "csv":
				data, err = svc.Export.ExportCSV(cmd.Context(), r)
			case "pdf":
				data, err = svc.Export.ExportPDF(cmd.Context(), r)
			}
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), out, data)
		},
	}
	registerRangeFlags(cmd, &start, &end)
	cmd.Flags().StringVar(&out, "out", "", `Destination file, or "-" for standard output.`)
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(stdout, "Wrote %d bytes to %s\n", len(data), path)
	return nil
}
