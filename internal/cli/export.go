package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcastrillon/labelscan/internal/export"
	"github.com/mcastrillon/labelscan/internal/pipeline"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the inventory without modifying it",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Write the full inventory as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExportCSV,
}

var exportListingCmd = &cobra.Command{
	Use:   "listing",
	Short: "Write the paginated code listing as plain text",
	Args:  cobra.NoArgs,
	RunE:  runExportListing,
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOut, "out", "o", "", "output file (default: generated name, \"-\" for stdout)")
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportListingCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, nil, pipeline.Options{})
	if err != nil {
		return err
	}
	defer s.close()

	return writeExport(cmd, "inventario", "csv", func(f *os.File) error {
		return export.CSV(f, s.dataset, s.workbook.CodeColumn())
	})
}

func runExportListing(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, nil, pipeline.Options{})
	if err != nil {
		return err
	}
	defer s.close()

	return writeExport(cmd, "listado", "txt", func(f *os.File) error {
		return export.Listing(f, s.dataset, s.cfg.ListingTitle, s.cfg.ListingPageSize)
	})
}

// writeExport resolves the destination from --out and runs the render
// function against it. "-" streams to stdout.
func writeExport(cmd *cobra.Command, prefix, ext string, render func(*os.File) error) error {
	if exportOut == "-" {
		return render(os.Stdout)
	}
	path := exportOut
	if path == "" {
		path = export.FileName(prefix, ext)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
