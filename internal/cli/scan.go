package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcastrillon/labelscan/internal/imaging"
	"github.com/mcastrillon/labelscan/internal/ocr"
	"github.com/mcastrillon/labelscan/internal/pipeline"
	"github.com/mcastrillon/labelscan/internal/reconcile"
)

var (
	scanYes    bool
	scanRegion string
	scanLang   string
	scanRGB    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan PHOTO [PHOTO...]",
	Short: "Scan label photos and reconcile the extracted codes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolVarP(&scanYes, "yes", "y", false, "add new codes without asking")
	scanCmd.Flags().StringVar(&scanRegion, "region", "", "crop photos to x1,y1,x2,y2 before OCR")
	scanCmd.Flags().StringVar(&scanLang, "lang", "", "tesseract language (overrides config)")
	scanCmd.Flags().BoolVar(&scanRGB, "rgb", false, "feed the OCR engine three-channel input")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	opts := pipeline.Options{RGB: scanRGB}
	if scanRegion != "" {
		region, err := imaging.ParseRegion(scanRegion)
		if err != nil {
			return err
		}
		opts.Region = &region
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lang := cfg.OCRLanguage
	if scanLang != "" {
		lang = scanLang
	}

	s, err := openSession(cmd, ocr.NewTesseract(lang), opts)
	if err != nil {
		return err
	}
	defer s.close()

	report := s.pipe.ScanBatch(cmd.Context(), args)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "batch %s: %d photo(s)\n", report.ID, len(report.Results))

	answers := bufio.NewReader(cmd.InOrStdin())
	for _, res := range report.Results {
		fmt.Fprintln(out, res.Message())
		if res.Outcome == nil || res.Outcome.Kind != reconcile.PendingConfirmation {
			continue
		}
		if confirmed := scanYes || askConfirm(answers, out, res.Outcome.Code.String()); confirmed {
			outcome := s.pipe.Confirm(res.Outcome.Code)
			fmt.Fprintln(out, outcome.Message())
		} else {
			fmt.Fprintf(out, "code %s left unconfirmed\n", res.Outcome.Code)
		}
	}
	return nil
}

// askConfirm reads the next yes/no answer for adding one code. Anything
// but an explicit yes declines. The caller shares one reader across a
// whole invocation so each call consumes exactly one answer line.
func askConfirm(in *bufio.Reader, out io.Writer, code string) bool {
	fmt.Fprintf(out, "add new code %s to the inventory? [y/N] ", code)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sí":
		return true
	default:
		return false
	}
}
