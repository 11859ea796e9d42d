package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcastrillon/labelscan/internal/pipeline"
	"github.com/mcastrillon/labelscan/internal/reconcile"
)

var addYes bool

var addCmd = &cobra.Command{
	Use:   "add CODE [CODE...]",
	Short: "Enter codes by hand, bypassing the camera",
	Long: `add runs hand-typed codes through the same validation and
reconciliation as a scan: existing codes are highlighted as found, new
well-formed codes are appended after confirmation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "add new codes without asking")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, nil, pipeline.Options{})
	if err != nil {
		return err
	}
	defer s.close()

	out := cmd.OutOrStdout()
	answers := bufio.NewReader(cmd.InOrStdin())
	for _, candidate := range args {
		res := s.pipe.Manual(candidate)
		fmt.Fprintln(out, res.Message())
		if res.Outcome == nil || res.Outcome.Kind != reconcile.PendingConfirmation {
			continue
		}
		if addYes || askConfirm(answers, out, res.Outcome.Code.String()) {
			outcome := s.pipe.Confirm(res.Outcome.Code)
			fmt.Fprintln(out, outcome.Message())
		} else {
			fmt.Fprintf(out, "code %s left unconfirmed\n", res.Outcome.Code)
		}
	}
	return nil
}
