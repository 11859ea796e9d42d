package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcastrillon/labelscan/internal/pipeline"
	"github.com/mcastrillon/labelscan/internal/reconcile"
)

var confirmCmd = &cobra.Command{
	Use:   "confirm CODE [CODE...]",
	Short: "Confirm codes and append the new ones to the inventory",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConfirm,
}

func init() {
	rootCmd.AddCommand(confirmCmd)
}

func runConfirm(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, nil, pipeline.Options{})
	if err != nil {
		return err
	}
	defer s.close()

	out := cmd.OutOrStdout()
	for _, candidate := range args {
		res := s.pipe.Manual(candidate)
		if res.Outcome != nil && res.Outcome.Kind == reconcile.PendingConfirmation {
			outcome := s.pipe.Confirm(res.Outcome.Code)
			fmt.Fprintln(out, outcome.Message())
			continue
		}
		fmt.Fprintln(out, res.Message())
	}
	return nil
}
