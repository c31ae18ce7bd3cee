package main

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/metinatakli/jobmatch/internal/app"
	"github.com/spf13/cobra"
)

var (
	redriveRef   string
	redriveLimit int
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Re-drive completed payments whose premium or boost was never applied",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := app.NewLogger(cfg)
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		s, err := openStores(cfg, logger, false)
		if err != nil {
			return err
		}
		defer s.Close()

		engine := s.engine(logger)

		if redriveRef != "" {
			outcome, err := engine.Redrive(ctx, redriveRef)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s: %s\n", redriveRef, outcome.Result)
			return nil
		}

		pending, err := s.repos.Payments.ListUnappliedCompleted(ctx, redriveLimit)
		if err != nil {
			return err
		}

		if len(pending) == 0 {
			fmt.Fprintln(out, "nothing to reconcile")
			return nil
		}

		if !assumeYes {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Re-drive %d completed payment(s)", len(pending)),
				IsConfirm: true,
			}

			_, err := prompt.Run()
			if err != nil {
				if errors.Is(err, promptui.ErrAbort) {
					fmt.Fprintln(out, "aborted")
					return nil
				}

				return err
			}
		}

		repaired, err := engine.RedrivePending(ctx, redriveLimit)
		fmt.Fprintf(out, "repaired %d of %d payment(s)\n", repaired, len(pending))

		return err
	},
}

func init() {
	reconcileCmd.Flags().StringVar(&redriveRef, "ref", "", "re-drive a single payment by external reference")
	reconcileCmd.Flags().IntVar(&redriveLimit, "limit", 50, "maximum number of payments to re-drive")
	reconcileCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")

	rootCmd.AddCommand(reconcileCmd)
}
