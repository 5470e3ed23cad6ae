package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/brewnote/brewnote/internal/client"
	"github.com/brewnote/brewnote/internal/config"
	"github.com/brewnote/brewnote/internal/timer"
)

// tickInterval resolves the runner cadence: an explicit --interval flag wins,
// otherwise BREWNOTE_TICK_INTERVAL_MS (default 100ms) applies.
func tickInterval(cmd *cobra.Command, flagMs int) (time.Duration, error) {
	if cmd.Flags().Changed("interval") {
		if flagMs <= 0 {
			return 0, fmt.Errorf("--interval must be positive")
		}
		return time.Duration(flagMs) * time.Millisecond, nil
	}
	cfg, err := config.New()
	if err != nil {
		return 0, err
	}
	return cfg.TickInterval(), nil
}

func init() {
	var interval int

	brewCmd := &cobra.Command{
		Use:   "brew RECIPE_ID",
		Short: "Run the guided pour timer for a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tick, err := tickInterval(cmd, interval)
			if err != nil {
				return err
			}
			c := client.New(apiFlag)
			r, err := c.GetRecipe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			pt, err := timer.NewPourTimer(*r)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "%s  (%s, total %s)\n",
				r.Title, r.Dripper, timer.FormatClock(int(r.TotalDuration()*10)))
			pt.Toggle()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			lastStep := -1
			runner := timer.NewRunner(
				timer.WithInterval(tick),
				timer.WithOnTick(func() {
					if idx := pt.ActiveStepIndex(); idx != lastStep {
						lastStep = idx
						step := pt.ActiveStep()
						fmt.Fprintf(os.Stdout, "\n[%s] %.0fg까지 (+%.0fg)\n",
							step.Label, step.WaterAmount, step.AddedAmount)
					}
					fmt.Fprintf(os.Stdout, "\r%s  step %3.0f%%  total %3.0f%%",
						timer.FormatClock(pt.ElapsedTenths()), pt.StepProgress()*100, pt.Completion()*100)
				}),
			)
			err = runner.Run(ctx, pt, func() bool { return pt.State() == timer.StateFinished })
			fmt.Fprintln(os.Stdout)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "추출 완료")
			return nil
		},
	}
	brewCmd.Flags().IntVar(&interval, "interval", 100, "Tick interval in milliseconds (overrides BREWNOTE_TICK_INTERVAL_MS)")

	freeCmd := &cobra.Command{
		Use:   "free",
		Short: "Run the free-form elapsed timer (stop with Ctrl-C)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tick, err := tickInterval(cmd, interval)
			if err != nil {
				return err
			}
			ft := timer.NewFreeTimer()
			ft.Toggle()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			runner := timer.NewRunner(
				timer.WithInterval(tick),
				timer.WithOnTick(func() {
					fmt.Fprintf(os.Stdout, "\r%s", timer.FormatClock(ft.ElapsedTenths()))
				}),
			)
			_ = runner.Run(ctx, ft, nil)
			fmt.Fprintln(os.Stdout)
			return nil
		},
	}
	freeCmd.Flags().IntVar(&interval, "interval", 100, "Tick interval in milliseconds (overrides BREWNOTE_TICK_INTERVAL_MS)")
	brewCmd.AddCommand(freeCmd)

	rootCmd.AddCommand(brewCmd)
}
