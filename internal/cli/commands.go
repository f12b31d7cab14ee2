package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jengzang/voyager-backend-go/internal/generator"
	"github.com/jengzang/voyager-backend-go/internal/models"
	"github.com/jengzang/voyager-backend-go/internal/replan"
	"github.com/jengzang/voyager-backend-go/internal/selection"
)

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s, err)
	}
	return d, nil
}

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		form models.TripForm
		out  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}

			trip, err := svc.Generate(cmd.Context(), form)
			if err != nil {
				return fmt.Errorf("%s (%w)", generator.UserMessage(err), err)
			}

			if out == "" {
				return writeJSON(cmd.OutOrStdout(), trip)
			}

			if err := saveTrip(out, trip); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %q (%d days) to %s\n", trip.TripName, len(trip.Itinerary), out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Location, "location", "", "Destination")
	f.IntVar(&form.Days, "days", generator.DefaultDays, "Trip length in days")
	f.StringVar(&form.BudgetTier, "tier", generator.DefaultBudgetTier, "Budget tier (Low Budget, Standard, Luxury)")
	f.IntVar(&form.People, "people", 1, "Number of travelers")
	f.StringSliceVar(&form.Vibes, "vibe", nil, "Predefined vibe tag (repeatable)")
	f.StringSliceVar(&form.CustomVibes, "custom-vibe", nil, "Custom vibe tag (repeatable)")
	f.Float64Var(&form.TotalBudget, "budget", 0, "Total budget, overrides the tier amount")
	f.StringVarP(&out, "out", "o", "", "Write the trip to this file instead of stdout")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func newReplanCmd(opts *options) *cobra.Command {
	var (
		file      string
		day       int
		strategy  string
		travelers int
		showDiff  bool
	)

	cmd := &cobra.Command{
		Use:   "replan",
		Short: "Replan one day of a saved trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := readTrip(file)
			if err != nil {
				return err
			}
			svc, err := opts.service()
			if err != nil {
				return err
			}

			res, err := svc.Replan(trip, day, strategy, travelers)
			if err != nil {
				return err
			}

			if showDiff {
				_, err = fmt.Fprint(cmd.OutOrStdout(), res.Diff)
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", "Trip JSON file")
	f.IntVar(&day, "day", 1, "Day number")
	f.StringVar(&strategy, "strategy", replan.StrategyTime, "Replan strategy")
	f.IntVar(&travelers, "travelers", 1, "Number of travelers")
	f.BoolVar(&showDiff, "diff", false, "Print only the before/after diff")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newDayCmd(opts *options) *cobra.Command {
	var (
		file      string
		day       int
		travelers int
		place     string
	)

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show one day of a saved trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := readTrip(file)
			if err != nil {
				return err
			}
			svc, err := opts.service()
			if err != nil {
				return err
			}

			var sel *selection.Selection
			if place != "" {
				sel = &selection.Selection{Day: day, Place: place}
			}

			view, err := svc.DayView(trip, day, travelers, sel)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), view)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", "Trip JSON file")
	f.IntVar(&day, "day", 1, "Day number")
	f.IntVar(&travelers, "travelers", 1, "Number of travelers")
	f.StringVar(&place, "select", "", "Place to highlight")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List replan strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range replan.Strategies() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
