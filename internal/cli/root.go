package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jengzang/voyager-backend-go/internal/generator"
	"github.com/jengzang/voyager-backend-go/internal/models"
	"github.com/jengzang/voyager-backend-go/internal/service"
)

type options struct {
	generatorURL string
	timeout      string
}

// NewRootCmd builds the voyager command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "voyager",
		Short: "Generate and replan travel itineraries",
		Long: `voyager talks to the itinerary generator and replans trips locally.

Examples:
  # Generate a 3 day trip for two and save it
  voyager generate --location Kurnool --days 3 --people 2 --vibe Culture --out trip.json

  # Drop tiring activities from day 2
  voyager replan --file trip.json --day 2 --strategy energy

  # Show day 1 with costs for four travelers
  voyager day --file trip.json --day 1 --travelers 4`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.generatorURL, "generator-url", envOr("GENERATOR_URL", "http://127.0.0.1:5000/generate"), "Generator endpoint")
	root.PersistentFlags().StringVar(&opts.timeout, "timeout", envOr("GENERATOR_TIMEOUT", generator.DefaultTimeout.String()), "Generator timeout")

	root.AddCommand(
		newGenerateCmd(opts),
		newReplanCmd(opts),
		newDayCmd(opts),
		newStrategiesCmd(),
	)
	return root
}

// service builds a trip service without audit logging
func (o *options) service() (*service.TripService, error) {
	timeout, err := parseDuration(o.timeout)
	if err != nil {
		return nil, err
	}
	return service.NewTripService(generator.NewClient(o.generatorURL, timeout), nil, nil), nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func readTrip(path string) (*models.Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trip: %w", err)
	}

	// Saved generator responses may hold the trip as a JSON string
	trip, err := generator.DecodeTrip(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse trip %s: %w", path, err)
	}
	return trip, nil
}

// saveTrip writes trip to path, reporting close errors
func saveTrip(path string, trip *models.Trip) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return writeJSON(f, trip)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
