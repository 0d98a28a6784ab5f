package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tobiasmeyr/staybook/pkg/hotelapi/static"
)

// newLookupCmd creates the lookup command with its static-content
// subcommands (countries, cities, hotel).
func newLookupCmd(client *clientOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Browse the static content catalog",
		Long: `Browse the static content catalog backing search.

Examples:
  staybook lookup countries          # All bookable countries
  staybook lookup cities AE          # Cities of a country
  staybook lookup hotel 1000001      # One hotel's details`,
	}

	cmd.AddCommand(newCountriesCmd(client))
	cmd.AddCommand(newCitiesCmd(client))
	cmd.AddCommand(newHotelCmd(client))

	return cmd
}

func newCountriesCmd(client *clientOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List bookable countries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := staticClient(client)
			if err != nil {
				return err
			}

			var countries []static.Country
			err = runWithSpinner(ctx, "Fetching countries...", func() error {
				var cerr error
				countries, cerr = svc.Countries(ctx)
				return cerr
			})
			if err != nil {
				return err
			}

			for _, c := range countries {
				fmt.Println(StyleHighlight.Render(c.Code) + "  " + StyleValue.Render(c.Name))
			}
			printDetail("%d countries", len(countries))
			return nil
		},
	}
}

func newCitiesCmd(client *clientOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "cities <country-code>",
		Short: "List cities of a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := staticClient(client)
			if err != nil {
				return err
			}

			var cities []static.City
			err = runWithSpinner(ctx, fmt.Sprintf("Fetching cities of %s...", args[0]), func() error {
				var cerr error
				cities, cerr = svc.Cities(ctx, args[0])
				return cerr
			})
			if err != nil {
				return err
			}

			if len(cities) == 0 {
				printInfo("No cities for country %s", args[0])
				return nil
			}
			for _, c := range cities {
				fmt.Println(StyleHighlight.Render(c.Code) + "  " + StyleValue.Render(c.Name))
			}
			printDetail("%d cities", len(cities))
			return nil
		},
	}
}

func newHotelCmd(client *clientOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "hotel <hotel-code>",
		Short: "Show details of one hotel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := staticClient(client)
			if err != nil {
				return err
			}

			var details *static.HotelDetails
			err = runWithSpinner(ctx, "Fetching hotel details...", func() error {
				var herr error
				details, herr = svc.HotelDetails(ctx, args[0])
				return herr
			})
			if err != nil {
				return err
			}

			if details == nil {
				printInfo("No hotel with code %s", args[0])
				return nil
			}
			renderHotelDetails(details)
			return nil
		},
	}
}

// staticClient builds a static-content client from the shared connection
// options.
func staticClient(client *clientOpts) (*static.Client, error) {
	exec, err := client.newExecutor()
	if err != nil {
		return nil, err
	}
	return static.NewClient(exec), nil
}
