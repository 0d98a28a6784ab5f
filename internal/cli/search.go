package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tobiasmeyr/staybook/pkg/hotelapi/search"
)

// searchOpts holds the command-line flags for the search command.
type searchOpts struct {
	checkIn     string
	checkOut    string
	nationality string
	currency    string
	adults      int
	childAges   []int
	refundable  bool
	cheapest    bool
	limit       int
}

// newSearchCmd creates the search command.
//
// Default options:
//   - adults: 2 in a single room
//   - limit: 10 hotels shown
func newSearchCmd(client *clientOpts) *cobra.Command {
	opts := searchOpts{adults: 2, limit: 10}

	cmd := &cobra.Command{
		Use:   "search <city-code>",
		Short: "Search hotel availability for a city and stay",
		Long: `Search hotel availability for a city and stay window.

City codes come from the static content catalog (see "staybook lookup cities").

Examples:
  staybook search 115936 --checkin 2026-10-01 --checkout 2026-10-05
  staybook search 115936 --checkin 2026-10-01 --checkout 2026-10-05 --adults 2 --child-age 4 --child-age 9
  staybook search 115936 --checkin 2026-10-01 --checkout 2026-10-05 --refundable --cheapest`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runSearch(c, args[0], client, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.checkIn, "checkin", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.checkOut, "checkout", "", "check-out date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.nationality, "nationality", "", "guest nationality (ISO country code)")
	cmd.Flags().StringVar(&opts.currency, "currency", "", "preferred currency (e.g. USD)")
	cmd.Flags().IntVar(&opts.adults, "adults", opts.adults, "adults in the room")
	cmd.Flags().IntSliceVar(&opts.childAges, "child-age", nil, "child age, repeatable")
	cmd.Flags().BoolVar(&opts.refundable, "refundable", false, "show only refundable rates")
	cmd.Flags().BoolVar(&opts.cheapest, "cheapest", false, "show only the single cheapest rate")
	cmd.Flags().IntVar(&opts.limit, "limit", opts.limit, "maximum hotels to display")
	_ = cmd.MarkFlagRequired("checkin")
	_ = cmd.MarkFlagRequired("checkout")

	return cmd
}

func runSearch(cmd *cobra.Command, cityCode string, client *clientOpts, opts *searchOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	exec, err := client.newExecutor()
	if err != nil {
		return err
	}
	svc := search.NewClient(exec)

	params := search.Params{
		CheckIn:          opts.checkIn,
		CheckOut:         opts.checkOut,
		CityCode:         cityCode,
		GuestNationality: opts.nationality,
		Currency:         opts.currency,
		Rooms:            []search.Room{{Adults: opts.adults, ChildAges: opts.childAges}},
	}

	prog := newProgress(logger)
	var result *search.Result
	err = runWithSpinner(ctx, fmt.Sprintf("Searching city %s...", cityCode), func() error {
		var serr error
		result, serr = svc.Search(ctx, params)
		return serr
	})
	if err != nil {
		return err
	}

	if result.Status.Empty() {
		printInfo("No availability in city %s for %s to %s", cityCode, opts.checkIn, opts.checkOut)
		return nil
	}
	prog.done(fmt.Sprintf("Found %d hotels", len(result.Hotels)))

	if opts.refundable {
		result.Hotels = result.Refundable()
		if len(result.Hotels) == 0 {
			printInfo("No refundable rates available")
			return nil
		}
	}

	if opts.cheapest {
		offer, rate, ok := result.Cheapest()
		if !ok {
			printInfo("No bookable rates in result")
			return nil
		}
		renderOffer(offer, []search.Rate{rate})
		return nil
	}

	shown := result.Hotels
	if opts.limit > 0 && len(shown) > opts.limit {
		shown = shown[:opts.limit]
	}
	for _, offer := range shown {
		renderOffer(offer, offer.Rates)
		printNewline()
	}
	if len(shown) < len(result.Hotels) {
		printDetail("%d more hotels not shown (raise --limit)", len(result.Hotels)-len(shown))
	}
	return nil
}
