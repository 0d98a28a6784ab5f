package cli

import (
	"github.com/spf13/cobra"

	"github.com/tobiasmeyr/staybook/pkg/hotelapi/search"
)

// newPreBookCmd creates the prebook command. Pre-booking verifies a rate's
// price and cancellation policy right before a booking would be placed, so
// the underlying request is issued exactly once without retries.
func newPreBookCmd(client *clientOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "prebook <booking-code>",
		Short: "Verify price and cancellation policy for a booking code",
		Long: `Verify a rate before booking.

The booking code comes from a search result. Pre-booking re-checks the price
and returns the rate conditions and cancellation charge schedule. Prices can
change between search and pre-book; always show the pre-book price to the
guest.

Example:
  staybook prebook 'hv-std!TB!1'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			exec, err := client.newExecutor()
			if err != nil {
				return err
			}
			svc := search.NewClient(exec)

			var res *search.PreBookResult
			err = runWithSpinner(ctx, "Verifying rate...", func() error {
				var perr error
				res, perr = svc.PreBook(ctx, args[0])
				return perr
			})
			if err != nil {
				return err
			}

			if res.Status.Empty() {
				printWarning("Rate is no longer available")
				return nil
			}
			printSuccess("Rate verified")
			printNewline()
			renderPreBook(res)
			return nil
		},
	}
}
