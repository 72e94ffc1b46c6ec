package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/anft-xyz/goapi/base/amount"
	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain/listing"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one listing with its on-chain detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := uc.GetOne(ctx.Background(), args[0])
		if err != nil {
			return err
		}
		if asJson {
			return printJson(cmd.OutOrStdout(), l)
		}
		return printListing(cmd.OutOrStdout(), l, time.Now())
	},
}

func printListing(out io.Writer, l *listing.Listing, now time.Time) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", l.Id)
	fmt.Fprintf(w, "name\t%s\n", l.Name)
	fmt.Fprintf(w, "address\t%s\n", l.Address)
	fmt.Fprintf(w, "location\t%s\n", l.Location)
	fmt.Fprintf(w, "value\t%s\n", amount.FormatToken(listing.ToInt(l.Value), true))
	fmt.Fprintf(w, "daily payment\t%s\n", amount.FormatToken(listing.ToInt(l.DailyPayment), true))
	fmt.Fprintf(w, "total stake\t%s\n", amount.FormatToken(listing.ToInt(l.TotalStake), true))
	fmt.Fprintf(w, "expiry\t%s\n", expiry(l, now))
	if l.Owner != nil {
		fmt.Fprintf(w, "owner\t%s\n", *l.Owner)
	}
	if l.Validator != nil {
		fmt.Fprintf(w, "validator\t%s\n", *l.Validator)
	}
	for i, o := range l.ListingPotentials {
		line := fmt.Sprintf("option %d\t%s", i, o.Name)
		if o.TotalStake != nil {
			line += "\tstaked " + amount.FormatToken(listing.ToInt(o.TotalStake), true)
		}
		if o.Stake != nil {
			line += "\tyours " + amount.FormatToken(listing.ToInt(o.Stake.Amount), true)
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}
