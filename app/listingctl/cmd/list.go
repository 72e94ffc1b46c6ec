package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/anft-xyz/goapi/base/amount"
	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/validator"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/listing"
)

var (
	listFilter    = listing.DefaultFilter()
	listOwnership string
	listViewer    string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List listings matching a filter",
	Aliases: []string{"ls"},
	Long: `List one page of listings with their on-chain value and daily payment.

Examples:
  listingctl list
  listingctl list --province 79 --district 760
  listingctl list --fee-range LOW --area-range MEDIUM
  listingctl list --ownership owned --viewer 0x939ae6A4C8dfDBB1f7085189574F0A938013952A`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	f := listCmd.Flags()
	f.IntVar(&listFilter.Page, "page", listFilter.Page, "page index")
	f.IntVar(&listFilter.Size, "size", listFilter.Size, "page size")
	f.StringVar(&listFilter.Sort, "sort", listFilter.Sort, "sort as field,direction")
	f.StringVar(&listFilter.ProvinceCode, "province", "", "province code")
	f.StringVar(&listFilter.DistrictCode, "district", "", "district code")
	f.StringVar(&listFilter.TypeIds, "types", "", "comma separated listing type ids")
	f.StringVar(&listFilter.CommercialTypes, "commercial", "", "SELL, RENT or SELL,RENT")
	f.StringVar((*string)(&listFilter.MiningFeeRange), "fee-range", "", "mining fee bucket, EXTREMELY_LOW to VERY_HIGH")
	f.StringVar((*string)(&listFilter.AreaRange), "area-range", "", "area bucket, EXTREMELY_LOW to VERY_HIGH")
	f.StringVar(&listFilter.Quality, "quality", "", "A, B, C or D")
	f.StringVar(&listFilter.Orientation, "orientation", "", "east, west, south, north, northEast, ...")
	f.StringVar(&listOwnership, "ownership", "", "all, yetOwned or owned")
	f.StringVar(&listViewer, "viewer", "", "wallet address, required with --ownership owned")
}

// buildFilter validates the flag values and resolves the ownership selector
func buildFilter(filter listing.Filter, ownership, viewer string) (listing.Filter, error) {
	v, err := validator.New(listing.RegisterValidations)
	if err != nil {
		return listing.Filter{}, err
	}
	if err := v.Struct(filter); err != nil {
		return listing.Filter{}, err
	}

	addr, err := parseAddress(viewer)
	if err != nil {
		return listing.Filter{}, err
	}
	switch opt := listing.OwnershipOption(ownership); opt {
	case "":
	case listing.OwnershipOwned:
		if addr.IsEmpty() {
			return listing.Filter{}, domain.ErrInvalidAddress
		}
		filter.SetOwnership(opt, addr)
	case listing.OwnershipAll, listing.OwnershipYetOwned:
		filter.SetOwnership(opt, addr)
	default:
		return listing.Filter{}, domain.ErrInvalidFilter
	}
	return filter, nil
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := buildFilter(listFilter, listOwnership, listViewer)
	if err != nil {
		return err
	}

	page, err := uc.ListFiltered(ctx.Background(), filter)
	if err != nil {
		return err
	}
	if asJson {
		return printJson(cmd.OutOrStdout(), page)
	}
	return printPage(cmd.OutOrStdout(), page, time.Now())
}

func printPage(out io.Writer, page *listing.Page, now time.Time) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVALUE\tDAILY PAYMENT\tEXPIRY")
	for _, l := range page.Results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			l.Id,
			l.Name,
			amount.FormatToken(listing.ToInt(l.Value), true),
			amount.FormatToken(listing.ToInt(l.DailyPayment), true),
			expiry(l, now),
		)
	}
	fmt.Fprintf(w, "\n%d of %d\n", len(page.Results), page.Count)
	return w.Flush()
}

func expiry(l *listing.Listing, now time.Time) string {
	ts, ok := l.OwnershipUnix()
	if !ok {
		return "_"
	}
	s := listing.FormatUnixDate(ts, loc)
	switch {
	case listing.IsExpired(ts, now):
		s += " (expired)"
	case listing.IsAboutToExpire(ts, now):
		s += " (expiring)"
	}
	return s
}
