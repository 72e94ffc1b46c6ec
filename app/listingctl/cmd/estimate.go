package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anft-xyz/goapi/base/amount"
	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/listing"
)

var (
	estimateAmount string
	estimateViewer string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <id>",
	Short: "Estimate the ownership bought by an amount of tokens",
	Long: `Print the ownership expiry after paying --amount tokens, the withdrawable value of the
current ownership, and whether --viewer is its valid owner.

Examples:
  listingctl estimate 42 --amount 1.5
  listingctl estimate 42 --amount 10 --viewer 0x939ae6A4C8dfDBB1f7085189574F0A938013952A`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVar(&estimateAmount, "amount", "", "token amount")
	estimateCmd.Flags().StringVar(&estimateViewer, "viewer", "", "wallet address")
	_ = estimateCmd.MarkFlagRequired("amount")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if !amount.NoMoreThanOneDot(estimateAmount) {
		return domain.ErrBadParamInput
	}
	viewer, err := parseAddress(estimateViewer)
	if err != nil {
		return err
	}

	l, err := uc.GetOne(ctx.Background(), args[0])
	if err != nil {
		return err
	}
	if l.DailyPayment == nil || l.Ownership == nil {
		return domain.ErrNoContract
	}

	now := time.Now()
	amt := amount.ParseEther(estimateAmount)
	dailyPayment := listing.ToInt(l.DailyPayment)
	current, _ := l.OwnershipUnix()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "amount         %s\n", amount.FormatToken(amt, true))
	fmt.Fprintf(out, "ownership      %s\n", listing.EstimateOwnershipDate(amt, dailyPayment, listing.ToInt(l.Ownership), now, loc))
	fmt.Fprintf(out, "withdrawable   %s\n", amount.InsertCommas(listing.EstimateWithdrawAmount(dailyPayment, current, now).StringFixed(amount.DefaultDecimals)))
	fmt.Fprintf(out, "valid owner    %t\n", listing.ValidateOwnership(viewer, l, now))
	return nil
}
