package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/anft-xyz/goapi/base/ctx"
)

var optionsStakeholder string

var optionsCmd = &cobra.Command{
	Use:   "options <id>",
	Short: "Show the investment options of a listing and the stakes of a wallet",
	Args:  cobra.ExactArgs(1),
	RunE:  runOptions,
}

func init() {
	optionsCmd.Flags().StringVar(&optionsStakeholder, "stakeholder", "", "wallet address whose stakes are read")
}

func runOptions(cmd *cobra.Command, args []string) error {
	stakeholder, err := parseAddress(optionsStakeholder)
	if err != nil {
		return err
	}

	c := ctx.Background()
	l, err := uc.GetOne(c, args[0])
	if err != nil {
		return err
	}
	l, err = uc.GetOptionsWithStakes(c, l, stakeholder)
	if err != nil {
		return err
	}
	if asJson {
		return printJson(cmd.OutOrStdout(), l)
	}
	return printListing(cmd.OutOrStdout(), l, time.Now())
}
