package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestListingABIMethods(t *testing.T) {
	req := require.New(t)
	for _, m := range []string{"ownership", "value", "dailyPayment", "owner", "validator", "totalStake", "options", "stakings"} {
		method, ok := ListingABI.Methods[m]
		req.True(ok, m)
		req.True(method.IsConstant(), m)
	}
	_, err := ListingABI.Pack("stakings", big.NewInt(1), common.HexToAddress("0x01"))
	req.NoError(err)
}

func TestToOptionResult(t *testing.T) {
	req := require.New(t)
	out, err := ListingABI.Methods["options"].Outputs.Pack(big.NewInt(5), big.NewInt(100), true)
	req.NoError(err)
	values, err := ListingABI.Unpack("options", out)
	req.NoError(err)

	res, err := ToOptionResult(values)
	req.NoError(err)
	req.Equal(int64(5), res.Reward.Int64())
	req.Equal(int64(100), res.TotalStake.Int64())
	req.True(res.IsSet)
}

func TestToStakingResult(t *testing.T) {
	req := require.New(t)
	out, err := ListingABI.Methods["stakings"].Outputs.Pack(big.NewInt(1650000000), big.NewInt(42), false)
	req.NoError(err)
	values, err := ListingABI.Unpack("stakings", out)
	req.NoError(err)

	res, err := ToStakingResult(values)
	req.NoError(err)
	req.Equal(int64(1650000000), res.Start.Int64())
	req.Equal(int64(42), res.Amount.Int64())
	req.False(res.Active)
}
