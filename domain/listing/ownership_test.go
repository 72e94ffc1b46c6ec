package listing

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anft-xyz/goapi/domain"
)

func TestIsExpired(t *testing.T) {
	req := require.New(t)
	ownership := int64(1700000000)
	for _, delta := range []int64{-86400 * 365, -3600, -1} {
		req.False(IsExpired(ownership, time.Unix(ownership+delta, 0)), delta)
	}
	for _, delta := range []int64{0, 1, 86400 * 365} {
		req.True(IsExpired(ownership, time.Unix(ownership+delta, 0)), delta)
	}
}

func TestIsAboutToExpire(t *testing.T) {
	req := require.New(t)
	ownership := int64(1700000000)
	req.False(IsAboutToExpire(ownership, time.Unix(ownership-SecondsPerDay-1, 0)))
	req.True(IsAboutToExpire(ownership, time.Unix(ownership-SecondsPerDay, 0)))
	req.True(IsAboutToExpire(ownership, time.Unix(ownership+10, 0)))
}

func TestEstimateOwnership(t *testing.T) {
	req := require.New(t)
	now := time.Unix(1700000000, 0)
	current := big.NewInt(now.Unix() + 3600)

	req.Equal(current.Int64()+172800, EstimateOwnership(big.NewInt(100), big.NewInt(50), current, now))

	expired := big.NewInt(now.Unix() - 3600)
	req.Equal(now.Unix()+172800, EstimateOwnership(big.NewInt(100), big.NewInt(50), expired, now))

	// floor division
	req.Equal(current.Int64()+28800, EstimateOwnership(big.NewInt(1), big.NewInt(3), current, now))

	req.Equal(current.Int64(), EstimateOwnership(big.NewInt(100), big.NewInt(0), current, now))
	req.Equal(now.Unix(), EstimateOwnership(big.NewInt(100), nil, nil, now))
}

func TestFormatUnixDate(t *testing.T) {
	req := require.New(t)
	ts := time.Date(2022, 6, 3, 9, 5, 0, 0, time.UTC).Unix()
	req.Equal("09:05 - 03/06/22", FormatUnixDate(ts, nil))

	hcm := time.FixedZone("ICT", 7*3600)
	req.Equal("16:05 - 03/06/22", FormatUnixDate(ts, hcm))
	req.Equal("16:05 - 03/06/22", EstimateOwnershipDate(big.NewInt(0), big.NewInt(1), big.NewInt(ts), time.Unix(ts-1, 0), hcm))
}

func TestEstimateWithdrawAmount(t *testing.T) {
	req := require.New(t)
	now := time.Unix(1700000000, 0)
	oneToken, _ := new(big.Int).SetString("1000000000000000000", 10)

	req.Equal("0.5", EstimateWithdrawAmount(oneToken, now.Unix()+43200, now).String())
	req.Equal("2", EstimateWithdrawAmount(oneToken, now.Unix()+2*SecondsPerDay, now).String())
	req.True(EstimateWithdrawAmount(oneToken, now.Unix(), now).IsZero())
	req.True(EstimateWithdrawAmount(oneToken, now.Unix()-5, now).IsZero())
}

func TestSpendingAndExtendPrice(t *testing.T) {
	req := require.New(t)
	daily := big.NewInt(86400)
	req.Equal(int64(3600), SpendingFromSeconds(daily, 3600).Int64())
	req.Equal(int64(0), SpendingFromSeconds(daily, -1).Int64())

	now := time.Unix(1700000000, 0)
	req.Equal(int64(2*86400), ExtendPrice(daily, 2, now, now).Int64())
	req.Equal(int64(2*86400+7200), ExtendPrice(daily, 2, now.Add(2*time.Hour), now).Int64())
	req.Equal(int64(0), ExtendPrice(daily, 0, now, now).Int64())
}

func TestValidateOwnership(t *testing.T) {
	req := require.New(t)
	now := time.Unix(1700000000, 0)
	owner := domain.Address("0xAbC0000000000000000000000000000000000001")
	l := &Listing{
		Owner:     &owner,
		Ownership: Big(big.NewInt(now.Unix() + 10)),
	}

	req.True(ValidateOwnership(owner.ToLower(), l, now))
	req.False(ValidateOwnership("0x0000000000000000000000000000000000000002", l, now))
	req.False(ValidateOwnership("", l, now))
	req.False(ValidateOwnership(owner, l, now.Add(time.Minute)))
	req.False(ValidateOwnership(owner, &Listing{Owner: &owner}, now))
	req.False(ValidateOwnership(owner, &Listing{Ownership: l.Ownership}, now))
	req.False(ValidateOwnership(owner, nil, now))
}

func TestDateDifference(t *testing.T) {
	req := require.New(t)
	a := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	req.Equal(0, DateDifference(a, a.Add(23*time.Hour)))
	req.Equal(3, DateDifference(a, a.Add(75*time.Hour)))
	req.Equal(3, DateDifference(a.Add(75*time.Hour), a))
}
