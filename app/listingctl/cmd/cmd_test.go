package cmd

import (
	"bytes"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/listing"
	"github.com/anft-xyz/goapi/domain/mocks"
)

const wallet = "0x939ae6A4C8dfDBB1f7085189574F0A938013952A"

func TestCommandStructure(t *testing.T) {
	for _, name := range []string{"list", "get", "options", "estimate"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, cmd)
			require.NotEmpty(t, cmd.Short)
		})
	}
}

func TestBuildFilter(t *testing.T) {
	f, err := buildFilter(listing.DefaultFilter(), "yetOwned", "")
	require.NoError(t, err)
	require.Equal(t, listing.LevelPrimary, f.Level)
	require.Empty(t, f.Owner)

	f, err = buildFilter(listing.DefaultFilter(), "owned", wallet)
	require.NoError(t, err)
	require.Equal(t, listing.LevelAll, f.Level)
	require.Equal(t, domain.Address(wallet).ToLowerStr(), f.Owner)

	_, err = buildFilter(listing.DefaultFilter(), "owned", "")
	require.ErrorIs(t, err, domain.ErrInvalidAddress)

	_, err = buildFilter(listing.DefaultFilter(), "mine", "")
	require.ErrorIs(t, err, domain.ErrInvalidFilter)

	bad := listing.DefaultFilter()
	bad.MiningFeeRange = "HUGE"
	_, err = buildFilter(bad, "", "")
	require.Error(t, err)
}

func TestPrintPage(t *testing.T) {
	l := &listing.Listing{Id: "1", Name: "house", Value: listing.Big(big.NewInt(1000000000000000000))}
	out := &bytes.Buffer{}
	require.NoError(t, printPage(out, &listing.Page{Results: []*listing.Listing{l}, Count: 3}, time.Unix(0, 0)))

	require.Contains(t, out.String(), "house")
	require.Contains(t, out.String(), "1.0000 ANFT")
	require.Contains(t, out.String(), "1 of 3")
}

func TestExpiry(t *testing.T) {
	now := time.Unix(1700000000, 0)
	l := &listing.Listing{}
	require.Equal(t, "_", expiry(l, now))

	l.Ownership = listing.Big(big.NewInt(now.Unix() - 1))
	require.Contains(t, expiry(l, now), "(expired)")

	l.Ownership = listing.Big(big.NewInt(now.Unix() + 3600))
	require.Contains(t, expiry(l, now), "(expiring)")
}

func execute(t *testing.T, m *mocks.ListingUseCase, args ...string) (string, error) {
	uc = m
	t.Cleanup(func() { uc = nil })

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGet(t *testing.T) {
	m := mocks.NewListingUseCase(t)
	m.On("GetOne", mock.Anything, "1").Return(&listing.Listing{Id: "1", Name: "house"}, nil).Once()

	out, err := execute(t, m, "get", "1")
	require.NoError(t, err)
	require.Contains(t, out, "house")
}

func TestEstimate(t *testing.T) {
	owner := domain.Address(wallet)
	l := &listing.Listing{
		Id:           "1",
		DailyPayment: listing.Big(big.NewInt(500000000000000000)),
		Ownership:    listing.Big(big.NewInt(time.Now().Unix() + 10*listing.SecondsPerDay)),
		Owner:        &owner,
	}
	m := mocks.NewListingUseCase(t)
	m.On("GetOne", mock.Anything, "1").Return(l, nil).Once()

	out, err := execute(t, m, "estimate", "1", "--amount", "1", "--viewer", wallet)
	require.NoError(t, err)
	require.Contains(t, out, "1.0000 ANFT")
	require.Contains(t, out, "valid owner    true")
}

func TestEstimateNoContract(t *testing.T) {
	m := mocks.NewListingUseCase(t)
	m.On("GetOne", mock.Anything, "2").Return(&listing.Listing{Id: "2"}, nil).Once()

	_, err := execute(t, m, "estimate", "2", "--amount", "1", "--viewer", "")
	require.ErrorIs(t, err, domain.ErrNoContract)
}
