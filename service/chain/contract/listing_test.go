package contract

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/anft-xyz/goapi/base/abi"
	bCtx "github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/service/chain/mocks"
)

const (
	listingAddr = domain.Address("0x71c4658acc7b53ee814a29ce31100ff85ca23ca7")
	holderAddr  = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
)

type listingContractSuite struct {
	suite.Suite

	ctx    bCtx.Ctx
	client *mocks.Client
	reader *Listing
}

func (s *listingContractSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.client = &mocks.Client{}
	s.reader = NewListing(s.client, domain.ChainIdBscTestnet).(*Listing)
}

func (s *listingContractSuite) TearDownTest() {
	s.client.AssertExpectations(s.T())
}

func (s *listingContractSuite) expect(method string, ret []interface{}, err error, params ...interface{}) {
	args := []interface{}{mock.Anything, int32(97), listingAddr.ToCommon(), (*big.Int)(nil), mock.Anything, method}
	args = append(args, params...)
	s.client.On("Call", args...).Return(ret, err).Once()
}

func (s *listingContractSuite) unpack(method string, values ...interface{}) []interface{} {
	data, err := baseabi.ListingABI.Methods[method].Outputs.Pack(values...)
	s.Require().NoError(err)
	out, err := baseabi.ListingABI.Unpack(method, data)
	s.Require().NoError(err)
	return out
}

func (s *listingContractSuite) TestUints() {
	s.expect("ownership", s.unpack("ownership", big.NewInt(1700000000)), nil)
	s.expect("value", s.unpack("value", big.NewInt(5)), nil)
	s.expect("dailyPayment", s.unpack("dailyPayment", big.NewInt(7)), nil)
	s.expect("totalStake", s.unpack("totalStake", big.NewInt(11)), nil)

	v, err := s.reader.Ownership(s.ctx, listingAddr)
	s.NoError(err)
	s.Equal(int64(1700000000), v.Int64())
	v, err = s.reader.Value(s.ctx, listingAddr)
	s.NoError(err)
	s.Equal(int64(5), v.Int64())
	v, err = s.reader.DailyPayment(s.ctx, listingAddr)
	s.NoError(err)
	s.Equal(int64(7), v.Int64())
	v, err = s.reader.TotalStake(s.ctx, listingAddr)
	s.NoError(err)
	s.Equal(int64(11), v.Int64())
}

func (s *listingContractSuite) TestAddresses() {
	owner := common.HexToAddress("0x939ae6A4C8dfDBB1f7085189574F0A938013952A")
	s.expect("owner", s.unpack("owner", owner), nil)
	s.expect("validator", s.unpack("validator", common.Address{}), nil)

	a, err := s.reader.Owner(s.ctx, listingAddr)
	s.NoError(err)
	s.Equal(holderAddr, a)
	a, err = s.reader.Validator(s.ctx, listingAddr)
	s.NoError(err)
	s.Equal(domain.EmptyAddress, a)
}

func (s *listingContractSuite) TestOption() {
	s.expect("options", s.unpack("options", big.NewInt(100), big.NewInt(40), true), nil, big.NewInt(2))

	o, err := s.reader.Option(s.ctx, listingAddr, 2)
	s.NoError(err)
	s.Equal(int64(100), o.Reward.Int64())
	s.Equal(int64(40), o.TotalStake.Int64())
	s.True(o.IsSet)
}

func (s *listingContractSuite) TestStaking() {
	s.expect("stakings", s.unpack("stakings", big.NewInt(1600000000), big.NewInt(25), false), nil, big.NewInt(0), holderAddr.ToCommon())

	st, err := s.reader.Staking(s.ctx, listingAddr, 0, holderAddr)
	s.NoError(err)
	s.Equal(int64(1600000000), st.Start.Int64())
	s.Equal(int64(25), st.Amount.Int64())
	s.False(st.Active)
}

func (s *listingContractSuite) TestFailures() {
	s.expect("value", nil, errors.New("execution reverted"))
	_, err := s.reader.Value(s.ctx, listingAddr)
	s.EqualError(err, "execution reverted")

	s.expect("owner", []interface{}{}, nil)
	_, err = s.reader.Owner(s.ctx, listingAddr)
	s.Error(err)

	s.expect("dailyPayment", []interface{}{"7"}, nil)
	_, err = s.reader.DailyPayment(s.ctx, listingAddr)
	s.Error(err)
}

func TestListingContract(t *testing.T) {
	suite.Run(t, new(listingContractSuite))
}
