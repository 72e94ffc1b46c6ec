package contract

import (
	"fmt"
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/anft-xyz/goapi/base/abi"
	bCtx "github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/listing"
	"github.com/anft-xyz/goapi/service/chain"
)

// Listing reads the per-listing contracts of one chain
type Listing struct {
	chainService chain.Client
	chainId      int32
	abi          ethabi.ABI
}

func NewListing(chainService chain.Client, chainId domain.ChainId) listing.ContractReader {
	return &Listing{
		chainService: chainService,
		chainId:      int32(chainId),
		abi:          baseabi.ListingABI,
	}
}

func (l *Listing) call(ctx bCtx.Ctx, addr domain.Address, method string, params ...interface{}) ([]interface{}, error) {
	unpacked, err := l.chainService.Call(ctx, l.chainId, addr.ToCommon(), nil, l.abi, method, params...)
	if err != nil {
		return nil, err
	}
	if len(unpacked) == 0 {
		return nil, fmt.Errorf("%s: empty result", method)
	}
	return unpacked, nil
}

func (l *Listing) uint(ctx bCtx.Ctx, addr domain.Address, method string) (*big.Int, error) {
	unpacked, err := l.call(ctx, addr, method)
	if err != nil {
		return nil, err
	}
	v, ok := unpacked[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected type %T", method, unpacked[0])
	}
	return v, nil
}

func (l *Listing) address(ctx bCtx.Ctx, addr domain.Address, method string) (domain.Address, error) {
	unpacked, err := l.call(ctx, addr, method)
	if err != nil {
		return "", err
	}
	v, ok := unpacked[0].(common.Address)
	if !ok {
		return "", fmt.Errorf("%s: unexpected type %T", method, unpacked[0])
	}
	return domain.ToAddress(v), nil
}

func (l *Listing) Ownership(ctx bCtx.Ctx, addr domain.Address) (*big.Int, error) {
	return l.uint(ctx, addr, "ownership")
}

func (l *Listing) Value(ctx bCtx.Ctx, addr domain.Address) (*big.Int, error) {
	return l.uint(ctx, addr, "value")
}

func (l *Listing) DailyPayment(ctx bCtx.Ctx, addr domain.Address) (*big.Int, error) {
	return l.uint(ctx, addr, "dailyPayment")
}

func (l *Listing) TotalStake(ctx bCtx.Ctx, addr domain.Address) (*big.Int, error) {
	return l.uint(ctx, addr, "totalStake")
}

func (l *Listing) Owner(ctx bCtx.Ctx, addr domain.Address) (domain.Address, error) {
	return l.address(ctx, addr, "owner")
}

func (l *Listing) Validator(ctx bCtx.Ctx, addr domain.Address) (domain.Address, error) {
	return l.address(ctx, addr, "validator")
}

func (l *Listing) Option(ctx bCtx.Ctx, addr domain.Address, optionId int) (*listing.OptionOverview, error) {
	unpacked, err := l.call(ctx, addr, "options", big.NewInt(int64(optionId)))
	if err != nil {
		return nil, err
	}
	res, err := baseabi.ToOptionResult(unpacked)
	if err != nil {
		return nil, err
	}
	return &listing.OptionOverview{
		Reward:     res.Reward,
		TotalStake: res.TotalStake,
		IsSet:      res.IsSet,
	}, nil
}

func (l *Listing) Staking(ctx bCtx.Ctx, addr domain.Address, optionId int, stakeholder domain.Address) (*listing.StakeInfo, error) {
	unpacked, err := l.call(ctx, addr, "stakings", big.NewInt(int64(optionId)), stakeholder.ToCommon())
	if err != nil {
		return nil, err
	}
	res, err := baseabi.ToStakingResult(unpacked)
	if err != nil {
		return nil, err
	}
	return &listing.StakeInfo{
		Start:  res.Start,
		Amount: res.Amount,
		Active: res.Active,
	}, nil
}
