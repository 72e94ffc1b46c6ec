package listing

import (
	"math/big"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain"
)

// Repo reads off-chain listing records from the listing api
type Repo interface {
	FindAll(ctx ctx.Ctx, filter Filter) (*Page, error)
	FindOne(ctx ctx.Ctx, id string) (*Listing, error)
	FindByAddresses(ctx ctx.Ctx, addresses []domain.Address) (*Page, error)
}

type OptionOverview struct {
	Reward     *big.Int
	TotalStake *big.Int
	IsSet      bool
}

type StakeInfo struct {
	Start  *big.Int
	Amount *big.Int
	Active bool
}

// ContractReader reads the per-listing contract deployed at address
type ContractReader interface {
	Ownership(ctx ctx.Ctx, address domain.Address) (*big.Int, error)
	Value(ctx ctx.Ctx, address domain.Address) (*big.Int, error)
	DailyPayment(ctx ctx.Ctx, address domain.Address) (*big.Int, error)
	Owner(ctx ctx.Ctx, address domain.Address) (domain.Address, error)
	Validator(ctx ctx.Ctx, address domain.Address) (domain.Address, error)
	TotalStake(ctx ctx.Ctx, address domain.Address) (*big.Int, error)
	Option(ctx ctx.Ctx, address domain.Address, optionId int) (*OptionOverview, error)
	Staking(ctx ctx.Ctx, address domain.Address, optionId int, stakeholder domain.Address) (*StakeInfo, error)
}

// UseCase merges listing api records with on-chain reads. Chain failures never escape: list
// reads fall back to off-chain data silently, single reads fall back and notify.
type UseCase interface {
	ListFiltered(ctx ctx.Ctx, filter Filter) (*Page, error)
	ListByAddresses(ctx ctx.Ctx, addresses []domain.Address) (*Page, error)
	GetOne(ctx ctx.Ctx, id string) (*Listing, error)
	GetOptionsWithStakes(ctx ctx.Ctx, l *Listing, stakeholder domain.Address) (*Listing, error)
}

// FilterStateRepo persists the last applied filter so a filter form can be rehydrated
type FilterStateRepo interface {
	Save(ctx ctx.Ctx, key string, filter Filter) error
	Get(ctx ctx.Ctx, key string) (*Filter, error)
	Remove(ctx ctx.Ctx, key string) error
}

type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notifier surfaces one-shot messages to whoever watches the current session
type Notifier interface {
	Notify(ctx ctx.Ctx, level NoticeLevel, message string)
}
