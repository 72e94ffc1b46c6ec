package domain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
)

// EthClientRepo is the part of go-ethereum/ethclient this service reads through
type EthClientRepo interface {
	BlockNumber(context.Context) (uint64, error)
	CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error)
}
