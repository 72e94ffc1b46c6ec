package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"
)

type ChainId int32

const (
	ChainIdBsc        ChainId = 56
	ChainIdBscTestnet ChainId = 97
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) IsValid() bool {
	return common.IsHexAddress(string(a))
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

// ToAddress normalizes a 20 byte address read from chain
func ToAddress(a common.Address) Address {
	return Address(a.Hex()).ToLower()
}

// ParseAddress validates s and returns it lower-cased
func ParseAddress(s string) (Address, error) {
	a := Address(strings.TrimSpace(s))
	if !a.IsValid() {
		return "", xerrors.Errorf("%q: %w", s, ErrInvalidAddress)
	}
	return a.ToLower(), nil
}
