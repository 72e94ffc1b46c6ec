package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ListingABI is the per-listing contract. Only the read methods are called from this service.
var ListingABI abi.ABI

func init() {
	_abi, err := abi.JSON(strings.NewReader(listingABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	ListingABI = _abi
}

// OptionResult mirrors the outputs of options(uint256)
type OptionResult struct {
	Reward     *big.Int `abi:"_reward"`
	TotalStake *big.Int `abi:"_totalStake"`
	IsSet      bool     `abi:"_isSet"`
}

// StakingResult mirrors the outputs of stakings(uint256,address)
type StakingResult struct {
	Start  *big.Int `abi:"_start"`
	Amount *big.Int `abi:"_amount"`
	Active bool     `abi:"_active"`
}

// ToOptionResult copies the unpacked outputs of options(uint256)
func ToOptionResult(values []interface{}) (*OptionResult, error) {
	res := &OptionResult{}
	if err := ListingABI.Methods["options"].Outputs.Copy(res, values); err != nil {
		return nil, err
	}
	return res, nil
}

// ToStakingResult copies the unpacked outputs of stakings(uint256,address)
func ToStakingResult(values []interface{}) (*StakingResult, error) {
	res := &StakingResult{}
	if err := ListingABI.Methods["stakings"].Outputs.Copy(res, values); err != nil {
		return nil, err
	}
	return res, nil
}

var listingABIJson = `
[
  {
    "inputs": [],
    "name": "ownership",
    "outputs": [
      {
        "internalType": "uint256",
        "name": "",
        "type": "uint256"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "value",
    "outputs": [
      {
        "internalType": "uint256",
        "name": "",
        "type": "uint256"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "dailyPayment",
    "outputs": [
      {
        "internalType": "uint256",
        "name": "",
        "type": "uint256"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "owner",
    "outputs": [
      {
        "internalType": "address",
        "name": "",
        "type": "address"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "validator",
    "outputs": [
      {
        "internalType": "address",
        "name": "",
        "type": "address"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "totalStake",
    "outputs": [
      {
        "internalType": "uint256",
        "name": "",
        "type": "uint256"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {
        "internalType": "uint256",
        "name": "",
        "type": "uint256"
      }
    ],
    "name": "options",
    "outputs": [
      {
        "internalType": "uint256",
        "name": "_reward",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "_totalStake",
        "type": "uint256"
      },
      {
        "internalType": "bool",
        "name": "_isSet",
        "type": "bool"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {
        "internalType": "uint256",
        "name": "",
        "type": "uint256"
      },
      {
        "internalType": "address",
        "name": "",
        "type": "address"
      }
    ],
    "name": "stakings",
    "outputs": [
      {
        "internalType": "uint256",
        "name": "_start",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "_amount",
        "type": "uint256"
      },
      {
        "internalType": "bool",
        "name": "_active",
        "type": "bool"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {
        "internalType": "uint256",
        "name": "_amount",
        "type": "uint256"
      }
    ],
    "name": "extendOwnership",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  }
]
`
