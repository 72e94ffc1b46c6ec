package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// Register adds custom tags to a validator
type Register func(v *validator.Validate) error

// New returns a validator with an "address" tag and the tags of every register
func New(registers ...Register) (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	}); err != nil {
		return nil, err
	}
	for _, r := range registers {
		if err := r(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
