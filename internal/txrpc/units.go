package txrpc

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/lending-backend/internal/model"
)

// encodeAmount converts a user amount into contract units.
func encodeAmount(amount decimal.Decimal, decimals int) *big.Int {
	if amount.IsNegative() {
		return big.NewInt(0)
	}
	return model.ToBaseUnits(amount, decimals)
}

// encodeMaxAmount encodes an absent cap as zero, which the pool reads as
// "use the exact amount".
func encodeMaxAmount(maxAmount *decimal.Decimal, decimals int) *big.Int {
	if maxAmount == nil {
		return big.NewInt(0)
	}
	return encodeAmount(*maxAmount, decimals)
}

// encodeCollateralAmount encodes an absent amount as MaxUint256, which the
// pool reads as "all of it".
func encodeCollateralAmount(amount *decimal.Decimal, decimals int) *big.Int {
	if amount == nil {
		return new(big.Int).Set(math.MaxBig256)
	}
	return encodeAmount(*amount, decimals)
}
