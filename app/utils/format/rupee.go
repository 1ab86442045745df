package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var rupee = accounting.Accounting{Symbol: "₹", Precision: 0, Thousand: ","}

// Rupee renders a decimal amount as display currency, e.g. "₹1,255".
func Rupee(amount decimal.Decimal) string {
	return rupee.FormatMoneyDecimal(amount)
}
