package calc

import "github.com/shopspring/decimal"

// Order money rules: 5% tax rounded to the rupee, flat ₹100 shipping under
// the ₹2000 free-shipping threshold.
var (
	taxPercent            = decimal.NewFromInt(5)
	flatShippingCost      = decimal.NewFromInt(100)
	freeShippingThreshold = decimal.NewFromInt(2000)
)

func GetTaxPercent() decimal.Decimal {
	return taxPercent
}

// CalculateTax returns round(subtotal * 5%), rounded to whole rupees.
func CalculateTax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(taxPercent).Div(decimal.NewFromInt(100)).Round(0)
}

// CalculateShipping is the flat cost below the threshold, free at or above it.
func CalculateShipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.LessThan(freeShippingThreshold) {
		return flatShippingCost
	}
	return decimal.Zero
}

func CalculateGrandTotal(subtotal, shipping, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Add(shipping).Add(tax)
}
