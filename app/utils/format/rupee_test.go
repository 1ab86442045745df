package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRupee(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{1255, "₹1,255"},
		{100, "₹100"},
		{0, "₹0"},
		{250000, "₹250,000"},
	}
	for _, c := range cases {
		if got := Rupee(decimal.NewFromInt(c.amount)); got != c.want {
			t.Fatalf("Rupee(%d): expected %q, got %q", c.amount, c.want, got)
		}
	}
}
