package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount displayed in a currency.
type Money struct {
	value decimal.Decimal
	cur   string
}

// NewMoney returns value in the currency cur (an ISO 4217 code). Unknown or
// empty currencies are displayed as plain numbers.
func NewMoney(value decimal.Decimal, cur string) Money { return Money{value: value, cur: cur} }

// String returns the amount rounded to the currency fraction, with its symbol.
func (m Money) String() string {
	c := money.GetCurrency(m.cur)
	if c == nil {
		return m.value.StringFixed(2)
	}
	return money.New(m.value.Shift(int32(c.Fraction)).Round(0).IntPart(), c.Code).Display()
}

// Cell returns the amount for a table cell, empty when zero.
func (m Money) Cell() string {
	if m.IsZero() {
		return ""
	}
	return m.String()
}

func (m Money) IsZero() bool { return m.value.Round(2).IsZero() }
