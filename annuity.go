package paydown

import (
	"github.com/etnz/paydown/date"
	"github.com/shopspring/decimal"
)

// EqualInstallment returns the constant monthly installment that repays
// principal at the annual rate (in percent) over n months.
//
// A zero rate spreads the principal evenly, a non positive n returns the
// principal itself.
func EqualInstallment(principal, rate decimal.Decimal, n int) decimal.Decimal {
	return annuity(principal, rate, n, 1)
}

// annuity returns the installment of a loan repaid over n periods of
// 'months' months each.
func annuity(principal, rate decimal.Decimal, n, months int) decimal.Decimal {
	if n <= 0 {
		return principal
	}
	even := principal.Div(decimal.NewFromInt(int64(n)))
	if rate.IsZero() {
		return even
	}
	r := rate.Mul(decimal.NewFromInt(int64(months))).Div(twelve).Div(hundred)
	discount, err := decimal.NewFromInt(1).Add(r).PowInt32(-int32(n))
	if err != nil {
		return even
	}
	den := decimal.NewFromInt(1).Sub(discount)
	if den.Abs().LessThan(annuityEpsilon) {
		return even
	}
	return principal.Mul(r).Div(den)
}

// annuityEpsilon is the smallest discount denominator the formula divides by.
var annuityEpsilon = decimal.New(1, -10)

// Repricing is the outcome of a rate change on an amortizing loan.
type Repricing struct {
	Interest    decimal.Decimal // one month of interest at the old rate.
	Reduction   decimal.Decimal // principal repaid by the settling installment.
	Balance     decimal.Decimal // balance the new installment amortizes.
	Months      int             // months left until maturity.
	Installment decimal.Decimal // new installment.
}

// Reprice computes the installment after a rate change on 'on'.
//
// One installment is first settled against a month of interest at the old
// rate, then the remaining balance is amortized at the new rate over the
// months left until maturity. It returns an InsufficientPaymentError when the
// installment does not cover that interest.
func Reprice(balance, installment, oldRate, newRate decimal.Decimal, on, maturity date.Date) (Repricing, error) {
	switch {
	case !balance.IsPositive():
		return Repricing{}, invalidf("balance must be positive, got %s", balance)
	case !installment.IsPositive():
		return Repricing{}, invalidf("installment must be positive, got %s", installment)
	case oldRate.IsNegative() || newRate.IsNegative():
		return Repricing{}, invalidf("rates must not be negative, got %s and %s", oldRate, newRate)
	}

	interest := balance.Mul(oldRate).Div(twelve).Div(hundred)
	reduction := installment.Sub(interest)
	if reduction.IsNegative() {
		return Repricing{}, &InsufficientPaymentError{On: on, Installment: installment, Interest: interest}
	}
	p := Repricing{
		Interest:  interest,
		Reduction: reduction,
		Balance:   balance.Sub(reduction),
		Months:    date.MonthsBetween(on, maturity),
	}
	if p.Months <= 0 {
		p.Installment = balance
		return p, nil
	}
	if !p.Balance.IsPositive() {
		p.Balance, p.Installment = decimal.Zero, decimal.Zero
		return p, nil
	}
	p.Installment = EqualInstallment(p.Balance, newRate, p.Months)
	return p, nil
}
