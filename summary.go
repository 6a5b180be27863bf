package paydown

import (
	"github.com/shopspring/decimal"
)

// remainingTolerance is the largest balance left at the end of a schedule
// that is not worth a warning.
var remainingTolerance = decimal.RequireFromString("0.01")

// finalize turns the accumulator into a Result, rounded unless the terms ask
// for exact values.
func (c *calculation) finalize(a *accumulator) *Result {
	r := &Result{
		Interest:       a.interest,
		Reductions:     a.reductions,
		Installments:   a.interest.Add(a.reductions).Sub(a.unpaid),
		Remaining:      a.principal,
		Days:           a.days,
		ActualEnd:      a.mark,
		LatestPayment:  a.latestPayment,
		UnpaidInterest: a.unpaid,
		InterestPaid:   decimal.Zero,
		Fees:           a.fees,
		Annual:         a.annual,
		Log:            a.log,
	}
	for _, e := range a.log {
		if e.Paid {
			r.InterestPaid = r.InterestPaid.Add(e.Interest)
		}
	}

	if r.Remaining.Abs().GreaterThan(remainingTolerance) {
		c.log.Warn("loan not fully repaid", "remaining", r.Remaining.StringFixed(2), "on", r.ActualEnd)
	}
	if r.InterestPaid.IsNegative() {
		c.log.Warn("negative interest paid", "interest", r.InterestPaid)
	}

	if !c.journal.terms.Exact {
		r.round()
	}
	return r
}
