package paydown

import (
	"log/slog"

	"github.com/etnz/paydown/date"
	"github.com/shopspring/decimal"
)

// accrual computes the interest of consecutive periods. It keeps its own
// running day count and interest sum, checked against the engine totals once
// the schedule is complete.
type accrual struct {
	journal  *Journal
	dayCount DayCount
	rates    *date.History[decimal.Decimal]
	log      *slog.Logger

	last     date.Date // last day already accrued.
	days     int
	interest decimal.Decimal
}

func newAccrual(j *Journal, log *slog.Logger) *accrual {
	return &accrual{
		journal:  j,
		dayCount: j.terms.DayCount,
		rates:    &j.rates,
		log:      log,
		last:     j.terms.Start,
	}
}

// rateAt returns the rate in force on day.
func (a *accrual) rateAt(day date.Date) decimal.Decimal { return a.journal.RateAsOf(day) }

// accrue returns the interest on principal over r. A rate change inside r
// splits it in subperiods, each accrued at the rate in force on its first day.
// r must start the day after the previous accrued period.
func (a *accrual) accrue(principal decimal.Decimal, r date.Range) (decimal.Decimal, error) {
	if r.From != a.last.Add(1) {
		return decimal.Zero, invariantf("accrual period %s does not follow %s", r, a.last)
	}
	if r.To.Before(r.From) {
		return decimal.Zero, invariantf("accrual period %s is empty", r)
	}
	a.log.Debug("accrual period", "from", r.From, "to", r.To, "principal", principal)

	var cuts []date.Date
	for on := range a.rates.Within(date.NewRange(r.From.Add(1), r.To)) {
		cuts = append(cuts, on)
	}
	sum := decimal.Zero
	for _, sub := range r.Split(cuts...) {
		n := sub.Days()
		rate := a.rateAt(sub.From)
		interest := a.dayCount.Interest(principal, rate, n)
		if len(cuts) > 0 {
			a.log.Debug("accrual subperiod", "from", sub.From, "to", sub.To, "days", n, "rate", rate, "interest", interest)
		}
		sum = sum.Add(interest)
		a.days += n
	}
	a.last = r.To
	a.interest = a.interest.Add(sum)
	return sum, nil
}
