package paydown

import (
	"github.com/etnz/paydown/date"
	"github.com/shopspring/decimal"
)

// repriceThreshold is the smallest rate move that reprices the standing installment.
var repriceThreshold = decimal.RequireFromString("0.001")

// accumulator is the state threaded through the steps of a journal.
type accumulator struct {
	principal     decimal.Decimal // outstanding balance.
	standing      decimal.Decimal // installment of the projected due dates.
	mark          date.Date       // last day interest was settled.
	latestPayment date.Date

	interest   decimal.Decimal
	reductions decimal.Decimal
	fees       decimal.Decimal
	unpaid     decimal.Decimal // interest accrued on the ending step.
	days       int

	annual map[int]AnnualSummary
	log    []Entry
	done   bool
}

func (a *accumulator) book(on date.Date, reduction, interest, fee decimal.Decimal) {
	s := a.annual[on.Year()]
	s.Principal = s.Principal.Add(reduction)
	s.Interest = s.Interest.Add(interest)
	s.Fees = s.Fees.Add(fee)
	a.annual[on.Year()] = s
}

// open returns the accumulator before any step: the principal is disbursed
// and the initial fee paid on the start date.
func (c *calculation) open() *accumulator {
	t := c.journal.terms
	a := &accumulator{
		principal: t.Principal,
		mark:      t.Start,
		fees:      t.InitialFee,
		annual:    make(map[int]AnnualSummary),
	}
	if t.Recurring != nil {
		months := t.Recurring.Frequency.Months()
		a.standing = annuity(t.Principal, t.Rate, date.MonthsBetween(t.Start, t.End)/months, months)
		c.log.Debug("standing installment", "installment", a.standing)
	}
	a.book(t.Start, decimal.Zero, decimal.Zero, t.InitialFee)
	a.log = append(a.log, Entry{
		Date:      t.Start,
		Kind:      StartEntry,
		Rate:      t.Rate,
		Principal: t.Principal,
		Fee:       t.InitialFee,
	})
	return a
}

// apply folds one step into the accumulator.
func (c *calculation) apply(a *accumulator, s step) error {
	t := c.journal.terms

	reprice := false
	if s.rate != nil {
		old := c.accrual.rateAt(s.on.Add(-1))
		reprice = t.Recurring != nil && s.recurring == nil && s.rate.Sub(old).Abs().GreaterThan(repriceThreshold)
		a.log = append(a.log, Entry{
			Date:      s.on,
			Kind:      RateEntry,
			Rate:      *s.rate,
			Principal: a.principal,
		})
	}
	if s.recurring != nil {
		a.standing = *s.recurring
		c.log.Debug("standing installment", "on", s.on, "installment", a.standing)
	}
	fee := decimal.Zero
	if s.fee != nil {
		fee = *s.fee
		a.fees = a.fees.Add(fee)
		a.book(s.on, decimal.Zero, decimal.Zero, fee)
	}

	if s.pays() {
		if err := c.pay(a, s); err != nil {
			return err
		}
	}
	if s.fee != nil && (s.pays() || !s.ending) {
		a.log = append(a.log, Entry{
			Date:      s.on,
			Kind:      FeeEntry,
			Rate:      c.accrual.rateAt(s.on),
			Principal: a.principal,
			Fee:       fee,
		})
	}
	if a.done {
		return nil
	}
	if reprice {
		a.standing = c.reprice(a.principal, *s.rate, s.on)
	}

	if s.ending {
		if !s.pays() {
			if err := c.close(a, s, fee); err != nil {
				return err
			}
		}
		a.done = true
	}
	return nil
}

// pay applies the installment due on s: the interest accrued since the last
// mark is settled first, the rest reduces the principal.
func (c *calculation) pay(a *accumulator, s step) error {
	interest, days := decimal.Zero, 0
	if s.on != a.mark {
		r := date.NewRange(a.mark.Add(1), s.on)
		var err error
		if interest, err = c.accrual.accrue(a.principal, r); err != nil {
			return err
		}
		days = r.Days()
	}
	a.days += days

	var installment decimal.Decimal
	switch {
	case s.payment != nil:
		installment = s.payment.Amount
	case s.ending:
		// Maturity settles the whole balance.
		installment = interest.Add(a.principal)
	default:
		installment = a.standing
	}

	reduction := decimal.Zero
	if !installment.IsZero() {
		reduction = installment.Sub(interest)
	}
	if reduction.IsNegative() {
		return &InsufficientPaymentError{On: s.on, Installment: installment, Interest: interest}
	}

	a.principal = a.principal.Sub(reduction)
	if !a.principal.IsPositive() {
		// Paid off: only the balance is due.
		reduction = reduction.Add(a.principal)
		installment = reduction.Add(interest)
		a.principal = decimal.Zero
		a.done = true
	}
	a.interest = a.interest.Add(interest)
	a.reductions = a.reductions.Add(reduction)
	a.mark = s.on
	a.latestPayment = s.on
	a.book(s.on, reduction, interest, decimal.Zero)

	e := Entry{
		Date:        s.on,
		Kind:        PaymentEntry,
		Rate:        c.accrual.rateAt(s.on),
		Installment: installment,
		Reduction:   reduction,
		Interest:    interest,
		Principal:   a.principal,
		Days:        days,
	}
	if p := s.payment; p != nil {
		e.Paid = !p.Simulated
		e.Simulated = p.Simulated
		e.Early = p.IsEarly()
	}
	a.log = append(a.log, e)
	if a.done {
		c.log.Debug("loan paid off", "on", s.on)
	}
	return nil
}

// close accrues the interest left unpaid from the last payment to maturity.
func (c *calculation) close(a *accumulator, s step, fee decimal.Decimal) error {
	r := date.NewRange(a.mark.Add(1), s.on)
	unpaid, err := c.accrual.accrue(a.principal, r)
	if err != nil {
		return err
	}
	a.days += r.Days()
	a.unpaid = unpaid
	a.interest = a.interest.Add(unpaid)
	a.mark = s.on
	a.book(s.on, decimal.Zero, unpaid, decimal.Zero)
	a.log = append(a.log, Entry{
		Date:      s.on,
		Kind:      EndingEntry,
		Rate:      c.accrual.rateAt(s.on),
		Interest:  unpaid,
		Principal: a.principal,
		Fee:       fee,
		Days:      r.Days(),
	})
	return nil
}

// reprice returns the installment amortizing balance at rate from 'on' to maturity.
func (c *calculation) reprice(balance, rate decimal.Decimal, on date.Date) decimal.Decimal {
	t := c.journal.terms
	months := t.Recurring.Frequency.Months()
	n := date.MonthsBetween(on, t.End) / months
	installment := annuity(balance, rate, n, months)
	c.log.Debug("repriced installment", "on", on, "rate", rate, "balance", balance, "months", n*months, "installment", installment)
	return installment
}
