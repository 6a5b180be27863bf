package paydown

import (
	"fmt"

	"github.com/etnz/paydown/date"
	"github.com/shopspring/decimal"
)

// LoanTerms describes a loan as contracted.
type LoanTerms struct {
	Start     date.Date       // disbursement date, carries no interest.
	End       date.Date       // maturity.
	Principal decimal.Decimal // amount borrowed.
	Rate      decimal.Decimal // initial annual rate in percent.
	DayCount  DayCount

	// Recurring is the installment schedule, nil when only recorded payments
	// amortize the loan.
	Recurring *Recurring

	InitialFee decimal.Decimal // paid at Start.

	// Exact disables the two-decimal rounding of the Result.
	Exact bool

	Currency string // ISO 4217 code, for display only.
}

// Recurring describes the due dates of the installments.
type Recurring struct {
	FirstPayment date.Date
	PaymentDay   int         // day of month of the following due dates.
	Frequency    date.Period // Monthly when zero.
}

// Validate checks the terms are consistent. It returns an error wrapping
// ErrInputValidation or ErrEventOrdering.
func (t LoanTerms) Validate() error {
	if t.Start.IsZero() {
		return invalidf("missing start date")
	}
	if t.End.IsZero() {
		return invalidf("missing end date")
	}
	if !t.End.After(t.Start) {
		return invalidf("end date %s must be after start date %s", t.End, t.Start)
	}
	if !t.Principal.IsPositive() {
		return invalidf("principal must be positive, got %s", t.Principal)
	}
	if t.Rate.IsNegative() {
		return invalidf("rate must not be negative, got %s", t.Rate)
	}
	if t.InitialFee.IsNegative() {
		return invalidf("initial fee must not be negative, got %s", t.InitialFee)
	}
	if t.DayCount != Act360 && t.DayCount != Act365 {
		return invalidf("unknown day count method %d", int(t.DayCount))
	}
	if t.Recurring != nil {
		if err := t.Recurring.validate(t.Start); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recurring) validate(start date.Date) error {
	if r.FirstPayment.IsZero() {
		return invalidf("missing first payment date")
	}
	if r.PaymentDay < 1 || r.PaymentDay > 31 {
		return invalidf("payment day must be within 1 and 31, got %d", r.PaymentDay)
	}
	if r.Frequency < date.Monthly || r.Frequency > date.Yearly {
		return invalidf("unknown payment frequency %d", int(r.Frequency))
	}
	if !r.FirstPayment.After(start) {
		return fmt.Errorf("%w: first payment date %s is not after start date %s", ErrEventOrdering, r.FirstPayment, start)
	}
	return nil
}

// Dates returns the due dates from the first payment until 'until', each
// shifted off weekends. Due dates on or before paidUntil are left out, a zero
// paidUntil keeps them all.
func (r Recurring) Dates(until, paidUntil date.Date) []date.Date {
	var dates []date.Date
	for due := r.FirstPayment; !due.After(until); due = due.AddMonths(r.Frequency.Months(), r.PaymentDay) {
		if !paidUntil.IsZero() && !due.After(paidUntil) {
			continue
		}
		dates = append(dates, due.SkipWeekend())
	}
	return dates
}
