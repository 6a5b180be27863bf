package paydown

import (
	"strings"

	"github.com/etnz/paydown/date"
	"github.com/shopspring/decimal"
)

// Event is a fact that alters the schedule of a loan on a given date.
//
// The set of events is closed: Payment, RateChange, Fee and RecurringAmount.
type Event interface {
	// When returns the date the event takes effect.
	When() date.Date
	// Validate checks the amounts of the event.
	Validate() error

	mergeInto(s *step)
}

// Payment is an installment actually recorded on a date. It replaces the
// projected installment of that date.
type Payment struct {
	On     date.Date
	Amount decimal.Decimal
	// Simulated payments are applied but not counted as paid.
	Simulated bool
	Title     string
}

func (e Payment) When() date.Date { return e.On }

func (e Payment) Validate() error {
	if !e.Amount.IsPositive() {
		return invalidf("payment on %s must be positive, got %s", e.On, e.Amount)
	}
	return nil
}

func (e Payment) mergeInto(s *step) { s.payment = &e }

// earlyKeywords flag a payment title as an early repayment (English and Romanian).
var earlyKeywords = []string{
	"anticipat", "avans", "înainte", "inainte", "prematur", "extra", "suplimentar",
	"early", "advance", "premature", "additional",
}

// IsEarly reports whether the title marks this payment as an early repayment.
func (e Payment) IsEarly() bool {
	title := strings.ToLower(e.Title)
	if title == "" {
		return false
	}
	for _, k := range earlyKeywords {
		if strings.Contains(title, k) {
			return true
		}
	}
	return false
}

// RateChange sets the annual rate (in percent) from its date on, inclusive.
type RateChange struct {
	On   date.Date
	Rate decimal.Decimal
}

func (e RateChange) When() date.Date { return e.On }

func (e RateChange) Validate() error {
	if e.Rate.IsNegative() {
		return invalidf("rate on %s must not be negative, got %s", e.On, e.Rate)
	}
	return nil
}

func (e RateChange) mergeInto(s *step) { s.rate = &e.Rate }

// Fee is a single fee paid on a date.
type Fee struct {
	On     date.Date
	Amount decimal.Decimal
}

func (e Fee) When() date.Date { return e.On }

func (e Fee) Validate() error {
	if e.Amount.IsNegative() {
		return invalidf("fee on %s must not be negative, got %s", e.On, e.Amount)
	}
	return nil
}

func (e Fee) mergeInto(s *step) { s.fee = &e.Amount }

// RecurringAmount changes the standing installment from its date on.
type RecurringAmount struct {
	On     date.Date
	Amount decimal.Decimal
}

func (e RecurringAmount) When() date.Date { return e.On }

func (e RecurringAmount) Validate() error {
	if e.Amount.IsNegative() {
		return invalidf("recurring amount on %s must not be negative, got %s", e.On, e.Amount)
	}
	return nil
}

func (e RecurringAmount) mergeInto(s *step) { s.recurring = &e.Amount }

// projected is a due date generated from the recurring schedule.
type projected struct{ on date.Date }

func (e projected) When() date.Date   { return e.on }
func (e projected) Validate() error   { return nil }
func (e projected) mergeInto(s *step) { s.projected = true }

// ending closes the schedule at maturity.
type ending struct{ on date.Date }

func (e ending) When() date.Date   { return e.on }
func (e ending) Validate() error   { return nil }
func (e ending) mergeInto(s *step) { s.ending = true }

// step is the merge of all the events on one date. On conflicting fields the
// later event wins.
type step struct {
	on        date.Date
	rate      *decimal.Decimal
	recurring *decimal.Decimal
	fee       *decimal.Decimal
	payment   *Payment
	projected bool
	ending    bool
}

// pays reports whether an installment is due on this step.
func (s step) pays() bool { return s.payment != nil || s.projected }
