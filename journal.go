package paydown

import (
	"fmt"
	"sort"

	"github.com/etnz/paydown/date"
	"github.com/shopspring/decimal"
)

// Journal holds the events of a loan, completed with the projected due dates
// and the ending, merged into one step per date.
type Journal struct {
	terms  LoanTerms
	events []Event // sorted by date
	steps  []step  // one per date, sorted
	rates  date.History[decimal.Decimal]
}

// NewJournal validates the events against the terms and builds the journal.
//
// Every event must be dated strictly after terms.Start. Projected due dates on
// or before the latest recorded (non simulated) payment are not generated.
func NewJournal(terms LoanTerms, events []Event) (*Journal, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	j := &Journal{terms: terms}
	j.rates.Append(terms.Start, terms.Rate)

	var paidUntil date.Date
	for _, e := range events {
		if e == nil {
			return nil, invalidf("nil event")
		}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if !e.When().After(terms.Start) {
			return nil, fmt.Errorf("%w: %T on %s is not after start date %s", ErrEventOrdering, e, e.When(), terms.Start)
		}
		switch e := e.(type) {
		case Payment:
			if !e.Simulated && e.On.After(paidUntil) {
				paidUntil = e.On
			}
		case RecurringAmount:
			if terms.Recurring == nil {
				return nil, invalidf("recurring amount on %s without a recurring schedule", e.On)
			}
		}
		j.events = append(j.events, e)
	}

	if terms.Recurring != nil {
		for _, due := range terms.Recurring.Dates(terms.End, paidUntil) {
			j.events = append(j.events, projected{on: due})
		}
	}
	// Maturity moves off weekends like the due dates, so that it meets the last one.
	j.events = append(j.events, ending{on: terms.End.SkipWeekend()})

	// Stable, so that on the same day the later event wins.
	sort.SliceStable(j.events, func(i, k int) bool {
		return j.events[i].When().Before(j.events[k].When())
	})

	for _, e := range j.events {
		if rc, ok := e.(RateChange); ok {
			j.rates.Append(rc.On, rc.Rate)
		}
		on := e.When()
		if n := len(j.steps); n == 0 || j.steps[n-1].on != on {
			j.steps = append(j.steps, step{on: on})
		}
		e.mergeInto(&j.steps[len(j.steps)-1])
	}
	return j, nil
}

// Terms returns the loan terms of this journal.
func (j *Journal) Terms() LoanTerms { return j.terms }

// Dates returns the date of every step, in order.
func (j *Journal) Dates() []date.Date {
	dates := make([]date.Date, len(j.steps))
	for i, s := range j.steps {
		dates[i] = s.on
	}
	return dates
}

// RateAsOf returns the annual rate in force on day.
func (j *Journal) RateAsOf(day date.Date) decimal.Decimal {
	r, _ := j.rates.ValueAsOf(day)
	return r
}

// Recorded returns the events given to NewJournal, in chronological order.
func (j *Journal) Recorded() []Event {
	var events []Event
	for _, e := range j.events {
		switch e.(type) {
		case projected, ending:
			continue
		}
		events = append(events, e)
	}
	return events
}
