package paydown

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/paydown/date"
	"github.com/shopspring/decimal"
)

// EntryKind tells which step produced a log entry.
type EntryKind int

const (
	// StartEntry opens the log with the disbursed principal.
	StartEntry EntryKind = iota
	// RateEntry records a rate change.
	RateEntry
	// FeeEntry records a single fee.
	FeeEntry
	// PaymentEntry records an installment, projected or recorded.
	PaymentEntry
	// EndingEntry closes the log at maturity with the unpaid interest.
	EndingEntry
)

func (k EntryKind) String() string {
	switch k {
	case StartEntry:
		return "start"
	case RateEntry:
		return "rate"
	case FeeEntry:
		return "fee"
	case PaymentEntry:
		return "payment"
	case EndingEntry:
		return "ending"
	default:
		return "unknown"
	}
}

// ParseEntryKind parses a string into an EntryKind.
func ParseEntryKind(s string) (EntryKind, error) {
	for k := StartEntry; k <= EndingEntry; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown entry kind: %q", s)
}

func (k EntryKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *EntryKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseEntryKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Entry is a row of the payment log. Amounts are kept at full precision.
type Entry struct {
	Date        date.Date
	Kind        EntryKind
	Rate        decimal.Decimal // rate in force.
	Installment decimal.Decimal
	Reduction   decimal.Decimal // principal repaid.
	Interest    decimal.Decimal
	Principal   decimal.Decimal // balance after this entry.
	Fee         decimal.Decimal
	Days        int // days accrued.
	Paid        bool
	Simulated   bool
	Early       bool
}

// AnnualSummary totals a calendar year.
type AnnualSummary struct {
	Principal decimal.Decimal // principal repaid.
	Interest  decimal.Decimal
	Fees      decimal.Decimal
}

// Result is the outcome of a calculation.
type Result struct {
	Interest       decimal.Decimal // total interest, unpaid interest included.
	Reductions     decimal.Decimal // total principal repaid.
	Installments   decimal.Decimal // sum of the installments.
	Remaining      decimal.Decimal // balance left at the end.
	Days           int             // days accrued.
	ActualEnd      date.Date       // last payment, or maturity when interest is left unpaid.
	LatestPayment  date.Date
	UnpaidInterest decimal.Decimal // interest accrued since the last payment.
	InterestPaid   decimal.Decimal // interest on recorded, non simulated payments.
	Fees           decimal.Decimal
	Annual         map[int]AnnualSummary
	Log            []Entry
}

// Years returns the years of the annual summaries, in order.
func (r *Result) Years() []int { return slices.Sorted(maps.Keys(r.Annual)) }

// Payments returns the payment entries of the log.
func (r *Result) Payments() []Entry {
	var payments []Entry
	for _, e := range r.Log {
		if e.Kind == PaymentEntry {
			payments = append(payments, e)
		}
	}
	return payments
}

// round rounds every total and annual bucket to two decimals.
func (r *Result) round() {
	for _, v := range []*decimal.Decimal{&r.Interest, &r.Reductions, &r.Installments, &r.Remaining, &r.UnpaidInterest, &r.InterestPaid, &r.Fees} {
		*v = round2(*v)
	}
	for y, s := range r.Annual {
		r.Annual[y] = AnnualSummary{
			Principal: round2(s.Principal),
			Interest:  round2(s.Interest),
			Fees:      round2(s.Fees),
		}
	}
}
