package paydown

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/paydown/date"
	"github.com/shopspring/decimal"
)

// A loan file is a single JSON object:
//
//	{
//	  "loan": {"start_date": "01.01.2024", "end_date": "01.01.2034", "principal": 10000, "rate": 5,
//	           "day_count_method": "act/360", "recurring": {"first_payment_date": "01.02.2024", "payment_day": 1}},
//	  "events": [{"date": "01.06.2025", "rate": 4.5}, {"date": "01.07.2025", "pay_installment": 500, "title": "early repayment"}]
//	}
//
// An event record may carry several changes at once, each becomes its own Event.

// jrecurring is the recurring schedule read from a loan file.
type jrecurring struct {
	FirstPayment date.Date   `json:"first_payment_date"`
	PaymentDay   int         `json:"payment_day"`
	Frequency    date.Period `json:"frequency"`
}

// jloan is the loan terms read from a loan file.
type jloan struct {
	Start      date.Date        `json:"start_date"`
	End        date.Date        `json:"end_date"`
	Principal  decimal.Decimal  `json:"principal"`
	Rate       decimal.Decimal  `json:"rate"`
	DayCount   DayCount         `json:"day_count_method"`
	Recurring  *jrecurring      `json:"recurring"`
	InitialFee *decimal.Decimal `json:"initial_fee"`
	Round      *bool            `json:"round_values"`
	Currency   string           `json:"currency"`
}

// jevent is an event record read from a loan file.
type jevent struct {
	Date            date.Date        `json:"date"`
	Rate            *decimal.Decimal `json:"rate"`
	RecurringAmount *decimal.Decimal `json:"recurring_amount"`
	PayInstallment  *decimal.Decimal `json:"pay_installment"`
	PaySingleFee    *decimal.Decimal `json:"pay_single_fee"`
	Simulated       bool             `json:"simulated"`
	Title           string           `json:"title"`
}

type jfile struct {
	Loan   jloan    `json:"loan"`
	Events []jevent `json:"events"`
}

// DecodeLoan reads a loan file. Format errors wrap ErrInputValidation; the
// content itself is validated by NewJournal.
func DecodeLoan(r io.Reader) (LoanTerms, []Event, error) {
	var f jfile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return LoanTerms{}, nil, fmt.Errorf("%w: cannot decode loan file: %w", ErrInputValidation, err)
	}

	terms := LoanTerms{
		Start:     f.Loan.Start,
		End:       f.Loan.End,
		Principal: f.Loan.Principal,
		Rate:      f.Loan.Rate,
		DayCount:  f.Loan.DayCount,
		Currency:  f.Loan.Currency,
	}
	if f.Loan.InitialFee != nil {
		terms.InitialFee = *f.Loan.InitialFee
	}
	if f.Loan.Round != nil {
		terms.Exact = !*f.Loan.Round
	}
	if jr := f.Loan.Recurring; jr != nil {
		terms.Recurring = &Recurring{
			FirstPayment: jr.FirstPayment,
			PaymentDay:   jr.PaymentDay,
			Frequency:    jr.Frequency,
		}
	}

	var events []Event
	for i, je := range f.Events {
		if je.Date.IsZero() {
			return LoanTerms{}, nil, invalidf("event #%d has no date", i+1)
		}
		events = append(events, je.events()...)
	}
	return terms, events, nil
}

// events expands a record into its events, in the order they are applied.
func (je jevent) events() []Event {
	var events []Event
	if je.Rate != nil {
		events = append(events, RateChange{On: je.Date, Rate: *je.Rate})
	}
	if je.RecurringAmount != nil {
		events = append(events, RecurringAmount{On: je.Date, Amount: *je.RecurringAmount})
	}
	if je.PaySingleFee != nil {
		events = append(events, Fee{On: je.Date, Amount: *je.PaySingleFee})
	}
	if je.PayInstallment != nil {
		events = append(events, Payment{On: je.Date, Amount: *je.PayInstallment, Simulated: je.Simulated, Title: je.Title})
	}
	return events
}

// EncodeLoan writes a loan file, one record per event.
func EncodeLoan(w io.Writer, terms LoanTerms, events []Event) error {
	var loan jsonObjectWriter
	loan.Append("start_date", terms.Start).
		Append("end_date", terms.End).
		Number("principal", terms.Principal).
		Number("rate", terms.Rate).
		Append("day_count_method", terms.DayCount)
	if r := terms.Recurring; r != nil {
		var jr jsonObjectWriter
		jr.Append("first_payment_date", r.FirstPayment).
			Append("payment_day", r.PaymentDay).
			Optional("frequency", r.Frequency)
		loan.Append("recurring", &jr)
	}
	loan.OptionalNumber("initial_fee", terms.InitialFee)
	if terms.Exact {
		loan.Append("round_values", false)
	}
	loan.Optional("currency", terms.Currency)

	records := make([]json.RawMessage, 0, len(events))
	for _, e := range events {
		var rec jsonObjectWriter
		rec.Append("date", e.When())
		switch e := e.(type) {
		case RateChange:
			rec.Number("rate", e.Rate)
		case RecurringAmount:
			rec.Number("recurring_amount", e.Amount)
		case Fee:
			rec.Number("pay_single_fee", e.Amount)
		case Payment:
			rec.Number("pay_installment", e.Amount).
				Optional("simulated", e.Simulated).
				Optional("title", e.Title)
		default:
			return fmt.Errorf("cannot encode event %T", e)
		}
		b, err := rec.MarshalJSON()
		if err != nil {
			return err
		}
		records = append(records, b)
	}

	var file jsonObjectWriter
	file.Append("loan", &loan).Append("events", records)
	b, err := file.MarshalJSON()
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}

// MarshalJSON writes the entry with its fields in log order, zero amounts omitted.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Date).
		Append("kind", e.Kind).
		Number("rate", e.Rate).
		OptionalNumber("installment", e.Installment).
		OptionalNumber("reduction", e.Reduction).
		OptionalNumber("interest", e.Interest).
		Number("principal", e.Principal).
		OptionalNumber("fee", e.Fee).
		Optional("days", e.Days).
		Optional("paid", e.Paid).
		Optional("simulated", e.Simulated).
		Optional("early", e.Early)
	return w.MarshalJSON()
}

func (s AnnualSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Number("principal", s.Principal).
		Number("interest", s.Interest).
		Number("fees", s.Fees)
	return w.MarshalJSON()
}

func (r *Result) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Number("interest", r.Interest).
		Number("reductions", r.Reductions).
		Number("installments", r.Installments).
		Number("remaining", r.Remaining).
		Append("days", r.Days).
		Append("actual_end", r.ActualEnd).
		Optional("latest_payment", r.LatestPayment).
		Number("unpaid_interest", r.UnpaidInterest).
		Number("interest_paid", r.InterestPaid).
		Number("fees", r.Fees)

	var annual jsonObjectWriter
	for _, y := range r.Years() {
		annual.Append(fmt.Sprint(y), r.Annual[y])
	}
	w.Append("annual", &annual).
		Append("log", r.Log)
	return w.MarshalJSON()
}
