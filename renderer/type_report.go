package renderer

import (
	"fmt"

	"github.com/etnz/paydown"
	"github.com/etnz/paydown/date"
	"github.com/shopspring/decimal"
)

// Row is a line of the schedule table.
type Row struct {
	Date        date.Date
	Kind        string
	Note        string
	Rate        string
	Days        int
	Installment Money
	Interest    Money
	Reduction   Money
	Fee         Money
	Balance     Money
}

// Year is a line of the annual summary.
type Year struct {
	Year      int
	Principal Money
	Interest  Money
	Fees      Money
}

// Report is the view of a calculated loan.
type Report struct {
	Start     date.Date
	End       date.Date
	Principal Money
	Rate      string
	DayCount  string
	Currency  string

	Rows  []Row
	Years []Year

	Interest       Money
	Reductions     Money
	Installments   Money
	Remaining      Money
	UnpaidInterest Money
	InterestPaid   Money
	Fees           Money
	Days           int
	ActualEnd      date.Date
	LatestPayment  date.Date
}

// NewReport prepares the view of r, the result of the loan described by terms.
func NewReport(terms paydown.LoanTerms, r *paydown.Result) *Report {
	m := func(v decimal.Decimal) Money { return NewMoney(v, terms.Currency) }
	rep := &Report{
		Start:          terms.Start,
		End:            terms.End,
		Principal:      m(terms.Principal),
		Rate:           percent(terms.Rate),
		DayCount:       terms.DayCount.String(),
		Currency:       terms.Currency,
		Interest:       m(r.Interest),
		Reductions:     m(r.Reductions),
		Installments:   m(r.Installments),
		Remaining:      m(r.Remaining),
		UnpaidInterest: m(r.UnpaidInterest),
		InterestPaid:   m(r.InterestPaid),
		Fees:           m(r.Fees),
		Days:           r.Days,
		ActualEnd:      r.ActualEnd,
		LatestPayment:  r.LatestPayment,
	}
	for _, e := range r.Log {
		rep.Rows = append(rep.Rows, Row{
			Date:        e.Date,
			Kind:        e.Kind.String(),
			Note:        note(e),
			Rate:        percent(e.Rate),
			Days:        e.Days,
			Installment: m(e.Installment),
			Interest:    m(e.Interest),
			Reduction:   m(e.Reduction),
			Fee:         m(e.Fee),
			Balance:     m(e.Principal),
		})
	}
	for _, y := range r.Years() {
		s := r.Annual[y]
		rep.Years = append(rep.Years, Year{Year: y, Principal: m(s.Principal), Interest: m(s.Interest), Fees: m(s.Fees)})
	}
	return rep
}

func note(e paydown.Entry) string {
	switch {
	case e.Early && e.Simulated:
		return "early, simulated"
	case e.Early:
		return "early"
	case e.Simulated:
		return "simulated"
	case e.Paid:
		return "paid"
	}
	return ""
}

func percent(rate decimal.Decimal) string { return fmt.Sprintf("%s%%", rate.StringFixed(2)) }
