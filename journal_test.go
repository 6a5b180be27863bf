package paydown

import (
	"testing"

	"github.com/etnz/paydown/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dates(s ...string) []date.Date {
	out := make([]date.Date, len(s))
	for i, v := range s {
		out[i] = d(v)
	}
	return out
}

func TestJournalDates(t *testing.T) {
	terms := LoanTerms{
		Start:     d("01.01.2024"),
		End:       d("30.06.2024"),
		Principal: D(1000),
		Rate:      D(5),
		Recurring: monthly("31.01.2024"),
	}
	tests := []struct {
		name   string
		events []Event
		want   []date.Date
	}{
		{
			name: "clamped and shifted",
			want: dates("31.01.2024", "29.02.2024", "01.04.2024", "30.04.2024", "31.05.2024", "01.07.2024"),
		},
		{
			name:   "recorded payment suppresses earlier due dates",
			events: []Event{Payment{On: d("15.03.2024"), Amount: D(200)}},
			want:   dates("15.03.2024", "01.04.2024", "30.04.2024", "31.05.2024", "01.07.2024"),
		},
		{
			name:   "simulated payment does not",
			events: []Event{Payment{On: d("15.03.2024"), Amount: D(200), Simulated: true}},
			want:   dates("31.01.2024", "29.02.2024", "15.03.2024", "01.04.2024", "30.04.2024", "31.05.2024", "01.07.2024"),
		},
		{
			name:   "same date events merge",
			events: []Event{Fee{On: d("29.02.2024"), Amount: D(3)}, RateChange{On: d("29.02.2024"), Rate: D(4)}},
			want:   dates("31.01.2024", "29.02.2024", "01.04.2024", "30.04.2024", "31.05.2024", "01.07.2024"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := NewJournal(terms, tt.events)
			require.NoError(t, err)
			assert.Equal(t, tt.want, j.Dates())
		})
	}
}

func TestJournalLaterEventWins(t *testing.T) {
	terms := LoanTerms{
		Start:     d("01.01.2024"),
		End:       d("01.01.2025"),
		Principal: D(1000),
		Rate:      D(5),
	}
	j, err := NewJournal(terms, []Event{
		RateChange{On: d("01.03.2024"), Rate: D(4)},
		Fee{On: d("01.03.2024"), Amount: D(1)},
		RateChange{On: d("01.03.2024"), Rate: D(3.5)},
	})
	require.NoError(t, err)

	assert.Equal(t, dates("01.03.2024", "01.01.2025"), j.Dates())
	assert.Equal(t, "5", j.RateAsOf(d("29.02.2024")).String())
	assert.Equal(t, "3.5", j.RateAsOf(d("01.03.2024")).String())
	require.NotNil(t, j.steps[0].rate)
	assert.Equal(t, "3.5", j.steps[0].rate.String())
	assert.True(t, j.steps[1].ending)
}

func TestJournalPaymentReplacesProjected(t *testing.T) {
	terms := LoanTerms{
		Start:     d("01.01.2024"),
		End:       d("01.04.2024"),
		Principal: D(900),
		Rate:      D(0),
		Recurring: monthly("01.02.2024"),
	}
	j, err := NewJournal(terms, []Event{Payment{On: d("01.03.2024"), Amount: D(500), Simulated: true}})
	require.NoError(t, err)

	require.Len(t, j.steps, 3)
	s := j.steps[1]
	assert.True(t, s.projected)
	require.NotNil(t, s.payment)
	assert.Equal(t, "500", s.payment.Amount.String())
	assert.True(t, j.steps[2].ending && j.steps[2].projected)

	r, err := j.Calculate()
	require.NoError(t, err)
	assert.Equal(t, "500", r.Payments()[1].Installment.String())
}

func TestRecurringDatesQuarterly(t *testing.T) {
	r := Recurring{FirstPayment: d("30.11.2023"), PaymentDay: 30, Frequency: date.Quarterly}
	got := r.Dates(d("01.12.2024"), date.Date{})
	assert.Equal(t, dates("30.11.2023", "29.02.2024", "30.05.2024", "30.08.2024", "02.12.2024"), got)
}

func TestJournalRecorded(t *testing.T) {
	terms := LoanTerms{
		Start:     d("01.01.2024"),
		End:       d("01.01.2025"),
		Principal: D(1000),
		Rate:      D(5),
		Recurring: monthly("01.02.2024"),
	}
	fee := Fee{On: d("01.06.2024"), Amount: D(3)}
	rc := RateChange{On: d("01.03.2024"), Rate: D(4)}
	j, err := NewJournal(terms, []Event{fee, rc})
	require.NoError(t, err)
	assert.Equal(t, []Event{rc, fee}, j.Recorded())
	assert.Contains(t, j.Dates(), d("01.06.2024"))
}
