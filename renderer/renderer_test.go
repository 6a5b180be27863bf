package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/paydown"
	"github.com/etnz/paydown/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubLoan(t *testing.T) (paydown.LoanTerms, *paydown.Result) {
	t.Helper()
	terms := paydown.LoanTerms{
		Start:     date.MustParse("01.01.2024"),
		End:       date.MustParse("01.01.2025"),
		Principal: paydown.D(10000),
		Rate:      paydown.D(6),
	}
	events := []paydown.Event{
		paydown.Payment{On: date.MustParse("01.07.2024"), Amount: paydown.D(2000), Title: "early repayment"},
	}
	r, err := paydown.Calculate(terms, events)
	require.NoError(t, err)
	return terms, r
}

func TestRenderSchedule(t *testing.T) {
	terms, r := stubLoan(t)
	got := RenderSchedule(terms, r)

	assert.True(t, strings.HasPrefix(got, "# Loan from 01.01.2024 to 01.01.2025\n\nPrincipal 10000.00 at 6.00% (act/360).\n\n## Schedule\n"), got)
	assert.Contains(t, got, "\n| 01.01.2024 | start | 6.00% |  |  |  |  |  | 10000.00 |\n")
	// 10000 * 6% * 182 / 360
	assert.Contains(t, got, "\n| 01.07.2024 | payment (early) | 6.00% | 182 | 2000.00 | 303.33 | 1696.67 |  | 8303.33 |\n")
	assert.Contains(t, got, "| Days | 366 |")
	assert.Contains(t, got, "| Latest payment | 01.07.2024 |")
	assert.NotContains(t, got, "error")
}

func TestRenderSummary(t *testing.T) {
	terms, r := stubLoan(t)
	got := RenderSummary(terms, r)

	assert.Contains(t, got, "## Annual Summary")
	assert.Contains(t, got, "\n| 2024 | 1696.67 | 303.33 | 0.00 |")
	assert.Contains(t, got, "\n| 2025 |")
	assert.NotContains(t, got, "## Schedule")
	assert.NotContains(t, got, "error")
}

func TestMoney(t *testing.T) {
	tests := []struct {
		value float64
		cur   string
		want  string
	}{
		{1234.5, "USD", "$1,234.50"},
		{1234.555, "USD", "$1,234.56"},
		{1234.5, "", "1234.50"},
		{1234.5, "XYZ", "1234.50"},
	}
	for _, tt := range tests {
		if got := NewMoney(paydown.D(tt.value), tt.cur).String(); got != tt.want {
			t.Errorf("NewMoney(%v, %q).String() = %q, want %q", tt.value, tt.cur, got, tt.want)
		}
	}
	assert.Equal(t, "", NewMoney(paydown.D(0.001), "USD").Cell())
}
