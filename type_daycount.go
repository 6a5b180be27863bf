package paydown

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// DayCount defines how many days a year has when turning an annual rate into
// the interest of a period.
type DayCount int

const (
	// Act360 counts actual days over a 360 days year.
	Act360 DayCount = iota
	// Act365 counts actual days over a 365 days year, leap years included.
	Act365
)

func (m DayCount) String() string {
	switch m {
	case Act360:
		return "act/360"
	case Act365:
		return "act/365"
	default:
		return "unknown"
	}
}

// ParseDayCount parses a string into a DayCount. The empty string is act/360.
func ParseDayCount(s string) (DayCount, error) {
	switch s {
	case "", "act/360":
		return Act360, nil
	case "act/365":
		return Act365, nil
	default:
		return 0, invalidf("unknown day count method: %q", s)
	}
}

// Basis returns the number of days in the year.
func (m DayCount) Basis() int {
	if m == Act365 {
		return 365
	}
	return 360
}

// Interest returns the simple interest on principal at the annual rate (in
// percent) over days.
func (m DayCount) Interest(principal, rate decimal.Decimal, days int) decimal.Decimal {
	if days == 0 || rate.IsZero() {
		return decimal.Zero
	}
	den := hundred.Mul(decimal.NewFromInt(int64(m.Basis())))
	return principal.Mul(rate).Mul(decimal.NewFromInt(int64(days))).Div(den)
}

func (m DayCount) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

func (m *DayCount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("day count method must be a string: %w", err)
	}
	v, err := ParseDayCount(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
