package date

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Period is the frequency of a recurring schedule.
type Period int

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Semiannual:
		return "semiannual"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", int(p)))
	}
}

const (
	Monthly Period = iota
	Quarterly
	Semiannual
	Yearly
)

// Months returns the length of the period in months.
func (p Period) Months() int {
	switch p {
	case Quarterly:
		return 3
	case Semiannual:
		return 6
	case Yearly:
		return 12
	default:
		return 1
	}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(p)
	switch p {
	case "monthly", "month", "":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "semiannual", "semester":
		return Semiannual, nil
	case "yearly", "year", "annual":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %s", p)
	}
}

func (p Period) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }

func (p *Period) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParsePeriod(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
