package paydown

import (
	"fmt"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/paydown/date"
	"github.com/shopspring/decimal"
)

// RecordPaths locates the loan fields inside a stored loan record, as JSONPath
// expressions. Item paths are evaluated against each element of Items.
type RecordPaths struct {
	Start        string
	End          string
	Principal    string
	Rate         string
	InitialFee   string
	FirstPayment string
	PaymentDay   string
	Items        string

	ItemDate            string
	ItemSimulated       string
	ItemRate            string
	ItemInstallment     string
	ItemFee             string
	ItemRecurringAmount string
	ItemTitle           string
}

// DefaultRecordPaths matches the records served by the loans API.
var DefaultRecordPaths = RecordPaths{
	Start:        "$.sdt",
	End:          "$.edt",
	Principal:    "$.fp",
	Rate:         "$.fr",
	InitialFee:   "$.fif",
	FirstPayment: "$.pdt",
	PaymentDay:   "$.frpd",
	Items:        "$.items",

	ItemDate:            "$.fdt",
	ItemSimulated:       "$.fisp",
	ItemRate:            "$.fr",
	ItemInstallment:     "$.fpi",
	ItemFee:             "$.fpsf",
	ItemRecurringAmount: "$.fnra",
	ItemTitle:           "$.title",
}

// ImportRecord maps a stored loan record (as decoded by encoding/json) to
// loan terms and events. Numbers may be stored as strings, dates as
// YYYY-MM-DD or DD.MM.YYYY. Imported loans use act/365.
func ImportRecord(doc any, p RecordPaths) (LoanTerms, []Event, error) {
	var err error
	terms := LoanTerms{DayCount: Act365}
	if terms.Start, err = requireDate(doc, p.Start); err != nil {
		return LoanTerms{}, nil, err
	}
	if terms.End, err = requireDate(doc, p.End); err != nil {
		return LoanTerms{}, nil, err
	}
	if terms.Principal, _, err = lookupDecimal(doc, p.Principal); err != nil {
		return LoanTerms{}, nil, err
	}
	if terms.Rate, _, err = lookupDecimal(doc, p.Rate); err != nil {
		return LoanTerms{}, nil, err
	}
	if terms.InitialFee, _, err = lookupDecimal(doc, p.InitialFee); err != nil {
		return LoanTerms{}, nil, err
	}

	first, hasFirst, err := lookupDate(doc, p.FirstPayment)
	if err != nil {
		return LoanTerms{}, nil, err
	}
	day, hasDay, err := lookupDecimal(doc, p.PaymentDay)
	if err != nil {
		return LoanTerms{}, nil, err
	}
	if hasFirst && hasDay {
		terms.Recurring = &Recurring{FirstPayment: first, PaymentDay: int(day.IntPart())}
	}

	items, ok := lookup(doc, p.Items).([]any)
	if !ok {
		return terms, nil, nil
	}
	var events []Event
	for i, item := range items {
		ev, err := importItem(item, p)
		if err != nil {
			return LoanTerms{}, nil, fmt.Errorf("item #%d: %w", i+1, err)
		}
		events = append(events, ev...)
	}
	return terms, events, nil
}

func importItem(item any, p RecordPaths) ([]Event, error) {
	on, err := requireDate(item, p.ItemDate)
	if err != nil {
		return nil, err
	}
	je := jevent{Date: on}
	for _, f := range []struct {
		path string
		dst  **decimal.Decimal
	}{
		{p.ItemRate, &je.Rate},
		{p.ItemRecurringAmount, &je.RecurringAmount},
		{p.ItemFee, &je.PaySingleFee},
		{p.ItemInstallment, &je.PayInstallment},
	} {
		v, found, err := lookupDecimal(item, f.path)
		if err != nil {
			return nil, err
		}
		if found {
			*f.dst = &v
		}
	}
	if flag, found, err := lookupDecimal(item, p.ItemSimulated); err != nil {
		return nil, err
	} else if found {
		je.Simulated = !flag.IsZero()
	}
	if title, ok := scalar(item, p.ItemTitle).(string); ok {
		je.Title = title
	}
	return je.events(), nil
}

// lookup returns the value at path, or nil when the path is empty or absent.
func lookup(doc any, path string) any {
	if path == "" {
		return nil
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil
	}
	return v
}

// scalar is like lookup but keeps the first answer when jsonpath answers a list.
func scalar(doc any, path string) any {
	v := lookup(doc, path)
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return nil
		}
		return list[0]
	}
	return v
}

// lookupDecimal reads a number stored as a JSON number, a string or a boolean.
// Empty strings and nulls are absent.
func lookupDecimal(doc any, path string) (decimal.Decimal, bool, error) {
	switch v := scalar(doc, path).(type) {
	case nil:
		return decimal.Zero, false, nil
	case float64:
		return decimal.NewFromFloat(v), true, nil
	case bool:
		if v {
			return decimal.NewFromInt(1), true, nil
		}
		return decimal.Zero, true, nil
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		if s == "" {
			return decimal.Zero, false, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false, invalidf("%s: %q is not a number", path, v)
		}
		return d, true, nil
	default:
		return decimal.Zero, false, invalidf("%s: unexpected value %v", path, v)
	}
}

// lookupDate reads a date stored as YYYY-MM-DD (optionally with a time) or DD.MM.YYYY.
func lookupDate(doc any, path string) (date.Date, bool, error) {
	s, ok := scalar(doc, path).(string)
	if !ok || strings.TrimSpace(s) == "" {
		return date.Date{}, false, nil
	}
	s = strings.TrimSpace(s)
	if len(s) >= 10 && s[4] == '-' {
		t, err := time.Parse(time.DateOnly, s[:10])
		if err != nil {
			return date.Date{}, false, invalidf("%s: %q is not a date", path, s)
		}
		return date.New(t.Year(), t.Month(), t.Day()), true, nil
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, false, fmt.Errorf("%w: %s: %w", ErrInputValidation, path, err)
	}
	return d, true, nil
}

func requireDate(doc any, path string) (date.Date, error) {
	d, found, err := lookupDate(doc, path)
	if err != nil {
		return date.Date{}, err
	}
	if !found {
		return date.Date{}, invalidf("missing date at %s", path)
	}
	return d, nil
}
