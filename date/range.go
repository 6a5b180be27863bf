package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days in the range.
func (r Range) Days() int { return Days(r.From, r.To, true) }

// Split cuts the range at each date in 'at' that lies strictly after From and
// not after To. Each cut date starts a new subrange.
func (r Range) Split(at ...Date) []Range {
	parts := make([]Range, 0, len(at)+1)
	from := r.From
	for _, d := range at {
		if !d.After(from) || d.After(r.To) {
			continue
		}
		parts = append(parts, Range{From: from, To: d.Add(-1)})
		from = d
	}
	return append(parts, Range{From: from, To: r.To})
}

func (r Range) String() string { return fmt.Sprintf("%s - %s", r.From, r.To) }
