package paydown

// check compares the engine totals with the accrual engine's own sums, and
// verifies the balance never went negative.
func (c *calculation) check(a *accumulator) error {
	if a.days != c.accrual.days {
		return invariantf("engine accrued %d days, accrual engine %d", a.days, c.accrual.days)
	}
	if !a.interest.Equal(c.accrual.interest) {
		return invariantf("engine accrued %s interest, accrual engine %s", a.interest, c.accrual.interest)
	}
	if a.principal.IsNegative() {
		return invariantf("negative balance %s", a.principal)
	}
	for _, e := range a.log {
		if e.Principal.IsNegative() {
			return invariantf("negative balance %s on %s", e.Principal, e.Date)
		}
	}
	if a.mark != c.accrual.last {
		return invariantf("last settled day %s, last accrued day %s", a.mark, c.accrual.last)
	}
	return nil
}
