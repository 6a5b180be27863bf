package paydown

import (
	"log/slog"
)

// Option configures a calculation.
type Option func(*calculation)

// WithLogger sends the trace of the calculation to l. Periods, subperiods and
// repricing are logged at debug level, suspicious results at warn level. The
// default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *calculation) {
		if l != nil {
			c.log = l
		}
	}
}

type calculation struct {
	journal *Journal
	accrual *accrual
	log     *slog.Logger
}

// Calculate computes the amortization of a loan under the given events.
//
// On error no partial result is returned, and the error wraps one of
// ErrInputValidation, ErrEventOrdering, ErrInsufficientPayment or
// ErrInvariantViolation.
func Calculate(terms LoanTerms, events []Event, opts ...Option) (*Result, error) {
	j, err := NewJournal(terms, events)
	if err != nil {
		return nil, err
	}
	return j.Calculate(opts...)
}

// Calculate computes the amortization of the loan described by the journal.
func (j *Journal) Calculate(opts ...Option) (*Result, error) {
	c := &calculation{
		journal: j,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.accrual = newAccrual(j, c.log)
	c.log.Debug("journal", "steps", len(j.steps), "rates", j.rates.Len())

	a := c.open()
	for _, s := range j.steps {
		if a.done {
			c.log.Debug("step ignored", "on", s.on)
			continue
		}
		if err := c.apply(a, s); err != nil {
			return nil, err
		}
	}
	if err := c.check(a); err != nil {
		return nil, err
	}
	return c.finalize(a), nil
}
