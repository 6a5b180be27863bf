package paydown

import (
	"errors"
	"fmt"

	"github.com/etnz/paydown/date"
	"github.com/shopspring/decimal"
)

// Every error returned by Calculate wraps exactly one of these.
var (
	// ErrInputValidation reports malformed or out of range input.
	ErrInputValidation = errors.New("invalid input")
	// ErrEventOrdering reports an event dated on or before the loan start.
	ErrEventOrdering = errors.New("event ordering")
	// ErrInsufficientPayment reports an installment that does not cover the interest of its period.
	ErrInsufficientPayment = errors.New("insufficient payment")
	// ErrInvariantViolation reports an internal inconsistency between independent computations.
	ErrInvariantViolation = errors.New("invariant violation")
)

// InsufficientPaymentError is returned when an installment is lower than the
// interest accrued in its period.
type InsufficientPaymentError struct {
	On          date.Date
	Installment decimal.Decimal
	Interest    decimal.Decimal
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("installment %s on %s does not cover interest %s", e.Installment, e.On, e.Interest.StringFixed(2))
}

func (e *InsufficientPaymentError) Unwrap() error { return ErrInsufficientPayment }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInputValidation, fmt.Sprintf(format, args...))
}

func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
