// Package paydown computes the amortization of a loan. Given the loan terms
// and a chronological list of schedule-altering events it produces a
// payment-by-payment log, year-by-year summaries and aggregate totals.
//
// The core functionalities include:
//   - Event Journal: rate changes, single fees, standing installment changes
//     and recorded payments are validated, completed with the projected
//     recurring due dates and merged into one step per date.
//   - Interest Accrual: simple interest under the act/360 or act/365
//     convention, split into subperiods when the rate changes mid-period.
//   - Payment Application: each installment settles the accrued interest and
//     reduces the principal, until the loan is paid off or matures.
//   - Annuity Formula: the equal installment of a loan and its repricing after
//     a rate change.
//   - Aggregation: totals, annual buckets and an optional two-decimal
//     rounding pass, cross-checked against the accrual engine's own sums.
//
// The computation is pure: it performs no I/O and keeps no state between
// calls. Loan files, rendering and the command line live in the encode.go
// codec and in the renderer and cmd packages.
package paydown
