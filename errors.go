package ladder

import "errors"

// Errors reported by the simulation. They are always wrapped with some
// context, use errors.Is to test for them.
var (
	// ErrInvalidConfiguration reports degenerate inputs: non positive values,
	// empty terms, negative rates, fractions out of range, bad strategy codes.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrIneligibleConversion reports a buy-to-let conversion refused because
	// the loan-to-value is above 75%.
	ErrIneligibleConversion = errors.New("ineligible for buy-to-let conversion")

	// ErrInsufficientIncome reports that monthly income cannot cover the
	// expenses, or cannot make any progress toward the next purchase.
	ErrInsufficientIncome = errors.New("insufficient income")

	// ErrNonConvergent reports an iterative computation that hit its maximum
	// number of iterations before reaching its target.
	ErrNonConvergent = errors.New("did not converge")
)
