package algebra

import "github.com/pkg/errors"

// Sentinel error kinds. Call sites wrap these with errors.Wrapf to
// attach context; callers that need to distinguish the kind use
// errors.Is against the sentinel.
var (
	// ErrDivisionByZero is returned when dividing by a zero polynomial
	// or a zero ring element.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotDivisible is returned when a monomial or coefficient exact
	// division was required but does not hold.
	ErrNotDivisible = errors.New("not divisible")

	// ErrCoefficientOverflow is returned when an exact coefficient does
	// not fit the declared coefficient type; arises in exponentiation
	// when a multinomial coefficient cannot be represented.
	ErrCoefficientOverflow = errors.New("coefficient overflow")

	// ErrIncompatibleVariables is returned when a conversion or
	// promotion would lose a nonzero exponent.
	ErrIncompatibleVariables = errors.New("incompatible variables")

	// ErrDuplicateVariable is returned by ring construction when a name
	// is repeated. Names are not checked against the variables of a
	// polynomial base coefficient ring.
	ErrDuplicateVariable = errors.New("duplicate variable")

	// ErrInvariantViolation signals an internal consistency failure:
	// a programming error in this library, not a user error.
	ErrInvariantViolation = errors.New("invariant violation")
)
