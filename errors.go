package bmw

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is matched by every DomainError (use errors.Is).
	ErrDomain = errors.New("value outside of function domain")
	// ErrInvalidArgument is returned for unknown unit systems and structurally invalid parameters.
	ErrInvalidArgument = errors.New("invalid argument")
)

// DomainError is returned when the argument of an inverse trigonometric function
// or of a square root is genuinely outside of its domain, i.e. the inputs do not
// describe a real trajectory.
type DomainError struct {
	Op    string  // Computation which failed
	Value float64 // Offending argument
}

// Error returns the error message for DomainError.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: argument %.9g outside of domain", e.Op, e.Value)
}

// Is makes errors.Is(err, ErrDomain) true for any DomainError.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}
