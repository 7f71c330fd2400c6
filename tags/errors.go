package tags

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the tag algebra. All failures are deterministic
// functions of the input; none are transient.
var (
	// ErrDoubleNegation is returned when constructing a Negated around a
	// tag that is already negated.
	ErrDoubleNegation = errors.New("double negative tags are not allowed")

	// ErrUnresolvedReference is returned when a generator handle cannot be
	// resolved against the supplied generator context.
	ErrUnresolvedReference = errors.New("unresolved generator reference")

	// ErrUnresolvedTagName is returned when text matches no vocabulary member.
	ErrUnresolvedTagName = errors.New("unresolved tag name")

	// ErrIllegalOperation is returned when an operation is not defined for
	// the given tag kind.
	ErrIllegalOperation = errors.New("illegal tag operation")
)

// UnresolvedTagNameError reports text that matched none of the searched
// vocabularies.
type UnresolvedTagNameError struct {
	Input        string
	Vocabularies []string
}

// Error implements the error interface.
func (e *UnresolvedTagNameError) Error() string {
	return fmt.Sprintf("could not resolve tag name %q, see %s for available tag names",
		e.Input, strings.Join(e.Vocabularies, " and "))
}

// Unwrap returns ErrUnresolvedTagName.
func (e *UnresolvedTagNameError) Unwrap() error {
	return ErrUnresolvedTagName
}
