// Package errs holds the domain error taxonomy shared by controllers and
// routes. Routes map these onto HTTP statuses; anything else is reported as
// an opaque internal error.
package errs

import "fmt"

// NotFoundError signals that the requested entity does not exist or is not
// visible to the caller.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// NotFound builds a NotFoundError for the given resource ("cart", "product",
// "order", "seller").
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// BusinessLogicError signals a well-formed request that violates a domain
// rule. Reason is a stable snake_case code such as "low_on_stock" or
// "empty_cart".
type BusinessLogicError struct {
	Reason string
}

func (e *BusinessLogicError) Error() string {
	return e.Reason
}

func BusinessLogic(reason string) error {
	return &BusinessLogicError{Reason: reason}
}

// DuplicateKeyError signals an attempt to create a uniquely-keyed entity
// that already exists.
type DuplicateKeyError struct {
	Entity string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate_%s", e.Entity)
}

func DuplicateKey(entity string) error {
	return &DuplicateKeyError{Entity: entity}
}
