// Package guard provides ConstructorGuard, a marker embedded in value objects, aggregates,
// commands and queries to tell instances built by their constructor apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing struct went through its constructor.
//
// Example:
//
//	var ErrTrackCommandIsNotConstructed = errors.New("TrackParcelQuery must be created via NewTrackParcelQuery")
//
//	type TrackParcelQuery struct {
//	    trackingNumber string
//	    guard          guard.ConstructorGuard
//	}
//
//	func (q TrackParcelQuery) Validate() error {
//	    return q.guard.Validate(ErrTrackCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
