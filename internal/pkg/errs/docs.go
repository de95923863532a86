// Package errs holds the error vocabulary shared by the domain, the use cases and the
// adapters.
//
// Every error kind is a sentinel plus a struct carrying the details. The struct unwraps to
// its sentinel, so callers classify with errors.Is and never inspect messages:
//
//	ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange  client input, see IsValidation
//	ErrObjectNotFound                                            lookup by id or tracking number
//	ErrAccessDenied                                              role or ownership check failed
//
// Domain code often wraps a package-level sentinel around one of these, for example
// fmt.Errorf("%w: %w", parcel.ErrParcelIsNotPending, errs.NewValueIsInvalidError(...)),
// so that both the specific reason and the error family survive.
package errs
