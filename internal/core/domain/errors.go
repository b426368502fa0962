package domain

import "errors"

// Service errors.
var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// Remote store failure classes. Every adapter failure resolves to exactly one
// of these; none of them is fatal to a caller — the reconciler logs the class
// and carries on with the optimistic local result. A disabled remote is an
// operating mode, not an error, and never surfaces here.
var (
	// ErrRemoteUnavailable wraps any fetch failure: the reconciler falls back
	// to the local mirror without inspecting the cause further.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
	ErrNetworkFailure    = errors.New("remote store unreachable")
	ErrPermissionDenied  = errors.New("remote store denied the request")
	ErrResourceNotFound  = errors.New("remote resource missing")
	ErrUnexpectedStatus  = errors.New("unexpected remote response status")
)

// FailureReason maps a classified remote error to a short label suitable for
// metrics and log fields.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, ErrNetworkFailure):
		return "network"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrResourceNotFound):
		return "not_found"
	case errors.Is(err, ErrUnexpectedStatus):
		return "unexpected_status"
	default:
		return "unknown"
	}
}
