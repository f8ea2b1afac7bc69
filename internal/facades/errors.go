package facades

import "errors"

// Rate provider failures. Every error returned by a facade wraps exactly one
// of them.
var (
	// ErrNetwork covers timeouts, connectivity problems and unexpected statuses.
	ErrNetwork = errors.New("rate provider unreachable")
	// ErrAuth covers a missing, invalid or over-quota credential.
	ErrAuth = errors.New("rate provider rejected credential")
	// ErrDecode covers malformed payloads.
	ErrDecode = errors.New("rate provider payload malformed")
)
