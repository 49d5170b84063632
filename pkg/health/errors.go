package health

import "errors"

var (
	// ErrCheckFailed marks a probe that reached its target and got a bad
	// answer. Probes return it when no richer error exists.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout replaces context deadline errors on probes that
	// exceeded the shared readiness timeout.
	ErrCheckTimeout = errors.New("health: check timeout")
)
