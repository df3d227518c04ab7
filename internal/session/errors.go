package session

import "errors"

// Sentinel errors returned by the session cache. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoSession is returned by Fetch when no usable cached session
	// exists: the session file is absent, unreadable, bound to a
	// different machine, or fails to unseal. All of these collapse
	// into one signal on purpose; the caller falls back to password
	// unlock either way.
	ErrNoSession = errors.New("no active session")

	// ErrSessionExpired is returned by Fetch when a session file was
	// found and is bound to this machine, but its expiry has passed.
	// The stale file is deleted before returning. Distinct from
	// [ErrNoSession] so the caller can tell the user the session
	// timed out rather than silently reprompting.
	ErrSessionExpired = errors.New("session expired")
)
