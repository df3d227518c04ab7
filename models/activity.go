package models

import "time"

// ActivityOp names a vault operation recorded in the activity log.
type ActivityOp string

const (
	ActivityOpInit   ActivityOp = "init"
	ActivityOpUnlock ActivityOp = "unlock"
	ActivityOpLock   ActivityOp = "lock"
	ActivityOpAdd    ActivityOp = "add"
	ActivityOpGet    ActivityOp = "get"
	ActivityOpUpdate ActivityOp = "update"
	ActivityOpDelete ActivityOp = "delete"
)

// ActivityEntry is one row of the local activity log.
//
// The log records operation metadata only. Secret payloads, passwords,
// and key material never appear here; SecretType and SecretName stay
// empty for vault-level operations (init, unlock, lock).
type ActivityEntry struct {
	// ID is the auto-assigned row identifier.
	ID int64

	// Op is the recorded operation.
	Op ActivityOp

	// SecretType is the type of the affected secret, when one was.
	SecretType string

	// SecretName is the name of the affected secret, when one was.
	SecretName string

	// At is when the operation happened (UTC).
	At time.Time
}
