package activity

import (
	"context"

	"github.com/MKhiriev/kookie/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/activity_recorder_mock.go -package=mock

// Recorder keeps the local activity log: which vault operations ran and
// when, never what the secrets contained.
//
// Recording is advisory. Vault operations must not fail just because
// their activity entry could not be written; callers log Record errors
// and move on.
type Recorder interface {
	// Record appends one entry to the activity log.
	Record(ctx context.Context, entry models.ActivityEntry) error

	// Recent returns up to limit entries, newest first. A limit of
	// zero or less applies the default page size.
	Recent(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}
