package activity

import (
	"context"

	"github.com/MKhiriev/kookie/models"
)

// nopRecorder discards every entry and reports no history. It stands in
// for the SQLite recorder when the activity database cannot be opened,
// so vault operations keep working without a log.
type nopRecorder struct{}

// NewNopRecorder returns a [Recorder] that records nothing.
func NewNopRecorder() Recorder {
	return nopRecorder{}
}

func (nopRecorder) Record(context.Context, models.ActivityEntry) error { return nil }

func (nopRecorder) Recent(context.Context, int) ([]models.ActivityEntry, error) { return nil, nil }
