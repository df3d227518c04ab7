package activity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/kookie/internal/logger"
	"github.com/MKhiriev/kookie/models"
)

// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
// query fails before it ever reaches the database.
var ErrBuildingSQLQuery = errors.New("error building sql query")

// activityRepository is the SQLite-backed [Recorder].
type activityRepository struct {
	db  *sql.DB
	log *logger.Logger
}

// NewRecorder constructs the SQLite-backed [Recorder] on top of an open
// database (see [NewActivityDB]).
func NewRecorder(db *sql.DB, log *logger.Logger) Recorder {
	return &activityRepository{db: db, log: log}
}

// Record implements [Recorder].
func (r *activityRepository) Record(ctx context.Context, entry models.ActivityEntry) error {
	query, args, err := buildInsertActivityQuery(entry)
	if err != nil {
		r.log.Err(err).Str("func", "Record").Msg("failed to build insert query")

		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.Err(err).Str("func", "Record").Msg("failed to insert activity entry")

		return fmt.Errorf("insert activity entry: %w", err)
	}

	return nil
}

// Recent implements [Recorder].
func (r *activityRepository) Recent(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	query, args, err := buildRecentActivityQuery(limit)
	if err != nil {
		r.log.Err(err).Str("func", "Recent").Msg("failed to build select query")

		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Err(err).Str("func", "Recent").Msg("failed to query activity log")

		return nil, fmt.Errorf("query activity log: %w", err)
	}
	defer rows.Close()

	var entries []models.ActivityEntry
	for rows.Next() {
		var entry models.ActivityEntry
		var op string
		if err := rows.Scan(&entry.ID, &op, &entry.SecretType, &entry.SecretName, &entry.At); err != nil {
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		entry.Op = models.ActivityOp(op)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity rows: %w", err)
	}

	return entries, nil
}
