// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package activity

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/kookie/models"
)

// defaultRecentLimit caps Recent when the caller does not pick a page
// size.
const defaultRecentLimit = 20

var activityColumns = []string{"id", "op", "secret_type", "secret_name", "occurred_at"}

// buildInsertActivityQuery builds the INSERT for one activity entry.
// SQLite uses ? placeholders, squirrel's default format.
func buildInsertActivityQuery(entry models.ActivityEntry) (string, []any, error) {
	return sq.Insert("activity_log").
		Columns("op", "secret_type", "secret_name", "occurred_at").
		Values(string(entry.Op), entry.SecretType, entry.SecretName, entry.At).
		ToSql()
}

// buildRecentActivityQuery builds the newest-first SELECT over the
// activity log.
func buildRecentActivityQuery(limit int) (string, []any, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	return sq.Select(activityColumns...).
		From("activity_log").
		OrderBy("occurred_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}
