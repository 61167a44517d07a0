// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package store

const (
	upsertValue = `
		INSERT INTO kv (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = CURRENT_TIMESTAMP;`

	selectValue = `
		SELECT value
		FROM kv
		WHERE key = $1;`

	deleteValue = `
		DELETE FROM kv
		WHERE key = $1;`
)
