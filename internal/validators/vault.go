// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

// Package validators checks vault mutations before they are applied.
// All checks are pure: they inspect the vault and the proposed input and
// return a sentinel wrapping [ErrValidation], never modifying anything.
package validators

import (
	"strings"

	"github.com/dkotenko/claviger/models"
)

// NewTableName validates the name for a table about to be created.
// Names are case-sensitive and must be unique within the vault.
func NewTableName(v *models.Vault, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyTableName
	}
	if _, ok := v.Tables[name]; ok {
		return ErrDuplicateTable
	}
	return nil
}

// TableExists validates that the named table is present.
func TableExists(v *models.Vault, name string) error {
	if _, ok := v.Tables[name]; !ok {
		return ErrTableNotFound
	}
	return nil
}

// NewColumnName validates the name for a column about to be added to or
// renamed within table.
func NewColumnName(table *models.Table, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyColumnName
	}
	if _, ok := table.ColumnIndex(name); ok {
		return ErrDuplicateColumn
	}
	return nil
}

// ColumnExists validates that the named column is present in table.
func ColumnExists(table *models.Table, name string) error {
	if _, ok := table.ColumnIndex(name); !ok {
		return ErrColumnNotFound
	}
	return nil
}

// ColumnDeletable validates that removing one column still leaves the
// table with at least one.
func ColumnDeletable(table *models.Table) error {
	if len(table.Columns) <= 1 {
		return ErrLastColumn
	}
	return nil
}

// RowIndex validates that idx addresses an existing row of table.
func RowIndex(table *models.Table, idx int) error {
	if idx < 0 || idx >= len(table.Rows) {
		return ErrRowOutOfRange
	}
	return nil
}

// Password validates a master password candidate. Only emptiness is
// rejected: length and complexity policy belong to the user, and the
// KDF cost is the actual brute-force mitigation.
func Password(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}
