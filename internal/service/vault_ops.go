// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dkotenko/claviger/internal/validators"
	"github.com/dkotenko/claviger/models"
)

// TableNames implements [SessionService].
func (s *sessionService) TableNames() ([]string, error) {
	var names []string
	err := s.read(func(v *models.Vault) error {
		names = make([]string, 0, len(v.Tables))
		for name := range v.Tables {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil
	})
	return names, err
}

// Table implements [SessionService]. The returned table is a deep copy;
// callers can render or edit it freely without touching session state.
func (s *sessionService) Table(name string) (*models.Table, error) {
	var table *models.Table
	err := s.read(func(v *models.Vault) error {
		if err := validators.TableExists(v, name); err != nil {
			return err
		}
		table = v.Tables[name].Clone()
		return nil
	})
	return table, err
}

// CreateTable implements [SessionService].
func (s *sessionService) CreateTable(ctx context.Context, name string, columns ...string) error {
	return s.mutate(ctx, func(v *models.Vault) error {
		if err := validators.NewTableName(v, name); err != nil {
			return err
		}
		table := models.NewTable(columns...)
		if err := validateColumnSet(table.Columns); err != nil {
			return err
		}
		v.Tables[name] = table
		return nil
	})
}

// RenameTable implements [SessionService].
func (s *sessionService) RenameTable(ctx context.Context, oldName, newName string) error {
	return s.mutate(ctx, func(v *models.Vault) error {
		if err := validators.TableExists(v, oldName); err != nil {
			return err
		}
		if err := validators.NewTableName(v, newName); err != nil {
			return err
		}
		v.Tables[newName] = v.Tables[oldName]
		delete(v.Tables, oldName)
		return nil
	})
}

// DeleteTable implements [SessionService].
func (s *sessionService) DeleteTable(ctx context.Context, name string) error {
	return s.mutate(ctx, func(v *models.Vault) error {
		if err := validators.TableExists(v, name); err != nil {
			return err
		}
		delete(v.Tables, name)
		return nil
	})
}

// AddColumn implements [SessionService].
func (s *sessionService) AddColumn(ctx context.Context, table, column string) error {
	return s.mutate(ctx, func(v *models.Vault) error {
		t, err := lookupTable(v, table)
		if err != nil {
			return err
		}
		if err = validators.NewColumnName(t, column); err != nil {
			return err
		}
		t.AddColumn(column)
		return nil
	})
}

// RenameColumn implements [SessionService].
func (s *sessionService) RenameColumn(ctx context.Context, table, oldColumn, newColumn string) error {
	return s.mutate(ctx, func(v *models.Vault) error {
		t, err := lookupTable(v, table)
		if err != nil {
			return err
		}
		idx, ok := t.ColumnIndex(oldColumn)
		if !ok {
			return validators.ErrColumnNotFound
		}
		if oldColumn == newColumn {
			return nil
		}
		if err = validators.NewColumnName(t, newColumn); err != nil {
			return err
		}
		t.RenameColumn(idx, newColumn)
		return nil
	})
}

// DeleteColumn implements [SessionService].
func (s *sessionService) DeleteColumn(ctx context.Context, table, column string) error {
	return s.mutate(ctx, func(v *models.Vault) error {
		t, err := lookupTable(v, table)
		if err != nil {
			return err
		}
		idx, ok := t.ColumnIndex(column)
		if !ok {
			return validators.ErrColumnNotFound
		}
		if err = validators.ColumnDeletable(t); err != nil {
			return err
		}
		t.DeleteColumn(idx)
		return nil
	})
}

// AddRow implements [SessionService]. Returns the index of the new row.
func (s *sessionService) AddRow(ctx context.Context, table string, cells ...string) (int, error) {
	idx := -1
	err := s.mutate(ctx, func(v *models.Vault) error {
		t, err := lookupTable(v, table)
		if err != nil {
			return err
		}
		idx = t.AddRow(cells...)
		return nil
	})
	if err != nil {
		return -1, err
	}
	return idx, nil
}

// UpdateCell implements [SessionService].
func (s *sessionService) UpdateCell(ctx context.Context, table string, row int, column, value string) error {
	return s.mutate(ctx, func(v *models.Vault) error {
		t, err := lookupTable(v, table)
		if err != nil {
			return err
		}
		col, ok := t.ColumnIndex(column)
		if !ok {
			return validators.ErrColumnNotFound
		}
		if err = validators.RowIndex(t, row); err != nil {
			return err
		}
		t.SetCell(row, col, value)
		return nil
	})
}

// DeleteRow implements [SessionService].
func (s *sessionService) DeleteRow(ctx context.Context, table string, row int) error {
	return s.mutate(ctx, func(v *models.Vault) error {
		t, err := lookupTable(v, table)
		if err != nil {
			return err
		}
		if err = validators.RowIndex(t, row); err != nil {
			return err
		}
		t.DeleteRow(row)
		return nil
	})
}

// ImportCSV implements [SessionService]. The first CSV record supplies
// the column names; an existing table with the same name is replaced
// wholesale. Records shorter or longer than the header are padded or
// truncated to keep rows rectangular.
func (s *sessionService) ImportCSV(ctx context.Context, table, data string) error {
	return s.mutate(ctx, func(v *models.Vault) error {
		if strings.TrimSpace(table) == "" {
			return validators.ErrEmptyTableName
		}

		r := csv.NewReader(strings.NewReader(data))
		r.FieldsPerRecord = -1
		records, err := r.ReadAll()
		if err != nil {
			return fmt.Errorf("parse csv: %w", err)
		}
		if len(records) == 0 || len(records[0]) == 0 {
			return validators.ErrEmptyColumnName
		}

		t := models.NewTable(records[0]...)
		if err := validateColumnSet(t.Columns); err != nil {
			return err
		}
		for _, record := range records[1:] {
			t.AddRow(record...)
		}
		v.Tables[table] = t
		return nil
	})
}

// ExportCSV implements [SessionService].
func (s *sessionService) ExportCSV(table string) (string, error) {
	var out string
	err := s.read(func(v *models.Vault) error {
		t, err := lookupTable(v, table)
		if err != nil {
			return err
		}

		var b strings.Builder
		w := csv.NewWriter(&b)
		if err = w.Write(t.Columns); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
		if err = w.WriteAll(t.Rows); err != nil {
			return fmt.Errorf("write csv rows: %w", err)
		}
		out = b.String()
		return nil
	})
	return out, err
}

// ExportBackup implements [SessionService].
func (s *sessionService) ExportBackup() (string, error) {
	var out string
	err := s.read(func(v *models.Vault) error {
		payload, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode backup: %w", err)
		}
		out = string(payload)
		return nil
	})
	return out, err
}

// SaveSyncSettings implements [SessionService]. The tuple is persisted
// first, then handed to the live transport, so a restart and the running
// session see the same remote.
func (s *sessionService) SaveSyncSettings(ctx context.Context, creds models.SyncCredentials) error {
	if !creds.Complete() {
		return ErrIncompleteCredentials
	}
	if err := s.local.SaveCredentials(ctx, creds); err != nil {
		return fmt.Errorf("persist sync credentials: %w", err)
	}
	s.remote.SetCredentials(creds)
	s.logger.Info().Str("func", "sessionService.SaveSyncSettings").
		Str("owner", creds.Owner).Str("repo", creds.Repo).Msg("sync settings updated")
	return nil
}

// SyncSettings implements [SessionService].
func (s *sessionService) SyncSettings(ctx context.Context) (models.SyncCredentials, error) {
	return s.local.LoadCredentials(ctx)
}

// TestSyncSettings implements [SessionService].
func (s *sessionService) TestSyncSettings(ctx context.Context, creds models.SyncCredentials) error {
	if !creds.Complete() {
		return ErrIncompleteCredentials
	}
	return s.remote.TestConnection(ctx, creds)
}

// SyncNow implements [SessionService].
func (s *sessionService) SyncNow(ctx context.Context) error {
	return s.orchestrator.Flush(ctx)
}

// PendingSync implements [SessionService].
func (s *sessionService) PendingSync(ctx context.Context) (bool, error) {
	return s.orchestrator.Pending(ctx)
}

// validateColumnSet rejects an empty header and blank or duplicate
// column names before a new table is accepted.
func validateColumnSet(columns []string) error {
	if len(columns) == 0 {
		return validators.ErrEmptyColumnName
	}
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if strings.TrimSpace(col) == "" {
			return validators.ErrEmptyColumnName
		}
		if _, dup := seen[col]; dup {
			return validators.ErrDuplicateColumn
		}
		seen[col] = struct{}{}
	}
	return nil
}

func lookupTable(v *models.Vault, name string) (*models.Table, error) {
	t, ok := v.Tables[name]
	if !ok {
		return nil, validators.ErrTableNotFound
	}
	return t, nil
}
