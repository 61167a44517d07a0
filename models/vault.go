// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package models

// VaultVersion is the current vault schema tag written into every
// serialized vault.
const VaultVersion = 1

// Vault is the decrypted collection of named tables. It exists only in
// client memory while the session is unlocked; at rest it lives inside
// an [Envelope].
type Vault struct {
	Version int               `json:"version"`
	Tables  map[string]*Table `json:"tables"`
}

// Table is an ordered grid of string cells. Every row has exactly
// len(Columns) cells at all times; column operations rewrite all rows in
// lock-step to keep that invariant.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewVault returns an empty vault with the current schema version.
func NewVault() *Vault {
	return &Vault{
		Version: VaultVersion,
		Tables:  make(map[string]*Table),
	}
}

// NewTable creates a table with the given columns and no rows.
func NewTable(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols, Rows: make([][]string, 0)}
}

// Clone returns a deep copy of the vault. The controller hands clones to
// the UI so the in-memory vault stays exclusively owned.
func (v *Vault) Clone() *Vault {
	if v == nil {
		return nil
	}
	out := &Vault{Version: v.Version, Tables: make(map[string]*Table, len(v.Tables))}
	for name, table := range v.Tables {
		out.Tables[name] = table.Clone()
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{
		Columns: make([]string, len(t.Columns)),
		Rows:    make([][]string, len(t.Rows)),
	}
	copy(out.Columns, t.Columns)
	for i, row := range t.Rows {
		out.Rows[i] = make([]string, len(row))
		copy(out.Rows[i], row)
	}
	return out
}

// ColumnIndex returns the position of the named column. Column names are
// case-sensitive.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, col := range t.Columns {
		if col == name {
			return i, true
		}
	}
	return 0, false
}

// AddColumn appends a column and extends every row with an empty cell.
func (t *Table) AddColumn(name string) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], "")
	}
}

// RenameColumn replaces the column name at idx. The caller validates idx.
func (t *Table) RenameColumn(idx int, name string) {
	t.Columns[idx] = name
}

// DeleteColumn removes the column at idx and the matching cell from
// every row.
func (t *Table) DeleteColumn(idx int) {
	t.Columns = append(t.Columns[:idx], t.Columns[idx+1:]...)
	for i, row := range t.Rows {
		t.Rows[i] = append(row[:idx], row[idx+1:]...)
	}
}

// AddRow appends a row built from cells, padded with empty strings or
// truncated to exactly the current column count. Returns the new row
// index.
func (t *Table) AddRow(cells ...string) int {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
	return len(t.Rows) - 1
}

// SetCell overwrites a single cell. The caller validates both indexes.
func (t *Table) SetCell(row, col int, value string) {
	t.Rows[row][col] = value
}

// DeleteRow removes the row at idx.
func (t *Table) DeleteRow(idx int) {
	t.Rows = append(t.Rows[:idx], t.Rows[idx+1:]...)
}
