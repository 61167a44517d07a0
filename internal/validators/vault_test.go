package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkotenko/claviger/models"
)

func TestNewTableName(t *testing.T) {
	v := models.NewVault()
	v.Tables["Logins"] = models.NewTable("login")

	assert.NoError(t, NewTableName(v, "Notes"))
	assert.ErrorIs(t, NewTableName(v, ""), ErrEmptyTableName)
	assert.ErrorIs(t, NewTableName(v, "   "), ErrEmptyTableName)
	assert.ErrorIs(t, NewTableName(v, "Logins"), ErrDuplicateTable)
	// names are case-sensitive, so this is a different table
	assert.NoError(t, NewTableName(v, "logins"))
}

func TestTableExists(t *testing.T) {
	v := models.NewVault()
	v.Tables["Logins"] = models.NewTable("login")

	assert.NoError(t, TableExists(v, "Logins"))
	assert.ErrorIs(t, TableExists(v, "Missing"), ErrTableNotFound)
}

func TestColumnChecks(t *testing.T) {
	table := models.NewTable("login", "password")

	assert.NoError(t, NewColumnName(table, "url"))
	assert.ErrorIs(t, NewColumnName(table, ""), ErrEmptyColumnName)
	assert.ErrorIs(t, NewColumnName(table, "login"), ErrDuplicateColumn)

	assert.NoError(t, ColumnExists(table, "password"))
	assert.ErrorIs(t, ColumnExists(table, "nope"), ErrColumnNotFound)

	assert.NoError(t, ColumnDeletable(table))
	single := models.NewTable("only")
	assert.ErrorIs(t, ColumnDeletable(single), ErrLastColumn)
}

func TestRowIndex(t *testing.T) {
	table := models.NewTable("a")
	table.AddRow("x")

	assert.NoError(t, RowIndex(table, 0))
	assert.ErrorIs(t, RowIndex(table, -1), ErrRowOutOfRange)
	assert.ErrorIs(t, RowIndex(table, 1), ErrRowOutOfRange)
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("hunter2duck"))
	assert.ErrorIs(t, Password(""), ErrEmptyPassword)
}

func TestEverySentinelMatchesRoot(t *testing.T) {
	sentinels := []error{
		ErrEmptyTableName, ErrDuplicateTable, ErrTableNotFound,
		ErrEmptyColumnName, ErrDuplicateColumn, ErrColumnNotFound,
		ErrLastColumn, ErrRowOutOfRange, ErrEmptyPassword,
	}
	for _, err := range sentinels {
		assert.ErrorIs(t, err, ErrValidation)
	}
}
