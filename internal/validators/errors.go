package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of the validation error taxonomy. Every
// sentinel below wraps it, so callers can match the whole class with a
// single [errors.Is] check. A validation failure is always raised before
// any mutation is applied — the vault is left untouched.
var ErrValidation = errors.New("validation failed")

var (
	ErrEmptyTableName  = wrap("table name cannot be empty")
	ErrDuplicateTable  = wrap("table with this name already exists")
	ErrTableNotFound   = wrap("table not found")
	ErrEmptyColumnName = wrap("column name cannot be empty")
	ErrDuplicateColumn = wrap("column with this name already exists")
	ErrColumnNotFound  = wrap("column not found")
	ErrLastColumn      = wrap("a table must keep at least one column")
	ErrRowOutOfRange   = wrap("row index out of range")
	ErrEmptyPassword   = wrap("password cannot be empty")
)

func wrap(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
