package localstate

import (
	"database/sql"
)

// EnsureSchema creates the journal's key-value table if it does not exist.
// Each named collection (beans, recipes) is stored as one row holding the
// collection serialized as a JSON array.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS Collections (
            Name TEXT PRIMARY KEY,
            Payload TEXT NOT NULL,
            UpdateTime TIMESTAMP NOT NULL
        );`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
