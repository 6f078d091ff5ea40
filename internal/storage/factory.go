package storage

import "github.com/kmcrane/urge/internal/storage/sqlite"

// NewSQLiteStore returns the default SQLite-backed provider.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}
