package store

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "earmark"
	dbFileName = "earmark.db"
)

// Manager owns the article database: the cached audio articles and the
// single persisted player state row.
type Manager struct {
	db *sql.DB
}

// Open opens the database at its default XDG data location.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return openPath(dbPath)
}

// OpenAt opens the database inside dir, for configurations that
// override the data location.
func OpenAt(dir string) (*Manager, error) {
	return openPath(filepath.Join(dir, dbFileName))
}

func openPath(dbPath string) (*Manager, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}
