package store

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS articles (
			handle TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			mime_type TEXT NOT NULL,
			duration_secs REAL NOT NULL DEFAULT 0,
			audio BLOB NOT NULL,
			added_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_articles_added_at ON articles(added_at);

		CREATE TABLE IF NOT EXISTS player_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			now_playing TEXT,
			elapsed REAL,
			playback_speed REAL NOT NULL DEFAULT 1.0
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)

	return err
}
