package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/earmark/internal/db"
)

// ErrNotFound is returned when a handle resolves to no stored article.
var ErrNotFound = errors.New("article not found")

// Handle identifies a stored article. Callers treat it as opaque.
type Handle string

// Article is a cached spoken-word rendering of an article.
type Article struct {
	Handle       Handle
	Title        string
	MIMEType     string
	DurationSecs float64
	Audio        []byte
	AddedAt      time.Time
}

// ArticleInfo describes a stored article without its audio payload.
type ArticleInfo struct {
	Handle       Handle
	Title        string
	MIMEType     string
	DurationSecs float64
	AddedAt      time.Time
}

// Resolve loads the full article for handle, audio included.
func (m *Manager) Resolve(handle Handle) (Article, error) {
	row := m.db.QueryRow(`
		SELECT handle, title, mime_type, duration_secs, audio, added_at
		FROM articles WHERE handle = ?
	`, string(handle))

	var a Article
	var h string
	var addedAt int64

	err := row.Scan(&h, &a.Title, &a.MIMEType, &a.DurationSecs, &a.Audio, &addedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Article{}, fmt.Errorf("%q: %w", handle, ErrNotFound)
	}
	if err != nil {
		return Article{}, err
	}

	a.Handle = Handle(h)
	a.AddedAt = time.Unix(addedAt, 0)

	return a, nil
}

// SaveArticles stores articles in one transaction. An existing entry
// with the same handle is overwritten but keeps its original added_at.
func (m *Manager) SaveArticles(articles []Article) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO articles (handle, title, mime_type, duration_secs, audio, added_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(handle) DO UPDATE SET
				title = excluded.title,
				mime_type = excluded.mime_type,
				duration_secs = excluded.duration_secs,
				audio = excluded.audio
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, a := range articles {
			addedAt := a.AddedAt
			if addedAt.IsZero() {
				addedAt = time.Now()
			}
			_, err := stmt.Exec(string(a.Handle), a.Title, a.MIMEType, a.DurationSecs, a.Audio, addedAt.Unix())
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ListArticles returns stored articles without audio, newest first.
func (m *Manager) ListArticles() ([]ArticleInfo, error) {
	rows, err := m.db.Query(`
		SELECT handle, title, mime_type, duration_secs, added_at
		FROM articles
		ORDER BY added_at DESC, handle
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []ArticleInfo
	for rows.Next() {
		var info ArticleInfo
		var h string
		var addedAt int64

		if err := rows.Scan(&h, &info.Title, &info.MIMEType, &info.DurationSecs, &addedAt); err != nil {
			return nil, err
		}

		info.Handle = Handle(h)
		info.AddedAt = time.Unix(addedAt, 0)
		infos = append(infos, info)
	}

	return infos, rows.Err()
}
