package store

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/earmark/internal/db"
)

// PlayerState is the persisted playback position: which article was
// requested, how far in, and at what speed.
type PlayerState struct {
	NowPlaying    Handle   // "" when nothing was playing
	Elapsed       *float64 // seconds into the article; nil until first reported
	PlaybackSpeed float64
}

// LoadPlayerState returns the saved player state, or nil when nothing
// has been saved yet.
func (m *Manager) LoadPlayerState() (*PlayerState, error) {
	row := m.db.QueryRow(`
		SELECT now_playing, elapsed, playback_speed
		FROM player_state WHERE id = 1
	`)

	var state PlayerState
	var nowPlaying sql.NullString
	var elapsed sql.NullFloat64

	err := row.Scan(&nowPlaying, &elapsed, &state.PlaybackSpeed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.NowPlaying = Handle(dbutil.NullStringValue(nowPlaying))
	state.Elapsed = dbutil.NullFloat64ToPtr(elapsed)

	return &state, nil
}

// SavePlayerState overwrites the saved player state.
func (m *Manager) SavePlayerState(state PlayerState) error {
	_, err := m.db.Exec(`
		INSERT INTO player_state (id, now_playing, elapsed, playback_speed)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			now_playing = excluded.now_playing,
			elapsed = excluded.elapsed,
			playback_speed = excluded.playback_speed
	`, dbutil.EmptyToNullString(string(state.NowPlaying)),
		dbutil.PtrToNullFloat64(state.Elapsed),
		state.PlaybackSpeed)

	return err
}
