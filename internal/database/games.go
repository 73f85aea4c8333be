package database

import "time"

// GameRow is a persisted game session.
type GameRow struct {
	ID        string
	MapID     string
	CreatedAt time.Time
	EndedAt   *time.Time
}

// CreateGame records a new game session.
func (db *DB) CreateGame(id, mapID string) error {
	_, err := db.conn.Exec(`
		INSERT INTO games (id, map_id, created_at) VALUES (?, ?, ?)
	`, id, mapID, time.Now())
	return err
}

// EndGame marks a game session as finished.
func (db *DB) EndGame(id string) error {
	_, err := db.conn.Exec(`UPDATE games SET ended_at = ? WHERE id = ?`, time.Now(), id)
	return err
}

// ListGames returns all recorded game sessions, newest first.
func (db *DB) ListGames() ([]*GameRow, error) {
	rows, err := db.conn.Query(`
		SELECT id, map_id, created_at, ended_at
		FROM games
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []*GameRow
	for rows.Next() {
		g := &GameRow{}
		if err := rows.Scan(&g.ID, &g.MapID, &g.CreatedAt, &g.EndedAt); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}
