package database

import "time"

// Deployment is a single recorded transport build decision.
type Deployment struct {
	ID         int64
	GameID     string
	PlayerID   int
	ClickTile  int
	TargetTile int
	SpawnTile  int
	Outcome    string
	CreatedAt  time.Time
}

// Outcome values for deployment history
const (
	OutcomeBuilt   = "built"
	OutcomeRefused = "refused"
)

// RecordDeployment adds a build decision to the history log. Tiles that
// were never resolved are stored as -1.
func (db *DB) RecordDeployment(gameID string, playerID, clickTile, targetTile, spawnTile int, outcome string) error {
	_, err := db.conn.Exec(`
		INSERT INTO deployment_history (game_id, player_id, click_tile, target_tile, spawn_tile, outcome, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, gameID, playerID, clickTile, targetTile, spawnTile, outcome, time.Now())
	return err
}

// GetDeployments retrieves a game's history, ordered chronologically.
func (db *DB) GetDeployments(gameID string) ([]*Deployment, error) {
	return db.queryDeployments(`
		SELECT id, game_id, player_id, click_tile, target_tile, spawn_tile, outcome, created_at
		FROM deployment_history
		WHERE game_id = ?
		ORDER BY id ASC
	`, gameID)
}

// GetDeploymentsSince retrieves history events after a given ID (for
// incremental updates).
func (db *DB) GetDeploymentsSince(gameID string, afterID int64) ([]*Deployment, error) {
	return db.queryDeployments(`
		SELECT id, game_id, player_id, click_tile, target_tile, spawn_tile, outcome, created_at
		FROM deployment_history
		WHERE game_id = ? AND id > ?
		ORDER BY id ASC
	`, gameID, afterID)
}

// ClearDeployments deletes all history for a game.
func (db *DB) ClearDeployments(gameID string) error {
	_, err := db.conn.Exec(`DELETE FROM deployment_history WHERE game_id = ?`, gameID)
	return err
}

func (db *DB) queryDeployments(query string, args ...interface{}) ([]*Deployment, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Deployment
	for rows.Next() {
		d := &Deployment{}
		if err := rows.Scan(&d.ID, &d.GameID, &d.PlayerID, &d.ClickTile, &d.TargetTile, &d.SpawnTile, &d.Outcome, &d.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, d)
	}
	return events, rows.Err()
}
