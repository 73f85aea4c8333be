package database

type migration struct {
	id   int
	name string
	sql  string
}

var migrations = []migration{
	{
		id:   1,
		name: "initial_schema",
		sql: `
			-- Games table: one row per running game session
			CREATE TABLE games (
				id TEXT PRIMARY KEY,
				map_id TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				ended_at DATETIME
			);
			CREATE INDEX idx_games_map ON games(map_id);

			-- Deployment history: log of transport build decisions for
			-- replay and debugging
			CREATE TABLE deployment_history (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				game_id TEXT NOT NULL,
				player_id INTEGER NOT NULL,
				click_tile INTEGER NOT NULL,
				target_tile INTEGER NOT NULL,
				spawn_tile INTEGER NOT NULL,
				outcome TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (game_id) REFERENCES games(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_deployment_history_game ON deployment_history(game_id);
		`,
	},
}
