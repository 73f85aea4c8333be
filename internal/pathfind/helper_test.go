package pathfind

import (
	"fmt"

	"shorebound/internal/game"
)

// gameFromArt builds a game from rows of terrain art. '~' and '.' are
// water ('.' is conventionally used for water expected to classify as
// lake), '#' is unowned land, and digits 1-9 are land owned by that
// player. Players are created up to the highest digit present.
func gameFromArt(rows []string, config game.Config) *game.Game {
	width, height := len(rows[0]), len(rows)
	water := make([]bool, width*height)
	maxPlayer := 0

	for y, row := range rows {
		if len(row) != width {
			panic(fmt.Sprintf("row %d width %d, want %d", y, len(row), width))
		}
		for x, c := range row {
			switch {
			case c == '~' || c == '.':
				water[y*width+x] = true
			case c >= '1' && c <= '9':
				if n := int(c - '0'); n > maxPlayer {
					maxPlayer = n
				}
			}
		}
	}

	g := game.NewGame(game.NewGrid(width, height, water), config)
	for i := 1; i <= maxPlayer; i++ {
		g.AddPlayer(fmt.Sprintf("P%d", i))
	}
	for y, row := range rows {
		for x, c := range row {
			if c >= '1' && c <= '9' {
				g.SetOwner(g.Grid().Ref(x, y), game.PlayerID(c-'0'))
			}
		}
	}
	return g
}

// at is shorthand for a tile reference in test assertions.
func at(g *game.Game, x, y int) game.Tile {
	return g.Grid().Ref(x, y)
}
