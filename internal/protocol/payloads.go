package protocol

// AuthenticatePayload names the connecting client.
type AuthenticatePayload struct {
	Name string `json:"name"`
}

// AuthResultPayload returns the client's identity token.
type AuthResultPayload struct {
	PlayerToken string `json:"playerToken"`
	Name        string `json:"name"`
}

// WelcomePayload greets a new connection.
type WelcomePayload struct {
	ServerVersion string `json:"serverVersion"`
}

// MapListPayload lists available maps.
type MapListPayload struct {
	Maps []MapEntry `json:"maps"`
}

// MapEntry describes one available map.
type MapEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	RegionCount int    `json:"regionCount"`
}

// JoinGamePayload asks to join (or start) a game on a map.
type JoinGamePayload struct {
	MapID string `json:"mapId"`
}

// JoinedGamePayload confirms a join and describes the player's seat.
type JoinedGamePayload struct {
	GameID   string `json:"gameId"`
	PlayerID uint16 `json:"playerId"`
	MapID    string `json:"mapId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// TransportTargetPayload asks where a transport clicked at Tile would land.
type TransportTargetPayload struct {
	GameID string `json:"gameId"`
	Tile   int    `json:"tile"`
}

// TransportTargetResultPayload carries the resolved landing shore, if any.
type TransportTargetResultPayload struct {
	Found  bool `json:"found"`
	Target int  `json:"target,omitempty"`
}

// BuildTransportPayload asks whether a transport toward Tile may be built.
type BuildTransportPayload struct {
	GameID string `json:"gameId"`
	Tile   int    `json:"tile"`
}

// BuildTransportResultPayload reports the gate outcome and spawn shore.
type BuildTransportResultPayload struct {
	Allowed bool      `json:"allowed"`
	Spawn   int       `json:"spawn,omitempty"`
	Reason  ErrorCode `json:"reason,omitempty"`
}

// CandidateShoresPayload asks for deployment candidates toward Tile.
type CandidateShoresPayload struct {
	GameID string `json:"gameId"`
	Tile   int    `json:"tile"`
}

// CandidateShoresResultPayload lists candidate border shores in priority
// order: BFS-nearest, axis extremes, then samples.
type CandidateShoresResultPayload struct {
	Tiles []int `json:"tiles"`
}

// DeploymentHistoryPayload asks for a game's recorded build decisions.
type DeploymentHistoryPayload struct {
	GameID  string `json:"gameId"`
	AfterID int64  `json:"afterId,omitempty"`
}

// DeploymentRecord is one recorded transport build decision.
type DeploymentRecord struct {
	ID        int64  `json:"id"`
	PlayerID  uint16 `json:"playerId"`
	Click     int    `json:"click"`
	Target    int    `json:"target"`
	Spawn     int    `json:"spawn"`
	Outcome   string `json:"outcome"`
	CreatedAt int64  `json:"createdAt"`
}

// DeploymentHistoryListPayload returns the recorded decisions.
type DeploymentHistoryListPayload struct {
	Events []DeploymentRecord `json:"events"`
}
