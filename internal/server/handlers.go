package server

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"shorebound/internal/database"
	"shorebound/internal/game"
	"shorebound/internal/pathfind"
	"shorebound/internal/protocol"
	"shorebound/pkg/maps"
)

// Handlers processes incoming messages.
type Handlers struct {
	hub *Hub
}

// NewHandlers creates a new handler set.
func NewHandlers(hub *Hub) *Handlers {
	return &Handlers{hub: hub}
}

// Handle routes a message to the appropriate handler.
func (h *Handlers) Handle(client *Client, msg *protocol.Message) {
	var err error

	switch msg.Type {
	case protocol.TypeAuthenticate:
		err = h.handleAuthenticate(client, msg)
	case protocol.TypeListMaps:
		err = h.handleListMaps(client, msg)
	case protocol.TypeJoinGame:
		err = h.handleJoinGame(client, msg)
	case protocol.TypeTransportTarget:
		err = h.handleTransportTarget(client, msg)
	case protocol.TypeBuildTransport:
		err = h.handleBuildTransport(client, msg)
	case protocol.TypeCandidateShores:
		err = h.handleCandidateShores(client, msg)
	case protocol.TypeDeploymentHistory:
		err = h.handleDeploymentHistory(client, msg)
	case protocol.TypePing:
		err = h.reply(client, msg, protocol.TypePong, struct{}{})
	default:
		err = errors.New("unknown message type")
	}

	if err != nil {
		h.sendError(client, msg.ID, protocol.ErrCodeInternalError, err)
	}
}

// handleAuthenticate names the connection and hands out an identity token.
func (h *Handlers) handleAuthenticate(client *Client, msg *protocol.Message) error {
	var payload protocol.AuthenticatePayload
	if err := msg.ParsePayload(&payload); err != nil {
		return err
	}

	name := payload.Name
	if name == "" {
		name = "Player"
	}
	client.Name = name
	if client.Token == "" {
		client.Token = uuid.New().String()
	}
	log.Printf("Client authenticated: %s", name)

	return h.reply(client, msg, protocol.TypeAuthResult, protocol.AuthResultPayload{
		PlayerToken: client.Token,
		Name:        name,
	})
}

// handleListMaps returns the registered maps.
func (h *Handlers) handleListMaps(client *Client, msg *protocol.Message) error {
	infos := maps.List()
	entries := make([]protocol.MapEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, protocol.MapEntry{
			ID:          info.ID,
			Name:        info.Name,
			Width:       info.Width,
			Height:      info.Height,
			RegionCount: info.RegionCount,
		})
	}
	return h.reply(client, msg, protocol.TypeMapList, protocol.MapListPayload{Maps: entries})
}

// handleJoinGame seats the client in a session on the requested map,
// starting one if none is running.
func (h *Handlers) handleJoinGame(client *Client, msg *protocol.Message) error {
	if client.Token == "" {
		h.sendError(client, msg.ID, protocol.ErrCodeNotAuthenticated, errors.New("authenticate first"))
		return nil
	}

	var payload protocol.JoinGamePayload
	if err := msg.ParsePayload(&payload); err != nil {
		return err
	}

	m := maps.Get(payload.MapID)
	if m == nil {
		h.sendError(client, msg.ID, protocol.ErrCodeMapNotFound, errors.New("map not found"))
		return nil
	}

	// One session per map for now.
	session := h.hub.Session(payload.MapID)
	if session == nil {
		session = NewSession(m)
		session.ID = payload.MapID
		h.hub.AddSession(session)
		if err := h.hub.server.db.CreateGame(session.ID, m.ID); err != nil {
			log.Printf("Failed to persist game %s: %v", session.ID, err)
		}
		log.Printf("Started game on map %s", m.ID)
	}

	playerID := session.Join(client.Token, client.Name)
	client.GameID = session.ID

	return h.reply(client, msg, protocol.TypeJoinedGame, protocol.JoinedGamePayload{
		GameID:   session.ID,
		PlayerID: uint16(playerID),
		MapID:    m.ID,
		Width:    m.Terrain.Width(),
		Height:   m.Terrain.Height(),
	})
}

// handleTransportTarget resolves a clicked tile to a landing shore.
func (h *Handlers) handleTransportTarget(client *Client, msg *protocol.Message) error {
	var payload protocol.TransportTargetPayload
	if err := msg.ParsePayload(&payload); err != nil {
		return err
	}

	session, _, ok := h.resolveSeat(client, msg, payload.GameID)
	if !ok {
		return nil
	}
	if !session.InBounds(payload.Tile) {
		h.sendError(client, msg.ID, protocol.ErrCodeInvalidTile, errors.New("tile out of range"))
		return nil
	}

	target, found := session.TransportTarget(game.Tile(payload.Tile))
	result := protocol.TransportTargetResultPayload{Found: found}
	if found {
		result.Target = int(target)
	}
	return h.reply(client, msg, protocol.TypeTransportTargetResult, result)
}

// handleBuildTransport runs the build gate and records the decision.
func (h *Handlers) handleBuildTransport(client *Client, msg *protocol.Message) error {
	var payload protocol.BuildTransportPayload
	if err := msg.ParsePayload(&payload); err != nil {
		return err
	}

	session, playerID, ok := h.resolveSeat(client, msg, payload.GameID)
	if !ok {
		return nil
	}
	if !session.InBounds(payload.Tile) {
		h.sendError(client, msg.ID, protocol.ErrCodeInvalidTile, errors.New("tile out of range"))
		return nil
	}

	click := game.Tile(payload.Tile)
	spawn, err := session.BuildTransport(playerID, click)

	result := protocol.BuildTransportResultPayload{Allowed: err == nil}
	outcome := database.OutcomeBuilt
	if err != nil {
		result.Reason = buildErrorCode(err)
		outcome = database.OutcomeRefused
	} else {
		result.Spawn = int(spawn)
	}

	target, _ := session.TransportTarget(click)
	if dbErr := h.hub.server.db.RecordDeployment(session.ID, int(playerID), int(click), int(target), int(spawn), outcome); dbErr != nil {
		log.Printf("Failed to record deployment: %v", dbErr)
	}

	return h.reply(client, msg, protocol.TypeBuildTransportResult, result)
}

// handleCandidateShores enumerates deployment candidates toward a tile.
func (h *Handlers) handleCandidateShores(client *Client, msg *protocol.Message) error {
	var payload protocol.CandidateShoresPayload
	if err := msg.ParsePayload(&payload); err != nil {
		return err
	}

	session, playerID, ok := h.resolveSeat(client, msg, payload.GameID)
	if !ok {
		return nil
	}
	if !session.InBounds(payload.Tile) {
		h.sendError(client, msg.ID, protocol.ErrCodeInvalidTile, errors.New("tile out of range"))
		return nil
	}

	tiles := session.CandidateShores(playerID, game.Tile(payload.Tile))
	result := protocol.CandidateShoresResultPayload{Tiles: make([]int, len(tiles))}
	for i, t := range tiles {
		result.Tiles[i] = int(t)
	}
	return h.reply(client, msg, protocol.TypeCandidateShoresResult, result)
}

// handleDeploymentHistory returns a game's recorded build decisions.
func (h *Handlers) handleDeploymentHistory(client *Client, msg *protocol.Message) error {
	var payload protocol.DeploymentHistoryPayload
	if err := msg.ParsePayload(&payload); err != nil {
		return err
	}

	events, err := h.hub.server.db.GetDeploymentsSince(payload.GameID, payload.AfterID)
	if err != nil {
		return err
	}

	result := protocol.DeploymentHistoryListPayload{
		Events: make([]protocol.DeploymentRecord, 0, len(events)),
	}
	for _, e := range events {
		result.Events = append(result.Events, protocol.DeploymentRecord{
			ID:        e.ID,
			PlayerID:  uint16(e.PlayerID),
			Click:     e.ClickTile,
			Target:    e.TargetTile,
			Spawn:     e.SpawnTile,
			Outcome:   e.Outcome,
			CreatedAt: e.CreatedAt.UnixMilli(),
		})
	}
	return h.reply(client, msg, protocol.TypeDeploymentHistoryList, result)
}

// resolveSeat finds the session and the client's seat in it, reporting
// protocol errors to the client itself.
func (h *Handlers) resolveSeat(client *Client, msg *protocol.Message, gameID string) (*Session, game.PlayerID, bool) {
	session := h.hub.Session(gameID)
	if session == nil {
		h.sendError(client, msg.ID, protocol.ErrCodeGameNotFound, errors.New("game not found"))
		return nil, game.NoPlayer, false
	}
	playerID, ok := session.Player(client.Token)
	if !ok {
		h.sendError(client, msg.ID, protocol.ErrCodeNotAuthenticated, errors.New("not seated in this game"))
		return nil, game.NoPlayer, false
	}
	return session, playerID, true
}

// buildErrorCode maps targeting errors to protocol error codes.
func buildErrorCode(err error) protocol.ErrorCode {
	switch {
	case errors.Is(err, pathfind.ErrTransportLimit):
		return protocol.ErrCodeTransportLimit
	case errors.Is(err, pathfind.ErrNoTargetShore):
		return protocol.ErrCodeNoTargetShore
	case errors.Is(err, pathfind.ErrOwnTerritory):
		return protocol.ErrCodeOwnTerritory
	case errors.Is(err, pathfind.ErrCannotAttack):
		return protocol.ErrCodeCannotAttack
	case errors.Is(err, pathfind.ErrNoOceanAccess):
		return protocol.ErrCodeNoOceanAccess
	case errors.Is(err, pathfind.ErrNoLakeRoute):
		return protocol.ErrCodeNoLakeRoute
	case errors.Is(err, pathfind.ErrNoSpawnShore):
		return protocol.ErrCodeNoSpawnShore
	default:
		return protocol.ErrCodeInternalError
	}
}

// reply sends a response correlated to the request message.
func (h *Handlers) reply(client *Client, req *protocol.Message, msgType protocol.MessageType, payload interface{}) error {
	msg, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		return err
	}
	msg.ID = req.ID
	client.Send(msg)
	return nil
}

// sendError reports a failure to the client.
func (h *Handlers) sendError(client *Client, msgID string, code protocol.ErrorCode, err error) {
	payload := protocol.ErrorPayload{
		Code:    code,
		Message: err.Error(),
	}
	msg, merr := protocol.NewMessage(protocol.TypeError, payload)
	if merr != nil {
		return
	}
	msg.ID = msgID
	client.Send(msg)
}
