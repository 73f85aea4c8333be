// Package protocol defines the network message types for client-server
// communication.
package protocol

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MessageType identifies the type of message.
type MessageType string

// Session message types
const (
	TypeAuthenticate MessageType = "authenticate"
	TypeAuthResult   MessageType = "auth_result"
	TypeListMaps     MessageType = "list_maps"
	TypeMapList      MessageType = "map_list"
	TypeJoinGame     MessageType = "join_game"
	TypeJoinedGame   MessageType = "joined_game"
)

// Query message types
const (
	TypeTransportTarget       MessageType = "transport_target"
	TypeTransportTargetResult MessageType = "transport_target_result"
	TypeBuildTransport        MessageType = "build_transport"
	TypeBuildTransportResult  MessageType = "build_transport_result"
	TypeCandidateShores       MessageType = "candidate_shores"
	TypeCandidateShoresResult MessageType = "candidate_shores_result"
	TypeDeploymentHistory     MessageType = "deployment_history"
	TypeDeploymentHistoryList MessageType = "deployment_history_list"
)

// System message types
const (
	TypeWelcome MessageType = "welcome"
	TypeError   MessageType = "error"
	TypePing    MessageType = "ping"
	TypePong    MessageType = "pong"
)

// Message is the envelope for all messages.
type Message struct {
	Type      MessageType     `json:"type"`
	ID        string          `json:"id"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// NewMessage creates a new message with the given type and payload.
func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		ID:        uuid.New().String(),
		Timestamp: time.Now().UnixMilli(),
		Payload:   data,
	}, nil
}

// ParsePayload unmarshals the payload into the given type.
func (m *Message) ParsePayload(v interface{}) error {
	return json.Unmarshal(m.Payload, v)
}

// ErrorCode represents an error type.
type ErrorCode string

const (
	ErrCodeNotAuthenticated ErrorCode = "not_authenticated"
	ErrCodeGameNotFound     ErrorCode = "game_not_found"
	ErrCodeMapNotFound      ErrorCode = "map_not_found"
	ErrCodeInvalidTile      ErrorCode = "invalid_tile"
	ErrCodeTransportLimit   ErrorCode = "transport_limit"
	ErrCodeNoTargetShore    ErrorCode = "no_target_shore"
	ErrCodeOwnTerritory     ErrorCode = "own_territory"
	ErrCodeCannotAttack     ErrorCode = "cannot_attack"
	ErrCodeNoOceanAccess    ErrorCode = "no_ocean_access"
	ErrCodeNoLakeRoute      ErrorCode = "no_lake_route"
	ErrCodeNoSpawnShore     ErrorCode = "no_spawn_shore"
	ErrCodeInternalError    ErrorCode = "internal_error"
)

// ErrorPayload is the payload for error messages.
type ErrorPayload struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
