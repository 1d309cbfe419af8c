package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type ActionKind string

const (
	ActionBid        ActionKind = "bid"
	ActionWithdraw   ActionKind = "withdraw"
	ActionEndAuction ActionKind = "endAuction"
)

type ActionState string

const (
	ActionStateIdle       ActionState = "idle"
	ActionStateSubmitting ActionState = "submitting"
)

type ConnectionState string

const (
	StateDisconnected ConnectionState = "disconnected"
	StateConnecting   ConnectionState = "connecting"
	StateConnected    ConnectionState = "connected"
)

type PendingAction struct {
	ID        string         `json:"id"`
	Kind      ActionKind     `json:"kind"`
	Identity  common.Address `json:"identity"`
	StartedAt time.Time      `json:"started_at"`
}

// TxHandle identifies a submitted transaction. Submission alone says nothing
// about its outcome.
type TxHandle struct {
	Kind        ActionKind     `json:"kind"`
	Hash        common.Hash    `json:"hash"`
	From        common.Address `json:"from"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

type Deployment struct {
	NetworkID string         `json:"network_id"`
	Address   common.Address `json:"address"`
	ABI       string         `json:"abi"`
}
