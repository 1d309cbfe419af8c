package models

import (
	"errors"
	"fmt"
	"time"
)

type ErrorKind string

const (
	KindConnection         ErrorKind = "connection"
	KindDeploymentNotFound ErrorKind = "deployment_not_found"
	KindRemoteRead         ErrorKind = "remote_read"
	KindRemoteWrite        ErrorKind = "remote_write"
	KindActionInProgress   ErrorKind = "action_in_progress"
	KindTimeout            ErrorKind = "timeout"
	KindUnknown            ErrorKind = "unknown"
)

// Sentinels for errors.Is. ErrDeploymentNotFound errors also match
// ErrConnection.
var (
	ErrConnection         = errors.New("connection error")
	ErrDeploymentNotFound = errors.New("deployment not found")
	ErrRemoteRead         = errors.New("remote read error")
	ErrRemoteWrite        = errors.New("remote write error")
	ErrActionInProgress   = errors.New("action in progress")
	ErrTimeout            = errors.New("timeout")
)

// AuctionError carries the kind of failure, the operation that produced it
// and the remote message verbatim.
type AuctionError struct {
	Kind    ErrorKind
	Op      string
	Message string
	Err     error
}

func (e *AuctionError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *AuctionError) Unwrap() error {
	return e.Err
}

func (e *AuctionError) Is(target error) bool {
	switch target {
	case ErrConnection:
		return e.Kind == KindConnection || e.Kind == KindDeploymentNotFound
	case ErrDeploymentNotFound:
		return e.Kind == KindDeploymentNotFound
	case ErrRemoteRead:
		return e.Kind == KindRemoteRead
	case ErrRemoteWrite:
		return e.Kind == KindRemoteWrite
	case ErrActionInProgress:
		return e.Kind == KindActionInProgress
	case ErrTimeout:
		return e.Kind == KindTimeout
	}
	return false
}

func newError(kind ErrorKind, op string, cause error, format string, args ...interface{}) *AuctionError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" && cause != nil {
		msg = cause.Error()
	}
	return &AuctionError{Kind: kind, Op: op, Message: msg, Err: cause}
}

func NewConnectionError(op string, cause error) *AuctionError {
	return newError(KindConnection, op, cause, "")
}

func NewDeploymentNotFoundError(networkID string) *AuctionError {
	return newError(KindDeploymentNotFound, "resolve deployment", nil, "no auction deployment for network %s", networkID)
}

func NewRemoteReadError(op string, cause error) *AuctionError {
	return newError(KindRemoteRead, op, cause, "")
}

// NewRemoteWriteError keeps message as given; it is usually the contract's
// revert reason.
func NewRemoteWriteError(op string, message string, cause error) *AuctionError {
	if message == "" && cause != nil {
		message = cause.Error()
	}
	return &AuctionError{Kind: KindRemoteWrite, Op: op, Message: message, Err: cause}
}

func NewActionInProgressError(kind ActionKind, pending PendingAction) *AuctionError {
	return newError(KindActionInProgress, string(kind), nil,
		"%s already in progress for %s (started %s)", kind, pending.Identity.Hex(), pending.StartedAt.Format(time.RFC3339))
}

func NewTimeoutError(op string, cause error) *AuctionError {
	return newError(KindTimeout, op, cause, "")
}

// ErrorRecord is what the error surface shows to the user.
type ErrorRecord struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
	At      time.Time `json:"at"`
}

// KindOf returns the taxonomy kind of err, or KindUnknown.
func KindOf(err error) ErrorKind {
	var auctionErr *AuctionError
	if errors.As(err, &auctionErr) {
		return auctionErr.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
