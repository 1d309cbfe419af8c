package util

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

const executionReverted = "execution reverted"

// RevertReason extracts the contract's revert string from a provider error.
// The reason is returned as the contract wrote it. Errors without one yield
// the provider's message unchanged.
func RevertReason(err error) string {
	if err == nil {
		return ""
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := UnpackRevertData(dataErr.ErrorData()); ok {
			return reason
		}
	}

	msg := err.Error()
	if i := strings.LastIndex(msg, executionReverted+":"); i >= 0 {
		if reason := strings.TrimSpace(msg[i+len(executionReverted)+1:]); reason != "" {
			return reason
		}
	}
	return msg
}

// UnpackRevertData decodes Error(string) revert data as returned in the data
// field of a JSON-RPC error.
func UnpackRevertData(data interface{}) (string, bool) {
	var raw []byte
	switch v := data.(type) {
	case string:
		decoded, err := hexutil.Decode(v)
		if err != nil {
			return "", false
		}
		raw = decoded
	case []byte:
		raw = v
	default:
		return "", false
	}
	reason, err := abi.UnpackRevert(raw)
	if err != nil {
		return "", false
	}
	return reason, true
}

// IsReverted reports whether the provider rejected the call because the
// contract reverted.
func IsReverted(err error) bool {
	if err == nil {
		return false
	}
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if _, ok := UnpackRevertData(dataErr.ErrorData()); ok {
			return true
		}
	}
	return strings.Contains(err.Error(), executionReverted)
}
