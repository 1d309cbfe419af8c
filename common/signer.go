package common

import (
	"github.com/ethereum/go-ethereum/common"
)

// Signer produces 65-byte [R || S || V] signatures with V in {27, 28}.
type Signer interface {
	EthSign(data []byte) ([]byte, error)
	EthAddress() common.Address
	Destroy()
}
