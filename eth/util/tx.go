package util

import (
	"math/big"
	"time"

	"github.com/dan13ram/auction-client/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

func CreateTxHandle(kind models.ActionKind, from common.Address, tx *types.Transaction) models.TxHandle {
	return models.TxHandle{
		Kind:        kind,
		Hash:        tx.Hash(),
		From:        from,
		SubmittedAt: time.Now(),
	}
}

var MaxTime = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

// TimeFromUnix converts a uint256 count of seconds into a time, clamped to
// [epoch, MaxTime].
func TimeFromUnix(seconds *big.Int) time.Time {
	if seconds == nil || seconds.Sign() <= 0 {
		return time.Unix(0, 0).UTC()
	}
	if seconds.Cmp(big.NewInt(MaxTime.Unix())) > 0 {
		return MaxTime
	}
	return time.Unix(seconds.Int64(), 0).UTC()
}
