package common

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrNotAuthorized = errors.New("not authorized to sign for this account")

// NewTransactor returns transact options that sign with the given signer for
// the given chain. Gas and nonce are left to the node.
func NewTransactor(ctx context.Context, signer Signer, chainID *big.Int) (*bind.TransactOpts, error) {
	if signer == nil {
		return nil, fmt.Errorf("signer is nil")
	}
	if chainID == nil {
		return nil, fmt.Errorf("chain id is nil")
	}
	txSigner := types.LatestSignerForChainID(chainID)
	from := signer.EthAddress()

	return &bind.TransactOpts{
		From:    from,
		Context: ctx,
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if address != from {
				return nil, ErrNotAuthorized
			}
			hash := txSigner.Hash(tx)
			signature, err := signer.EthSign(hash.Bytes())
			if err != nil {
				return nil, fmt.Errorf("sign transaction: %w", err)
			}
			// go-ethereum expects a 0/1 recovery id
			if signature[64] >= 27 {
				signature[64] -= 27
			}
			return tx.WithSignature(txSigner, signature)
		},
	}, nil
}
