package auction

import (
	"context"
	"math/big"
	"time"

	"github.com/dan13ram/auction-client/eth/client"
	"github.com/dan13ram/auction-client/models"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// ConnectionProvider is the wallet side of the client: it knows which
// accounts may act and how to sign for them.
type ConnectionProvider interface {
	// GetAccounts lists the available accounts, the selected one first.
	GetAccounts(ctx context.Context) ([]common.Address, error)
	GetNetworkID(ctx context.Context) (*big.Int, error)
	// AccountChanges delivers the newly selected account. The zero address
	// means the provider disconnected.
	AccountChanges() <-chan common.Address
	Transactor(ctx context.Context, account common.Address) (*bind.TransactOpts, error)
	Backend() client.EthereumClient
}

// Gateway is the remote auction contract. Reads never mutate it; writes
// return once the transaction is submitted and AwaitConfirmation reports the
// outcome.
type Gateway interface {
	ReadBeneficiary(ctx context.Context) (common.Address, error)
	ReadAuctionEndTime(ctx context.Context) (time.Time, error)
	ReadHighestBid(ctx context.Context) (models.HighestBid, error)
	ReadPendingBalance(ctx context.Context, identity common.Address) (*big.Int, error)
	ReadContractBalance(ctx context.Context) (*big.Int, error)

	SubmitBid(ctx context.Context, identity common.Address, amountWei *big.Int) (models.TxHandle, error)
	SubmitWithdraw(ctx context.Context, identity common.Address) (models.TxHandle, error)
	SubmitEndAuction(ctx context.Context, identity common.Address) (models.TxHandle, error)
	AwaitConfirmation(ctx context.Context, handle models.TxHandle) error
}

// GatewayFactory builds a gateway for a resolved deployment.
type GatewayFactory func(deployment models.Deployment, provider ConnectionProvider) (Gateway, error)
