package eth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/dan13ram/auction-client/auction"
	"github.com/dan13ram/auction-client/eth/client"
	"github.com/dan13ram/auction-client/eth/util"
	"github.com/dan13ram/auction-client/models"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	log "github.com/sirupsen/logrus"
)

// TransactorSource hands out signing options for an account.
type TransactorSource interface {
	Transactor(ctx context.Context, account common.Address) (*bind.TransactOpts, error)
}

// Gateway talks to one deployed auction contract. Each call is issued once
// and bounded by the client's RPC timeout; waiting for a receipt is bounded
// only by the caller's context.
type Gateway struct {
	contract   client.AuctionContract
	client     client.EthereumClient
	transactor TransactorSource
	timeout    time.Duration
}

var _ auction.Gateway = &Gateway{}

func (g *Gateway) callOpts(ctx context.Context, from common.Address) (*bind.CallOpts, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	return &bind.CallOpts{Context: ctx, From: from}, cancel
}

func readError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return models.NewTimeoutError(op, err)
	}
	return models.NewRemoteReadError(op, err)
}

func writeError(op string, err error) error {
	var auctionErr *models.AuctionError
	if errors.As(err, &auctionErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return models.NewTimeoutError(op, err)
	}
	return models.NewRemoteWriteError(op, util.RevertReason(err), err)
}

func (g *Gateway) ReadBeneficiary(ctx context.Context) (common.Address, error) {
	opts, cancel := g.callOpts(ctx, common.Address{})
	defer cancel()

	beneficiary, err := g.contract.Beneficiary(opts)
	if err != nil {
		return common.Address{}, readError(client.MethodBeneficiary, err)
	}
	return beneficiary, nil
}

func (g *Gateway) ReadAuctionEndTime(ctx context.Context) (time.Time, error) {
	opts, cancel := g.callOpts(ctx, common.Address{})
	defer cancel()

	seconds, err := g.contract.AuctionEndTime(opts)
	if err != nil {
		return time.Time{}, readError(client.MethodAuctionEndTime, err)
	}
	return util.TimeFromUnix(seconds), nil
}

func (g *Gateway) ReadHighestBid(ctx context.Context) (models.HighestBid, error) {
	opts, cancel := g.callOpts(ctx, common.Address{})
	defer cancel()

	bid, err := g.contract.Highest(opts)
	if err != nil {
		return models.HighestBid{}, readError(client.MethodHighest, err)
	}
	return bid, nil
}

func (g *Gateway) ReadPendingBalance(ctx context.Context, identity common.Address) (*big.Int, error) {
	opts, cancel := g.callOpts(ctx, identity)
	defer cancel()

	balance, err := g.contract.GetBalance(opts, identity)
	if err != nil {
		return nil, readError(client.MethodGetBalance, err)
	}
	return balance, nil
}

func (g *Gateway) ReadContractBalance(ctx context.Context) (*big.Int, error) {
	opts, cancel := g.callOpts(ctx, common.Address{})
	defer cancel()

	balance, err := g.contract.GetContractAccountBalance(opts)
	if err != nil {
		return nil, readError(client.MethodGetContractAccountBalance, err)
	}
	return balance, nil
}

func (g *Gateway) submit(
	ctx context.Context,
	kind models.ActionKind,
	method string,
	identity common.Address,
	value *big.Int,
	send func(opts *bind.TransactOpts) (*types.Transaction, error),
) (models.TxHandle, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	opts, err := g.transactor.Transactor(ctx, identity)
	if err != nil {
		return models.TxHandle{}, writeError(method, err)
	}
	opts.Context = ctx
	opts.Value = value

	log.Debugln("[GATEWAY]", "Submitting", method, "from", identity.Hex())
	tx, err := send(opts)
	if err != nil {
		logger := log.WithError(err).WithField("from", identity.Hex())
		if util.IsReverted(err) {
			logger.Infoln("[GATEWAY]", "Contract rejected", method+":", util.RevertReason(err))
		} else {
			logger.Warnln("[GATEWAY]", "Failed to submit", method)
		}
		return models.TxHandle{}, writeError(method, err)
	}

	handle := util.CreateTxHandle(kind, identity, tx)
	log.Infoln("[GATEWAY]", "Submitted", method, "tx", handle.Hash.Hex())
	return handle, nil
}

func (g *Gateway) SubmitBid(ctx context.Context, identity common.Address, amountWei *big.Int) (models.TxHandle, error) {
	if amountWei == nil || amountWei.Sign() <= 0 {
		return models.TxHandle{}, models.NewRemoteWriteError(client.MethodBid, "bid amount must be positive", nil)
	}
	value := new(big.Int).Set(amountWei)
	return g.submit(ctx, models.ActionBid, client.MethodBid, identity, value, g.contract.Bid)
}

func (g *Gateway) SubmitWithdraw(ctx context.Context, identity common.Address) (models.TxHandle, error) {
	return g.submit(ctx, models.ActionWithdraw, client.MethodWithdraw, identity, nil, g.contract.Withdraw)
}

func (g *Gateway) SubmitEndAuction(ctx context.Context, identity common.Address) (models.TxHandle, error) {
	return g.submit(ctx, models.ActionEndAuction, client.MethodEndAuction, identity, nil, g.contract.EndAuction)
}

func (g *Gateway) AwaitConfirmation(ctx context.Context, handle models.TxHandle) error {
	op := fmt.Sprintf("await %s", handle.Kind)

	receipt, err := g.client.WaitForReceipt(ctx, handle.Hash)
	if err != nil {
		return writeError(op, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		log.Warnln("[GATEWAY]", "Transaction reverted", handle.Hash.Hex(), "block", receipt.BlockNumber)
		return models.NewRemoteWriteError(op, fmt.Sprintf("transaction %s reverted", handle.Hash.Hex()), nil)
	}

	log.Debugln("[GATEWAY]", "Confirmed", handle.Kind, "tx", handle.Hash.Hex(), "block", receipt.BlockNumber)
	return nil
}

func NewGateway(contract client.AuctionContract, ethClient client.EthereumClient, transactor TransactorSource) *Gateway {
	timeout := ethClient.Timeout()
	if timeout <= 0 {
		timeout = client.DefaultRPCTimeout
	}
	return &Gateway{
		contract:   contract,
		client:     ethClient,
		transactor: transactor,
		timeout:    timeout,
	}
}

// NewGatewayForDeployment binds the deployment through the provider's chain
// client. It satisfies auction.GatewayFactory.
func NewGatewayForDeployment(deployment models.Deployment, provider auction.ConnectionProvider) (auction.Gateway, error) {
	ethClient := provider.Backend()
	if ethClient == nil {
		return nil, models.NewConnectionError("bind auction", fmt.Errorf("provider has no chain client"))
	}
	contract, err := client.NewAuctionContract(deployment, ethClient.Backend())
	if err != nil {
		return nil, models.NewConnectionError("bind auction", err)
	}
	log.Infoln("[GATEWAY]", "Bound auction", contract.Address().Hex(), "on network", deployment.NetworkID)
	return NewGateway(contract, ethClient, provider), nil
}
