package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultRPCTimeout   = 5 * time.Second
	DefaultPollInterval = time.Second
)

type EthereumClient interface {
	ValidateNetwork(ctx context.Context, expectedChainID string) error
	GetBlockNumber(ctx context.Context) (uint64, error)
	GetChainID(ctx context.Context) (*big.Int, error)
	GetTransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	Backend() bind.ContractBackend
	Timeout() time.Duration
	Close()
}

type ethereumClient struct {
	client       *ethclient.Client
	timeout      time.Duration
	pollInterval time.Duration
}

func (c *ethereumClient) Backend() bind.ContractBackend {
	return c.client
}

func (c *ethereumClient) Timeout() time.Duration {
	return c.timeout
}

func (c *ethereumClient) GetBlockNumber(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	blockNumber, err := c.client.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}

	return blockNumber, nil
}

func (c *ethereumClient) GetChainID(ctx context.Context) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	return chainID, nil
}

func (c *ethereumClient) ValidateNetwork(ctx context.Context, expectedChainID string) error {
	log.Debugln("[ETH]", "Validating network")

	chainID, err := c.GetChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %w", err)
	}
	blockNumber, err := c.GetBlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to get block number: %w", err)
	}

	log.Debugln("[ETH]", "chainID", chainID.String(), "blockNumber", blockNumber)

	if expectedChainID != "" && chainID.String() != expectedChainID {
		return fmt.Errorf("chain ID mismatch: expected %s, got %s", expectedChainID, chainID.String())
	}

	log.Infoln("[ETH]", "Validated network")
	return nil
}

func (c *ethereumClient) GetTransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.TransactionReceipt(ctx, txHash)
}

// WaitForReceipt polls until the transaction is mined or ctx is done.
func (c *ethereumClient) WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.GetTransactionReceipt(ctx, txHash)
		if receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			// the per-call timeout of a single poll is not fatal
			if ctx.Err() != nil || !errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
		}
		log.Debugln("[ETH]", "Transaction not yet mined", txHash.Hex())
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *ethereumClient) Close() {
	c.client.Close()
}

func NewClient(ctx context.Context, rpcURL string, timeout time.Duration) (EthereumClient, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("rpc url is required")
	}
	if timeout <= 0 {
		timeout = DefaultRPCTimeout
	}
	log.Debugln("[ETH]", "Connecting to", rpcURL)
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}
	return &ethereumClient{
		client:       client,
		timeout:      timeout,
		pollInterval: DefaultPollInterval,
	}, nil
}
