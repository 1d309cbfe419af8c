package eth

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/dan13ram/auction-client/auction"
	"github.com/dan13ram/auction-client/common"
	"github.com/dan13ram/auction-client/eth/client"
	"github.com/dan13ram/auction-client/models"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"

	log "github.com/sirupsen/logrus"
)

const accountChangesBuffer = 16

// Wallet is a connection provider backed by locally held signers and one
// JSON-RPC endpoint. The selected account is listed first.
type Wallet struct {
	mu       sync.RWMutex
	client   client.EthereumClient
	signers  []common.Signer
	selected int
	chainID  *big.Int
	changes  chan ethcommon.Address
	closed   bool
}

var _ auction.ConnectionProvider = &Wallet{}

func (w *Wallet) GetAccounts(ctx context.Context) ([]ethcommon.Address, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return nil, models.NewConnectionError("get accounts", fmt.Errorf("wallet is closed"))
	}
	if len(w.signers) == 0 {
		return []ethcommon.Address{}, nil
	}

	accounts := make([]ethcommon.Address, 0, len(w.signers))
	accounts = append(accounts, w.signers[w.selected].EthAddress())
	for i, signer := range w.signers {
		if i != w.selected {
			accounts = append(accounts, signer.EthAddress())
		}
	}
	return accounts, nil
}

func (w *Wallet) GetNetworkID(ctx context.Context) (*big.Int, error) {
	w.mu.RLock()
	closed := w.closed
	w.mu.RUnlock()
	if closed {
		return nil, models.NewConnectionError("get network id", fmt.Errorf("wallet is closed"))
	}

	chainID, err := w.client.GetChainID(ctx)
	if err != nil {
		return nil, models.NewConnectionError("get network id", err)
	}

	w.mu.Lock()
	w.chainID = new(big.Int).Set(chainID)
	w.mu.Unlock()

	return chainID, nil
}

func (w *Wallet) AccountChanges() <-chan ethcommon.Address {
	return w.changes
}

func (w *Wallet) Transactor(ctx context.Context, account ethcommon.Address) (*bind.TransactOpts, error) {
	w.mu.RLock()
	signer := w.signerFor(account)
	chainID := w.chainID
	closed := w.closed
	w.mu.RUnlock()

	if closed {
		return nil, models.NewConnectionError("transactor", fmt.Errorf("wallet is closed"))
	}
	if signer == nil {
		return nil, models.NewConnectionError("transactor", fmt.Errorf("account %s is not held by this wallet", account.Hex()))
	}
	if chainID == nil {
		var err error
		if chainID, err = w.GetNetworkID(ctx); err != nil {
			return nil, err
		}
	}

	opts, err := common.NewTransactor(ctx, signer, chainID)
	if err != nil {
		return nil, models.NewConnectionError("transactor", err)
	}
	return opts, nil
}

func (w *Wallet) Backend() client.EthereumClient {
	return w.client
}

func (w *Wallet) signerFor(account ethcommon.Address) common.Signer {
	for _, signer := range w.signers {
		if signer.EthAddress() == account {
			return signer
		}
	}
	return nil
}

// SelectAccount makes account the selected one and notifies listeners.
func (w *Wallet) SelectAccount(account ethcommon.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return models.NewConnectionError("select account", fmt.Errorf("wallet is closed"))
	}
	for i, signer := range w.signers {
		if signer.EthAddress() == account {
			if i == w.selected {
				return nil
			}
			w.selected = i
			log.Infoln("[WALLET]", "Selected account", account.Hex())
			w.notify(account)
			return nil
		}
	}
	return models.NewConnectionError("select account", fmt.Errorf("account %s is not held by this wallet", account.Hex()))
}

// notify must be called with the lock held. When the listener falls behind
// the oldest pending change is dropped so the latest one is always delivered.
func (w *Wallet) notify(account ethcommon.Address) {
	for {
		select {
		case w.changes <- account:
			return
		default:
		}

		select {
		case dropped := <-w.changes:
			log.Warnln("[WALLET]", "Dropping stale account change, listener is not keeping up", dropped.Hex())
		default:
		}
	}
}

// Close disconnects the wallet: listeners receive the zero address, the
// signers are destroyed and the chain client is closed.
func (w *Wallet) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	w.notify(ethcommon.Address{})
	close(w.changes)

	for _, signer := range w.signers {
		signer.Destroy()
	}
	if w.client != nil {
		w.client.Close()
	}
	log.Infoln("[WALLET]", "Closed")
}

func NewWallet(ethClient client.EthereumClient, signers []common.Signer) (*Wallet, error) {
	if ethClient == nil {
		return nil, models.NewConnectionError("new wallet", fmt.Errorf("chain client is nil"))
	}
	seen := make(map[ethcommon.Address]bool, len(signers))
	unique := make([]common.Signer, 0, len(signers))
	for _, signer := range signers {
		address := signer.EthAddress()
		if seen[address] {
			log.Warnln("[WALLET]", "Ignoring duplicate signer", address.Hex())
			continue
		}
		seen[address] = true
		unique = append(unique, signer)
	}

	log.Debugln("[WALLET]", "Initialized with", len(unique), "accounts")
	return &Wallet{
		client:  ethClient,
		signers: unique,
		changes: make(chan ethcommon.Address, accountChangesBuffer),
	}, nil
}
