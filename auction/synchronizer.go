package auction

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/dan13ram/auction-client/eth/client"
	"github.com/dan13ram/auction-client/models"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	log "github.com/sirupsen/logrus"
)

// DefaultActionTimeout applies when NewSynchronizer is given no action timeout.
const DefaultActionTimeout = 2 * time.Minute

// Synchronizer keeps a local view of one auction contract for the active
// identity. Reads and writes go through the Gateway; every result is applied
// in completion order and handed out as a copy.
type Synchronizer struct {
	provider      ConnectionProvider
	registry      client.DeploymentRegistry
	newGateway    GatewayFactory
	actionTimeout time.Duration

	mu       sync.RWMutex
	state    models.ConnectionState
	gateway  Gateway
	snapshot models.AuctionSnapshot
	// session changes on connect and disconnect, generation additionally on
	// every identity switch. Results started under an older value are dropped.
	session    uint64
	generation uint64

	pending *PendingRegistry
	errors  *ErrorSurface
	metrics *Metrics
}

func NewSynchronizer(
	provider ConnectionProvider,
	registry client.DeploymentRegistry,
	newGateway GatewayFactory,
	actionTimeout time.Duration,
	metrics *Metrics,
) *Synchronizer {
	if actionTimeout <= 0 {
		log.Debugln("[SYNC]", "No action timeout given, using", DefaultActionTimeout)
		actionTimeout = DefaultActionTimeout
	}
	return &Synchronizer{
		provider:      provider,
		registry:      registry,
		newGateway:    newGateway,
		actionTimeout: actionTimeout,
		state:         models.StateDisconnected,
		pending:       NewPendingRegistry(metrics),
		errors:        NewErrorSurface(metrics),
		metrics:       metrics,
	}
}

func asConnectionError(op string, err error) error {
	var auctionErr *models.AuctionError
	if errors.As(err, &auctionErr) {
		return err
	}
	return models.NewConnectionError(op, err)
}

// Connect resolves the auction for the provider's network and reads the
// auction-scoped fields. Failing reads leave the client connected; the
// error is returned with the snapshot.
func (s *Synchronizer) Connect(ctx context.Context) (models.AuctionSnapshot, error) {
	s.mu.Lock()
	switch s.state {
	case models.StateConnected:
		snapshot := s.snapshot.Copy()
		s.mu.Unlock()
		return snapshot, nil
	case models.StateConnecting:
		s.mu.Unlock()
		return models.AuctionSnapshot{}, s.errors.reportAndReturn(models.NewConnectionError("connect", fmt.Errorf("already connecting")))
	}
	s.state = models.StateConnecting
	s.mu.Unlock()

	log.Debugln("[SYNC]", "Connecting")
	gateway, identity, err := s.dial(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = models.StateDisconnected
		s.mu.Unlock()
		log.WithError(err).Errorln("[SYNC]", "Failed to connect")
		return models.AuctionSnapshot{}, s.errors.reportAndReturn(err)
	}

	s.mu.Lock()
	s.session++
	s.generation++
	s.gateway = gateway
	s.snapshot = models.AuctionSnapshot{Identity: identity}
	s.state = models.StateConnected
	s.mu.Unlock()

	log.Infoln("[SYNC]", "Connected as", identity.Hex())

	_, err = s.refreshFields(ctx, models.FieldBeneficiary, models.FieldAuctionEndTime)
	return s.Snapshot(), err
}

func (s *Synchronizer) dial(ctx context.Context) (Gateway, common.Address, error) {
	accounts, err := s.provider.GetAccounts(ctx)
	if err != nil {
		return nil, common.Address{}, asConnectionError("get accounts", err)
	}
	if len(accounts) == 0 {
		return nil, common.Address{}, models.NewConnectionError("get accounts", fmt.Errorf("no accounts available"))
	}

	networkID, err := s.provider.GetNetworkID(ctx)
	if err != nil {
		return nil, common.Address{}, asConnectionError("get network id", err)
	}

	deployment, err := s.registry.Resolve(networkID.String())
	if err != nil {
		return nil, common.Address{}, asConnectionError("resolve deployment", err)
	}

	gateway, err := s.newGateway(deployment, s.provider)
	if err != nil {
		return nil, common.Address{}, asConnectionError("bind auction", err)
	}
	return gateway, accounts[0], nil
}

// Disconnect forgets the identity and every field.
func (s *Synchronizer) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session++
	s.generation++
	s.state = models.StateDisconnected
	s.gateway = nil
	s.snapshot = models.AuctionSnapshot{}
	log.Infoln("[SYNC]", "Disconnected")
}

// SwitchIdentity makes identity the active one. Identity-scoped fields are
// forgotten and read again; reads still running for the previous identity
// are discarded when they complete.
func (s *Synchronizer) SwitchIdentity(ctx context.Context, identity common.Address) (models.AuctionSnapshot, error) {
	s.mu.Lock()
	if s.state != models.StateConnected {
		s.mu.Unlock()
		return models.AuctionSnapshot{}, s.errors.reportAndReturn(models.NewConnectionError("switch identity", fmt.Errorf("not connected")))
	}
	s.generation++
	s.snapshot.ResetIdentityScoped(identity)
	s.mu.Unlock()

	log.Infoln("[SYNC]", "Switched identity to", identity.Hex())

	_, err := s.refreshFields(ctx, models.FieldHighestBid, models.FieldPendingBalance, models.FieldContractBalance)
	return s.Snapshot(), err
}

// Refresh reads one field. On failure the previous value is kept and the
// error is reported.
func (s *Synchronizer) Refresh(ctx context.Context, field models.Field) (models.AuctionSnapshot, error) {
	err := s.refresh(ctx, field)
	return s.Snapshot(), err
}

// RefreshAll reads every field concurrently and joins the failures.
func (s *Synchronizer) RefreshAll(ctx context.Context) (models.AuctionSnapshot, error) {
	_, err := s.refreshFields(ctx, models.Fields...)
	return s.Snapshot(), err
}

func (s *Synchronizer) refreshFields(ctx context.Context, fields ...models.Field) ([]models.Field, error) {
	errs := make([]error, len(fields))

	var g errgroup.Group
	for i, field := range fields {
		g.Go(func() error {
			errs[i] = s.refresh(ctx, field)
			return nil
		})
	}
	_ = g.Wait()

	var failed []models.Field
	for i, err := range errs {
		if err != nil {
			failed = append(failed, fields[i])
		}
	}
	return failed, errors.Join(errs...)
}

func (s *Synchronizer) refresh(ctx context.Context, field models.Field) error {
	s.mu.RLock()
	state := s.state
	gateway := s.gateway
	identity := s.snapshot.Identity
	session := s.session
	generation := s.generation
	s.mu.RUnlock()

	if state != models.StateConnected {
		return s.errors.reportAndReturn(models.NewConnectionError("refresh "+string(field), fmt.Errorf("not connected")))
	}

	apply, err := s.read(ctx, gateway, field, identity)
	s.metrics.observeRead(field, err)
	if err != nil {
		log.WithError(err).Debugln("[SYNC]", "Failed to read", field)
		return s.errors.reportAndReturn(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != session || (!field.AuctionScoped() && s.generation != generation) {
		log.Debugln("[SYNC]", "Discarding stale read of", field)
		return nil
	}
	apply(&s.snapshot)
	return nil
}

func (s *Synchronizer) read(ctx context.Context, gateway Gateway, field models.Field, identity common.Address) (func(*models.AuctionSnapshot), error) {
	switch field {
	case models.FieldBeneficiary:
		beneficiary, err := gateway.ReadBeneficiary(ctx)
		if err != nil {
			return nil, err
		}
		return func(snap *models.AuctionSnapshot) { snap.Beneficiary = &beneficiary }, nil

	case models.FieldAuctionEndTime:
		endTime, err := gateway.ReadAuctionEndTime(ctx)
		if err != nil {
			return nil, err
		}
		return func(snap *models.AuctionSnapshot) { snap.AuctionEndTime = &endTime }, nil

	case models.FieldHighestBid:
		bid, err := gateway.ReadHighestBid(ctx)
		if err != nil {
			return nil, err
		}
		bid = bid.Copy()
		return func(snap *models.AuctionSnapshot) { snap.HighestBid = &bid }, nil

	case models.FieldPendingBalance:
		balance, err := gateway.ReadPendingBalance(ctx, identity)
		if err != nil {
			return nil, err
		}
		balance = new(big.Int).Set(balance)
		return func(snap *models.AuctionSnapshot) { snap.PendingBalance = balance }, nil

	case models.FieldContractBalance:
		balance, err := gateway.ReadContractBalance(ctx)
		if err != nil {
			return nil, err
		}
		balance = new(big.Int).Set(balance)
		return func(snap *models.AuctionSnapshot) { snap.ContractBalance = balance }, nil
	}
	return nil, fmt.Errorf("unknown field %q", field)
}

type submitFunc func(ctx context.Context, gateway Gateway, identity common.Address) (models.TxHandle, error)

// PlaceBid bids amountWei from the active identity, waits for confirmation
// and re-reads the highest bid and the pending balance.
func (s *Synchronizer) PlaceBid(ctx context.Context, amountWei *big.Int) (models.AuctionSnapshot, error) {
	var amount *big.Int
	if amountWei != nil {
		amount = new(big.Int).Set(amountWei)
	}
	return s.runAction(ctx, models.ActionBid, func(ctx context.Context, gateway Gateway, identity common.Address) (models.TxHandle, error) {
		return gateway.SubmitBid(ctx, identity, amount)
	}, models.FieldHighestBid, models.FieldPendingBalance)
}

// Withdraw claims the active identity's refund and re-reads its pending
// balance.
func (s *Synchronizer) Withdraw(ctx context.Context) (models.AuctionSnapshot, error) {
	return s.runAction(ctx, models.ActionWithdraw, func(ctx context.Context, gateway Gateway, identity common.Address) (models.TxHandle, error) {
		return gateway.SubmitWithdraw(ctx, identity)
	}, models.FieldPendingBalance)
}

// EndAuction submits the end of the auction. Whether the identity may do so
// is for the contract to decide.
func (s *Synchronizer) EndAuction(ctx context.Context) (models.AuctionSnapshot, error) {
	return s.runAction(ctx, models.ActionEndAuction, func(ctx context.Context, gateway Gateway, identity common.Address) (models.TxHandle, error) {
		return gateway.SubmitEndAuction(ctx, identity)
	})
}

func (s *Synchronizer) runAction(ctx context.Context, kind models.ActionKind, submit submitFunc, followUp ...models.Field) (models.AuctionSnapshot, error) {
	s.mu.RLock()
	state := s.state
	gateway := s.gateway
	identity := s.snapshot.Identity
	s.mu.RUnlock()

	if state != models.StateConnected {
		return s.Snapshot(), s.errors.reportAndReturn(models.NewConnectionError(string(kind), fmt.Errorf("not connected")))
	}

	action, err := s.pending.Begin(identity, kind)
	if err != nil {
		return s.Snapshot(), s.errors.reportAndReturn(err)
	}

	logger := log.WithField("action_id", action.ID).WithField("identity", identity.Hex())
	logger.Infoln("[SYNC]", "Starting", kind)

	err = s.submitAndAwait(ctx, kind, gateway, identity, submit)
	s.pending.End(action)
	s.metrics.observeWrite(kind, err)
	if err != nil {
		logger.WithError(err).Warnln("[SYNC]", "Failed", kind)
		return s.Snapshot(), s.errors.reportAndReturn(err)
	}
	logger.Infoln("[SYNC]", "Confirmed", kind)

	// the write is final; read failures are reported but do not fail it
	if len(followUp) > 0 {
		if _, err := s.refreshFields(ctx, followUp...); err != nil {
			logger.WithError(err).Warnln("[SYNC]", "Follow-up refresh failed after", kind)
		}
	}
	return s.Snapshot(), nil
}

func (s *Synchronizer) submitAndAwait(ctx context.Context, kind models.ActionKind, gateway Gateway, identity common.Address, submit submitFunc) error {
	ctx, cancel := context.WithTimeout(ctx, s.actionTimeout)
	defer cancel()

	handle, err := submit(ctx, gateway, identity)
	if err == nil {
		err = gateway.AwaitConfirmation(ctx, handle)
	}
	if err == nil {
		return nil
	}

	var auctionErr *models.AuctionError
	if !errors.As(err, &auctionErr) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return models.NewTimeoutError(string(kind), err)
	}
	return err
}

// Watch follows the provider's account notifications until ctx is done or
// the provider closes its notification channel.
func (s *Synchronizer) Watch(ctx context.Context) error {
	changes := s.provider.AccountChanges()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case account, ok := <-changes:
			if !ok {
				s.Disconnect()
				return nil
			}
			s.handleAccountChange(ctx, account)
		}
	}
}

func (s *Synchronizer) handleAccountChange(ctx context.Context, account common.Address) {
	if account == (common.Address{}) {
		s.Disconnect()
		return
	}

	var err error
	if s.State() == models.StateConnected {
		_, err = s.SwitchIdentity(ctx, account)
	} else {
		_, err = s.Connect(ctx)
	}
	if err != nil {
		log.WithError(err).Warnln("[SYNC]", "Account change to", account.Hex(), "left errors")
	}
}

func (s *Synchronizer) Snapshot() models.AuctionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Copy()
}

func (s *Synchronizer) State() models.ConnectionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ActionState reports whether an action of kind is in flight for the active
// identity.
func (s *Synchronizer) ActionState(kind models.ActionKind) models.ActionState {
	s.mu.RLock()
	identity := s.snapshot.Identity
	s.mu.RUnlock()
	return s.pending.State(identity, kind)
}

func (s *Synchronizer) PendingActions() []models.PendingAction {
	return s.pending.List()
}

func (s *Synchronizer) Errors() *ErrorSurface {
	return s.errors
}

func (s *Synchronizer) Metrics() *Metrics {
	return s.metrics
}

// IsBeneficiary is a presentation hint. It is never consulted before
// submitting EndAuction.
func (s *Synchronizer) IsBeneficiary() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Beneficiary != nil &&
		s.snapshot.Identity != (common.Address{}) &&
		*s.snapshot.Beneficiary == s.snapshot.Identity
}
