package auction

import (
	"context"
	"errors"
	"io"
	"math/big"
	"testing"
	"time"

	"github.com/dan13ram/auction-client/eth/client"
	"github.com/dan13ram/auction-client/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

var (
	identityA      = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	identityB      = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	beneficiary    = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	auctionAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	endTime        = time.Unix(1700000000, 0).UTC()
)

func NewTestSynchronizer(t *testing.T, actionTimeout time.Duration) (*Synchronizer, *MockGateway, *MockConnectionProvider) {
	mockGateway := NewMockGateway(t)
	mockProvider := NewMockConnectionProvider(t)
	registry, err := client.NewStaticRegistry(map[string]string{"1337": auctionAddress.Hex()})
	require.NoError(t, err)

	factory := func(deployment models.Deployment, provider ConnectionProvider) (Gateway, error) {
		assert.Equal(t, auctionAddress, deployment.Address)
		return mockGateway, nil
	}
	return NewSynchronizer(mockProvider, registry, factory, actionTimeout, NewMetrics()), mockGateway, mockProvider
}

func expectConnect(mockGateway *MockGateway, mockProvider *MockConnectionProvider, accounts ...common.Address) {
	mockProvider.EXPECT().GetAccounts(mock.Anything).Return(accounts, nil).Once()
	mockProvider.EXPECT().GetNetworkID(mock.Anything).Return(big.NewInt(1337), nil).Once()
	mockGateway.EXPECT().ReadBeneficiary(mock.Anything).Return(beneficiary, nil).Once()
	mockGateway.EXPECT().ReadAuctionEndTime(mock.Anything).Return(endTime, nil).Once()
}

func NewConnectedSynchronizer(t *testing.T, actionTimeout time.Duration) (*Synchronizer, *MockGateway, *MockConnectionProvider) {
	x, mockGateway, mockProvider := NewTestSynchronizer(t, actionTimeout)
	expectConnect(mockGateway, mockProvider, identityA, identityB)

	_, err := x.Connect(context.Background())
	require.NoError(t, err)
	return x, mockGateway, mockProvider
}

func txHandle(kind models.ActionKind, from common.Address) models.TxHandle {
	return models.TxHandle{Kind: kind, Hash: common.HexToHash("0x01"), From: from, SubmittedAt: time.Now()}
}

func TestSynchronizerConnect(t *testing.T) {
	t.Run("No Error", func(t *testing.T) {
		x, mockGateway, mockProvider := NewTestSynchronizer(t, 0)
		expectConnect(mockGateway, mockProvider, identityA, identityB)

		snapshot, err := x.Connect(context.Background())

		require.NoError(t, err)
		assert.Equal(t, models.StateConnected, x.State())
		assert.Equal(t, identityA, snapshot.Identity)
		require.NotNil(t, snapshot.Beneficiary)
		assert.Equal(t, beneficiary, *snapshot.Beneficiary)
		require.NotNil(t, snapshot.AuctionEndTime)
		assert.Equal(t, endTime, *snapshot.AuctionEndTime)
		assert.Nil(t, snapshot.HighestBid)
		assert.Nil(t, snapshot.PendingBalance)
		assert.Nil(t, snapshot.ContractBalance)
		_, hasError := x.Errors().Current()
		assert.False(t, hasError)
	})

	t.Run("Already Connected", func(t *testing.T) {
		x, _, _ := NewConnectedSynchronizer(t, 0)

		snapshot, err := x.Connect(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, identityA, snapshot.Identity)
	})

	t.Run("No Accounts", func(t *testing.T) {
		x, _, mockProvider := NewTestSynchronizer(t, 0)
		mockProvider.EXPECT().GetAccounts(mock.Anything).Return([]common.Address{}, nil).Once()

		_, err := x.Connect(context.Background())

		assert.ErrorIs(t, err, models.ErrConnection)
		assert.Equal(t, models.StateDisconnected, x.State())
		record, ok := x.Errors().Current()
		assert.True(t, ok)
		assert.Equal(t, models.KindConnection, record.Kind)
	})

	t.Run("Provider Error", func(t *testing.T) {
		x, _, mockProvider := NewTestSynchronizer(t, 0)
		mockProvider.EXPECT().GetAccounts(mock.Anything).Return(nil, errors.New("user rejected the request")).Once()

		_, err := x.Connect(context.Background())

		assert.ErrorIs(t, err, models.ErrConnection)
		assert.Equal(t, models.StateDisconnected, x.State())
	})

	t.Run("Deployment Not Found", func(t *testing.T) {
		x, _, mockProvider := NewTestSynchronizer(t, 0)
		mockProvider.EXPECT().GetAccounts(mock.Anything).Return([]common.Address{identityA}, nil).Once()
		mockProvider.EXPECT().GetNetworkID(mock.Anything).Return(big.NewInt(1), nil).Once()

		snapshot, err := x.Connect(context.Background())

		assert.ErrorIs(t, err, models.ErrDeploymentNotFound)
		assert.Equal(t, models.StateDisconnected, x.State())
		assert.Equal(t, models.AuctionSnapshot{}, snapshot)
		record, ok := x.Errors().Current()
		assert.True(t, ok)
		assert.Equal(t, models.KindDeploymentNotFound, record.Kind)
	})

	t.Run("Initial Read Failure Is Field Local", func(t *testing.T) {
		x, mockGateway, mockProvider := NewTestSynchronizer(t, 0)
		mockProvider.EXPECT().GetAccounts(mock.Anything).Return([]common.Address{identityA}, nil).Once()
		mockProvider.EXPECT().GetNetworkID(mock.Anything).Return(big.NewInt(1337), nil).Once()
		mockGateway.EXPECT().ReadBeneficiary(mock.Anything).Return(common.Address{}, models.NewRemoteReadError("beneficiary", errors.New("boom"))).Once()
		mockGateway.EXPECT().ReadAuctionEndTime(mock.Anything).Return(endTime, nil).Once()

		snapshot, err := x.Connect(context.Background())

		assert.ErrorIs(t, err, models.ErrRemoteRead)
		assert.Equal(t, models.StateConnected, x.State())
		assert.Nil(t, snapshot.Beneficiary)
		require.NotNil(t, snapshot.AuctionEndTime)
		assert.Equal(t, endTime, *snapshot.AuctionEndTime)
	})
}

func TestSynchronizerRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Highest Bid Follows Latest Read", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		mockGateway.EXPECT().ReadHighestBid(mock.Anything).Return(models.HighestBid{Amount: big.NewInt(100), Bidder: identityA}, nil).Once()
		mockGateway.EXPECT().ReadHighestBid(mock.Anything).Return(models.HighestBid{Amount: big.NewInt(150), Bidder: identityB}, nil).Once()

		snapshot, err := x.Refresh(ctx, models.FieldHighestBid)
		require.NoError(t, err)
		assert.Equal(t, int64(100), snapshot.HighestBid.Amount.Int64())

		snapshot, err = x.Refresh(ctx, models.FieldHighestBid)
		require.NoError(t, err)
		assert.Equal(t, int64(150), snapshot.HighestBid.Amount.Int64())
		assert.Equal(t, identityB, snapshot.HighestBid.Bidder)
	})

	t.Run("Failure Keeps Previous Value", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		mockGateway.EXPECT().ReadContractBalance(mock.Anything).Return(big.NewInt(600), nil).Once()
		mockGateway.EXPECT().ReadContractBalance(mock.Anything).Return(nil, models.NewRemoteReadError("getContractAccountBalance", errors.New("timeout"))).Once()

		_, err := x.Refresh(ctx, models.FieldContractBalance)
		require.NoError(t, err)

		snapshot, err := x.Refresh(ctx, models.FieldContractBalance)
		assert.ErrorIs(t, err, models.ErrRemoteRead)
		assert.Equal(t, int64(600), snapshot.ContractBalance.Int64())
		record, ok := x.Errors().Current()
		assert.True(t, ok)
		assert.Equal(t, models.KindRemoteRead, record.Kind)
	})

	t.Run("Pending Balance Reads Active Identity", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityA).Return(big.NewInt(500), nil).Once()

		snapshot, err := x.Refresh(ctx, models.FieldPendingBalance)
		require.NoError(t, err)
		assert.Equal(t, int64(500), snapshot.PendingBalance.Int64())
		assert.True(t, snapshot.CanWithdraw())
	})

	t.Run("Snapshots Are Copies", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityA).Return(big.NewInt(500), nil).Once()

		snapshot, err := x.Refresh(ctx, models.FieldPendingBalance)
		require.NoError(t, err)
		snapshot.PendingBalance.SetInt64(1)

		assert.Equal(t, int64(500), x.Snapshot().PendingBalance.Int64())
	})

	t.Run("Not Connected", func(t *testing.T) {
		x, _, _ := NewTestSynchronizer(t, 0)

		_, err := x.Refresh(ctx, models.FieldHighestBid)
		assert.ErrorIs(t, err, models.ErrConnection)
	})

	t.Run("Unknown Field", func(t *testing.T) {
		x, _, _ := NewConnectedSynchronizer(t, 0)

		_, err := x.Refresh(ctx, models.Field("nope"))
		assert.Error(t, err)
	})
}

func TestSynchronizerRefreshAll(t *testing.T) {
	x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
	mockGateway.EXPECT().ReadBeneficiary(mock.Anything).Return(beneficiary, nil).Once()
	mockGateway.EXPECT().ReadAuctionEndTime(mock.Anything).Return(endTime, nil).Once()
	mockGateway.EXPECT().ReadHighestBid(mock.Anything).Return(models.HighestBid{Amount: big.NewInt(100), Bidder: identityA}, nil).Once()
	mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityA).Return(nil, models.NewRemoteReadError("getBalance", errors.New("boom"))).Once()
	mockGateway.EXPECT().ReadContractBalance(mock.Anything).Return(big.NewInt(600), nil).Once()

	snapshot, err := x.RefreshAll(context.Background())

	assert.ErrorIs(t, err, models.ErrRemoteRead)
	assert.Equal(t, int64(100), snapshot.HighestBid.Amount.Int64())
	assert.Equal(t, int64(600), snapshot.ContractBalance.Int64())
	assert.Nil(t, snapshot.PendingBalance)
}

func TestSynchronizerPlaceBid(t *testing.T) {
	ctx := context.Background()

	t.Run("Confirmed Bid Refreshes Highest And Pending", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		handle := txHandle(models.ActionBid, identityA)
		mockGateway.EXPECT().SubmitBid(mock.Anything, identityA, big.NewInt(100)).Return(handle, nil).Once()
		mockGateway.EXPECT().AwaitConfirmation(mock.Anything, handle).Return(nil).Once()
		mockGateway.EXPECT().ReadHighestBid(mock.Anything).Return(models.HighestBid{Amount: big.NewInt(100), Bidder: identityA}, nil).Once()
		mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityA).Return(big.NewInt(0), nil).Once()

		snapshot, err := x.PlaceBid(ctx, big.NewInt(100))

		require.NoError(t, err)
		require.NotNil(t, snapshot.HighestBid)
		assert.Equal(t, int64(100), snapshot.HighestBid.Amount.Int64())
		assert.Equal(t, identityA, snapshot.HighestBid.Bidder)
		assert.Equal(t, models.ActionStateIdle, x.ActionState(models.ActionBid))
		assert.Empty(t, x.PendingActions())
	})

	t.Run("Second Bid While Pending", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		handle := txHandle(models.ActionBid, identityA)
		submitted := make(chan struct{})
		release := make(chan struct{})
		mockGateway.EXPECT().SubmitBid(mock.Anything, identityA, big.NewInt(100)).Return(handle, nil).Once()
		mockGateway.EXPECT().AwaitConfirmation(mock.Anything, handle).
			RunAndReturn(func(ctx context.Context, handle models.TxHandle) error {
				close(submitted)
				<-release
				return nil
			}).Once()
		mockGateway.EXPECT().ReadHighestBid(mock.Anything).Return(models.HighestBid{Amount: big.NewInt(100), Bidder: identityA}, nil).Once()
		mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityA).Return(big.NewInt(0), nil).Once()

		done := make(chan error)
		go func() {
			_, err := x.PlaceBid(ctx, big.NewInt(100))
			done <- err
		}()
		<-submitted

		assert.Equal(t, models.ActionStateSubmitting, x.ActionState(models.ActionBid))
		assert.Equal(t, models.ActionStateIdle, x.ActionState(models.ActionWithdraw))
		pending := x.PendingActions()
		require.Len(t, pending, 1)
		assert.Equal(t, models.ActionBid, pending[0].Kind)
		assert.NotEmpty(t, pending[0].ID)

		_, err := x.PlaceBid(ctx, big.NewInt(200))
		assert.ErrorIs(t, err, models.ErrActionInProgress)

		close(release)
		assert.NoError(t, <-done)
		assert.Equal(t, models.ActionStateIdle, x.ActionState(models.ActionBid))
	})

	t.Run("Rejected Submission Leaves Fields", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		mockGateway.EXPECT().ReadHighestBid(mock.Anything).Return(models.HighestBid{Amount: big.NewInt(100), Bidder: identityB}, nil).Once()
		mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityA).Return(big.NewInt(40), nil).Once()
		_, err := x.Refresh(ctx, models.FieldHighestBid)
		require.NoError(t, err)
		_, err = x.Refresh(ctx, models.FieldPendingBalance)
		require.NoError(t, err)
		before := x.Snapshot()
		require.NotNil(t, before.HighestBid)
		require.NotNil(t, before.PendingBalance)
		rejection := models.NewRemoteWriteError("bid", "There already is a higher bid.", errors.New("execution reverted"))
		mockGateway.EXPECT().SubmitBid(mock.Anything, identityA, big.NewInt(1)).Return(models.TxHandle{}, rejection).Once()

		snapshot, err := x.PlaceBid(ctx, big.NewInt(1))

		assert.Same(t, rejection, err)
		assert.Equal(t, before, snapshot)
		assert.Equal(t, int64(100), snapshot.HighestBid.Amount.Int64())
		assert.Equal(t, identityB, snapshot.HighestBid.Bidder)
		assert.Equal(t, int64(40), snapshot.PendingBalance.Int64())
		assert.Equal(t, models.ActionStateIdle, x.ActionState(models.ActionBid))
		record, ok := x.Errors().Current()
		require.True(t, ok)
		assert.Equal(t, "There already is a higher bid.", record.Message)
	})

	t.Run("Reverted On Chain", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		handle := txHandle(models.ActionBid, identityA)
		reverted := models.NewRemoteWriteError("await bid", "transaction reverted", nil)
		mockGateway.EXPECT().SubmitBid(mock.Anything, identityA, big.NewInt(5)).Return(handle, nil).Once()
		mockGateway.EXPECT().AwaitConfirmation(mock.Anything, handle).Return(reverted).Once()

		_, err := x.PlaceBid(ctx, big.NewInt(5))

		assert.ErrorIs(t, err, models.ErrRemoteWrite)
		assert.Empty(t, x.PendingActions())
	})

	t.Run("Not Connected", func(t *testing.T) {
		x, _, _ := NewTestSynchronizer(t, 0)

		_, err := x.PlaceBid(ctx, big.NewInt(1))
		assert.ErrorIs(t, err, models.ErrConnection)
	})

	t.Run("Default Action Timeout", func(t *testing.T) {
		x, _, _ := NewTestSynchronizer(t, 0)

		assert.Equal(t, DefaultActionTimeout, x.actionTimeout)
	})

	t.Run("Unmined Transaction Returns To Idle", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		x.actionTimeout = 50 * time.Millisecond
		handle := txHandle(models.ActionBid, identityA)
		mockGateway.EXPECT().SubmitBid(mock.Anything, identityA, big.NewInt(100)).Return(handle, nil).Once()
		mockGateway.EXPECT().AwaitConfirmation(mock.Anything, handle).
			RunAndReturn(func(ctx context.Context, handle models.TxHandle) error {
				<-ctx.Done()
				return models.NewTimeoutError("await bid", ctx.Err())
			}).Once()

		_, err := x.PlaceBid(context.Background(), big.NewInt(100))

		assert.ErrorIs(t, err, models.ErrTimeout)
		assert.Equal(t, models.ActionStateIdle, x.ActionState(models.ActionBid))
		assert.Empty(t, x.PendingActions())
	})

	t.Run("Action Timeout", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 20*time.Millisecond)
		handle := txHandle(models.ActionBid, identityA)
		mockGateway.EXPECT().SubmitBid(mock.Anything, identityA, big.NewInt(100)).Return(handle, nil).Once()
		mockGateway.EXPECT().AwaitConfirmation(mock.Anything, handle).
			RunAndReturn(func(ctx context.Context, handle models.TxHandle) error {
				<-ctx.Done()
				return ctx.Err()
			}).Once()

		_, err := x.PlaceBid(ctx, big.NewInt(100))

		assert.ErrorIs(t, err, models.ErrTimeout)
		assert.Equal(t, models.ActionStateIdle, x.ActionState(models.ActionBid))
		record, ok := x.Errors().Current()
		require.True(t, ok)
		assert.Equal(t, models.KindTimeout, record.Kind)
	})
}

func TestSynchronizerWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("Refreshes Pending Balance Once", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityA).Return(big.NewInt(500), nil).Once()
		_, err := x.Refresh(ctx, models.FieldPendingBalance)
		require.NoError(t, err)

		handle := txHandle(models.ActionWithdraw, identityA)
		mockGateway.EXPECT().SubmitWithdraw(mock.Anything, identityA).Return(handle, nil).Once()
		mockGateway.EXPECT().AwaitConfirmation(mock.Anything, handle).Return(nil).Once()
		mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityA).Return(big.NewInt(0), nil).Once()

		snapshot, err := x.Withdraw(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(0), snapshot.PendingBalance.Int64())
		assert.False(t, snapshot.CanWithdraw())
		mockGateway.AssertNumberOfCalls(t, "ReadPendingBalance", 2)
		mockGateway.AssertNotCalled(t, "ReadHighestBid", mock.Anything)
	})

	t.Run("Follow Up Failure Does Not Fail Action", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		handle := txHandle(models.ActionWithdraw, identityA)
		mockGateway.EXPECT().SubmitWithdraw(mock.Anything, identityA).Return(handle, nil).Once()
		mockGateway.EXPECT().AwaitConfirmation(mock.Anything, handle).Return(nil).Once()
		mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityA).Return(nil, models.NewRemoteReadError("getBalance", errors.New("boom"))).Once()

		_, err := x.Withdraw(ctx)

		assert.NoError(t, err)
		record, ok := x.Errors().Current()
		require.True(t, ok)
		assert.Equal(t, models.KindRemoteRead, record.Kind)
	})
}

func TestSynchronizerEndAuction(t *testing.T) {
	ctx := context.Background()

	t.Run("Non Beneficiary Rejected Verbatim", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		assert.False(t, x.IsBeneficiary())
		rejection := models.NewRemoteWriteError("endAuction", "Only the beneficiary can end the auction", errors.New("execution reverted"))
		mockGateway.EXPECT().SubmitEndAuction(mock.Anything, identityA).Return(models.TxHandle{}, rejection).Once()

		_, err := x.EndAuction(ctx)

		assert.Same(t, rejection, err)
		record, ok := x.Errors().Current()
		require.True(t, ok)
		assert.Equal(t, models.KindRemoteWrite, record.Kind)
		assert.Equal(t, "Only the beneficiary can end the auction", record.Message)
	})

	t.Run("Beneficiary Without Follow Up Reads", func(t *testing.T) {
		x, mockGateway, mockProvider := NewTestSynchronizer(t, 0)
		expectConnect(mockGateway, mockProvider, beneficiary)
		_, err := x.Connect(ctx)
		require.NoError(t, err)
		assert.True(t, x.IsBeneficiary())

		handle := txHandle(models.ActionEndAuction, beneficiary)
		mockGateway.EXPECT().SubmitEndAuction(mock.Anything, beneficiary).Return(handle, nil).Once()
		mockGateway.EXPECT().AwaitConfirmation(mock.Anything, handle).Return(nil).Once()

		_, err = x.EndAuction(ctx)
		assert.NoError(t, err)
	})
}

func TestSynchronizerSwitchIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("Resets Identity Scoped Fields", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityA).Return(big.NewInt(500), nil).Once()
		mockGateway.EXPECT().ReadContractBalance(mock.Anything).Return(big.NewInt(600), nil).Once()
		_, err := x.Refresh(ctx, models.FieldPendingBalance)
		require.NoError(t, err)
		_, err = x.Refresh(ctx, models.FieldContractBalance)
		require.NoError(t, err)

		failure := models.NewRemoteReadError("read", errors.New("unavailable"))
		mockGateway.EXPECT().ReadHighestBid(mock.Anything).Return(models.HighestBid{}, failure).Once()
		mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityB).Return(nil, failure).Once()
		mockGateway.EXPECT().ReadContractBalance(mock.Anything).Return(nil, failure).Once()

		snapshot, err := x.SwitchIdentity(ctx, identityB)

		assert.Error(t, err)
		assert.Equal(t, identityB, snapshot.Identity)
		assert.Nil(t, snapshot.PendingBalance)
		assert.Nil(t, snapshot.ContractBalance)
		assert.Nil(t, snapshot.HighestBid)
		require.NotNil(t, snapshot.Beneficiary)
		assert.Equal(t, beneficiary, *snapshot.Beneficiary)
		require.NotNil(t, snapshot.AuctionEndTime)
		assert.Equal(t, endTime, *snapshot.AuctionEndTime)
	})

	t.Run("Reads New Identity", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		mockGateway.EXPECT().ReadHighestBid(mock.Anything).Return(models.HighestBid{Amount: big.NewInt(100), Bidder: identityA}, nil).Once()
		mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityB).Return(big.NewInt(50), nil).Once()
		mockGateway.EXPECT().ReadContractBalance(mock.Anything).Return(big.NewInt(150), nil).Once()

		snapshot, err := x.SwitchIdentity(ctx, identityB)

		require.NoError(t, err)
		assert.Equal(t, int64(50), snapshot.PendingBalance.Int64())
		assert.Equal(t, int64(150), snapshot.ContractBalance.Int64())
		assert.Equal(t, int64(100), snapshot.HighestBid.Amount.Int64())
	})

	t.Run("Discards Reads For Previous Identity", func(t *testing.T) {
		x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
		started := make(chan struct{})
		release := make(chan struct{})
		mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityA).
			RunAndReturn(func(ctx context.Context, identity common.Address) (*big.Int, error) {
				close(started)
				<-release
				return big.NewInt(500), nil
			}).Once()

		done := make(chan struct{})
		go func() {
			_, _ = x.Refresh(ctx, models.FieldPendingBalance)
			close(done)
		}()
		<-started

		mockGateway.EXPECT().ReadHighestBid(mock.Anything).Return(models.HighestBid{Amount: big.NewInt(100), Bidder: identityA}, nil).Once()
		mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityB).Return(big.NewInt(7), nil).Once()
		mockGateway.EXPECT().ReadContractBalance(mock.Anything).Return(big.NewInt(150), nil).Once()
		_, err := x.SwitchIdentity(ctx, identityB)
		require.NoError(t, err)

		close(release)
		<-done

		assert.Equal(t, int64(7), x.Snapshot().PendingBalance.Int64())
	})

	t.Run("Not Connected", func(t *testing.T) {
		x, _, _ := NewTestSynchronizer(t, 0)

		_, err := x.SwitchIdentity(ctx, identityB)
		assert.ErrorIs(t, err, models.ErrConnection)
	})
}

func TestSynchronizerDisconnect(t *testing.T) {
	x, mockGateway, _ := NewConnectedSynchronizer(t, 0)
	mockGateway.EXPECT().ReadContractBalance(mock.Anything).Return(big.NewInt(600), nil).Once()
	_, err := x.Refresh(context.Background(), models.FieldContractBalance)
	require.NoError(t, err)

	x.Disconnect()

	assert.Equal(t, models.StateDisconnected, x.State())
	assert.Equal(t, models.AuctionSnapshot{}, x.Snapshot())
	assert.False(t, x.IsBeneficiary())
}

func TestSynchronizerWatch(t *testing.T) {
	x, mockGateway, mockProvider := NewTestSynchronizer(t, 0)
	changes := make(chan common.Address, 3)
	mockProvider.EXPECT().AccountChanges().Return(changes).Once()

	// reconnect after the wallet comes back
	expectConnect(mockGateway, mockProvider, identityA)
	changes <- identityA

	mockGateway.EXPECT().ReadHighestBid(mock.Anything).Return(models.HighestBid{Amount: big.NewInt(1), Bidder: identityA}, nil).Once()
	mockGateway.EXPECT().ReadPendingBalance(mock.Anything, identityB).Return(big.NewInt(0), nil).Once()
	mockGateway.EXPECT().ReadContractBalance(mock.Anything).Return(big.NewInt(1), nil).Once()
	changes <- identityB

	changes <- common.Address{}
	close(changes)

	err := x.Watch(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, models.StateDisconnected, x.State())
}

func TestSynchronizerWatch_ContextDone(t *testing.T) {
	x, _, mockProvider := NewTestSynchronizer(t, 0)
	mockProvider.EXPECT().AccountChanges().Return(make(chan common.Address)).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, x.Watch(ctx), context.Canceled)
}
