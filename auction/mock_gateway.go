package auction

import (
	"context"
	"math/big"
	"time"

	models "github.com/dan13ram/auction-client/models"
	common "github.com/ethereum/go-ethereum/common"
	mock "github.com/stretchr/testify/mock"
)

// MockGateway is a mock type for the Gateway type
type MockGateway struct {
	mock.Mock
}

type MockGateway_Expecter struct {
	mock *mock.Mock
}

func (_m *MockGateway) EXPECT() *MockGateway_Expecter {
	return &MockGateway_Expecter{mock: &_m.Mock}
}

// AwaitConfirmation provides a mock function with given fields: ctx, handle
func (_m *MockGateway) AwaitConfirmation(ctx context.Context, handle models.TxHandle) error {
	ret := _m.Called(ctx, handle)

	if len(ret) == 0 {
		panic("no return value specified for AwaitConfirmation")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, models.TxHandle) error); ok {
		r0 = rf(ctx, handle)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockGateway_AwaitConfirmation_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AwaitConfirmation'
type MockGateway_AwaitConfirmation_Call struct {
	*mock.Call
}

// AwaitConfirmation is a helper method to define mock.On call
//   - ctx context.Context
//   - handle models.TxHandle
func (_e *MockGateway_Expecter) AwaitConfirmation(ctx interface{}, handle interface{}) *MockGateway_AwaitConfirmation_Call {
	return &MockGateway_AwaitConfirmation_Call{Call: _e.mock.On("AwaitConfirmation", ctx, handle)}
}

func (_c *MockGateway_AwaitConfirmation_Call) Run(run func(ctx context.Context, handle models.TxHandle)) *MockGateway_AwaitConfirmation_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(models.TxHandle))
	})
	return _c
}

func (_c *MockGateway_AwaitConfirmation_Call) Return(_a0 error) *MockGateway_AwaitConfirmation_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGateway_AwaitConfirmation_Call) RunAndReturn(run func(context.Context, models.TxHandle) error) *MockGateway_AwaitConfirmation_Call {
	_c.Call.Return(run)
	return _c
}

// ReadAuctionEndTime provides a mock function with given fields: ctx
func (_m *MockGateway) ReadAuctionEndTime(ctx context.Context) (time.Time, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ReadAuctionEndTime")
	}

	var r0 time.Time
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (time.Time, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) time.Time); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(time.Time)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockGateway_ReadAuctionEndTime_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReadAuctionEndTime'
type MockGateway_ReadAuctionEndTime_Call struct {
	*mock.Call
}

// ReadAuctionEndTime is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockGateway_Expecter) ReadAuctionEndTime(ctx interface{}) *MockGateway_ReadAuctionEndTime_Call {
	return &MockGateway_ReadAuctionEndTime_Call{Call: _e.mock.On("ReadAuctionEndTime", ctx)}
}

func (_c *MockGateway_ReadAuctionEndTime_Call) Run(run func(ctx context.Context)) *MockGateway_ReadAuctionEndTime_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockGateway_ReadAuctionEndTime_Call) Return(_a0 time.Time, _a1 error) *MockGateway_ReadAuctionEndTime_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGateway_ReadAuctionEndTime_Call) RunAndReturn(run func(context.Context) (time.Time, error)) *MockGateway_ReadAuctionEndTime_Call {
	_c.Call.Return(run)
	return _c
}

// ReadBeneficiary provides a mock function with given fields: ctx
func (_m *MockGateway) ReadBeneficiary(ctx context.Context) (common.Address, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ReadBeneficiary")
	}

	var r0 common.Address
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (common.Address, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) common.Address); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(common.Address)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockGateway_ReadBeneficiary_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReadBeneficiary'
type MockGateway_ReadBeneficiary_Call struct {
	*mock.Call
}

// ReadBeneficiary is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockGateway_Expecter) ReadBeneficiary(ctx interface{}) *MockGateway_ReadBeneficiary_Call {
	return &MockGateway_ReadBeneficiary_Call{Call: _e.mock.On("ReadBeneficiary", ctx)}
}

func (_c *MockGateway_ReadBeneficiary_Call) Run(run func(ctx context.Context)) *MockGateway_ReadBeneficiary_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockGateway_ReadBeneficiary_Call) Return(_a0 common.Address, _a1 error) *MockGateway_ReadBeneficiary_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGateway_ReadBeneficiary_Call) RunAndReturn(run func(context.Context) (common.Address, error)) *MockGateway_ReadBeneficiary_Call {
	_c.Call.Return(run)
	return _c
}

// ReadContractBalance provides a mock function with given fields: ctx
func (_m *MockGateway) ReadContractBalance(ctx context.Context) (*big.Int, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ReadContractBalance")
	}

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*big.Int, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *big.Int); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*big.Int)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockGateway_ReadContractBalance_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReadContractBalance'
type MockGateway_ReadContractBalance_Call struct {
	*mock.Call
}

// ReadContractBalance is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockGateway_Expecter) ReadContractBalance(ctx interface{}) *MockGateway_ReadContractBalance_Call {
	return &MockGateway_ReadContractBalance_Call{Call: _e.mock.On("ReadContractBalance", ctx)}
}

func (_c *MockGateway_ReadContractBalance_Call) Run(run func(ctx context.Context)) *MockGateway_ReadContractBalance_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockGateway_ReadContractBalance_Call) Return(_a0 *big.Int, _a1 error) *MockGateway_ReadContractBalance_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGateway_ReadContractBalance_Call) RunAndReturn(run func(context.Context) (*big.Int, error)) *MockGateway_ReadContractBalance_Call {
	_c.Call.Return(run)
	return _c
}

// ReadHighestBid provides a mock function with given fields: ctx
func (_m *MockGateway) ReadHighestBid(ctx context.Context) (models.HighestBid, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ReadHighestBid")
	}

	var r0 models.HighestBid
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (models.HighestBid, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) models.HighestBid); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(models.HighestBid)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockGateway_ReadHighestBid_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReadHighestBid'
type MockGateway_ReadHighestBid_Call struct {
	*mock.Call
}

// ReadHighestBid is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockGateway_Expecter) ReadHighestBid(ctx interface{}) *MockGateway_ReadHighestBid_Call {
	return &MockGateway_ReadHighestBid_Call{Call: _e.mock.On("ReadHighestBid", ctx)}
}

func (_c *MockGateway_ReadHighestBid_Call) Run(run func(ctx context.Context)) *MockGateway_ReadHighestBid_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockGateway_ReadHighestBid_Call) Return(_a0 models.HighestBid, _a1 error) *MockGateway_ReadHighestBid_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGateway_ReadHighestBid_Call) RunAndReturn(run func(context.Context) (models.HighestBid, error)) *MockGateway_ReadHighestBid_Call {
	_c.Call.Return(run)
	return _c
}

// ReadPendingBalance provides a mock function with given fields: ctx, identity
func (_m *MockGateway) ReadPendingBalance(ctx context.Context, identity common.Address) (*big.Int, error) {
	ret := _m.Called(ctx, identity)

	if len(ret) == 0 {
		panic("no return value specified for ReadPendingBalance")
	}

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Address) (*big.Int, error)); ok {
		return rf(ctx, identity)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Address) *big.Int); ok {
		r0 = rf(ctx, identity)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*big.Int)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Address) error); ok {
		r1 = rf(ctx, identity)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockGateway_ReadPendingBalance_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReadPendingBalance'
type MockGateway_ReadPendingBalance_Call struct {
	*mock.Call
}

// ReadPendingBalance is a helper method to define mock.On call
//   - ctx context.Context
//   - identity common.Address
func (_e *MockGateway_Expecter) ReadPendingBalance(ctx interface{}, identity interface{}) *MockGateway_ReadPendingBalance_Call {
	return &MockGateway_ReadPendingBalance_Call{Call: _e.mock.On("ReadPendingBalance", ctx, identity)}
}

func (_c *MockGateway_ReadPendingBalance_Call) Run(run func(ctx context.Context, identity common.Address)) *MockGateway_ReadPendingBalance_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Address))
	})
	return _c
}

func (_c *MockGateway_ReadPendingBalance_Call) Return(_a0 *big.Int, _a1 error) *MockGateway_ReadPendingBalance_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGateway_ReadPendingBalance_Call) RunAndReturn(run func(context.Context, common.Address) (*big.Int, error)) *MockGateway_ReadPendingBalance_Call {
	_c.Call.Return(run)
	return _c
}

// SubmitBid provides a mock function with given fields: ctx, identity, amountWei
func (_m *MockGateway) SubmitBid(ctx context.Context, identity common.Address, amountWei *big.Int) (models.TxHandle, error) {
	ret := _m.Called(ctx, identity, amountWei)

	if len(ret) == 0 {
		panic("no return value specified for SubmitBid")
	}

	var r0 models.TxHandle
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, *big.Int) (models.TxHandle, error)); ok {
		return rf(ctx, identity, amountWei)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, *big.Int) models.TxHandle); ok {
		r0 = rf(ctx, identity, amountWei)
	} else {
		r0 = ret.Get(0).(models.TxHandle)
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Address, *big.Int) error); ok {
		r1 = rf(ctx, identity, amountWei)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockGateway_SubmitBid_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SubmitBid'
type MockGateway_SubmitBid_Call struct {
	*mock.Call
}

// SubmitBid is a helper method to define mock.On call
//   - ctx context.Context
//   - identity common.Address
//   - amountWei *big.Int
func (_e *MockGateway_Expecter) SubmitBid(ctx interface{}, identity interface{}, amountWei interface{}) *MockGateway_SubmitBid_Call {
	return &MockGateway_SubmitBid_Call{Call: _e.mock.On("SubmitBid", ctx, identity, amountWei)}
}

func (_c *MockGateway_SubmitBid_Call) Run(run func(ctx context.Context, identity common.Address, amountWei *big.Int)) *MockGateway_SubmitBid_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Address), args[2].(*big.Int))
	})
	return _c
}

func (_c *MockGateway_SubmitBid_Call) Return(_a0 models.TxHandle, _a1 error) *MockGateway_SubmitBid_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGateway_SubmitBid_Call) RunAndReturn(run func(context.Context, common.Address, *big.Int) (models.TxHandle, error)) *MockGateway_SubmitBid_Call {
	_c.Call.Return(run)
	return _c
}

// SubmitEndAuction provides a mock function with given fields: ctx, identity
func (_m *MockGateway) SubmitEndAuction(ctx context.Context, identity common.Address) (models.TxHandle, error) {
	ret := _m.Called(ctx, identity)

	if len(ret) == 0 {
		panic("no return value specified for SubmitEndAuction")
	}

	var r0 models.TxHandle
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Address) (models.TxHandle, error)); ok {
		return rf(ctx, identity)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Address) models.TxHandle); ok {
		r0 = rf(ctx, identity)
	} else {
		r0 = ret.Get(0).(models.TxHandle)
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Address) error); ok {
		r1 = rf(ctx, identity)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockGateway_SubmitEndAuction_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SubmitEndAuction'
type MockGateway_SubmitEndAuction_Call struct {
	*mock.Call
}

// SubmitEndAuction is a helper method to define mock.On call
//   - ctx context.Context
//   - identity common.Address
func (_e *MockGateway_Expecter) SubmitEndAuction(ctx interface{}, identity interface{}) *MockGateway_SubmitEndAuction_Call {
	return &MockGateway_SubmitEndAuction_Call{Call: _e.mock.On("SubmitEndAuction", ctx, identity)}
}

func (_c *MockGateway_SubmitEndAuction_Call) Run(run func(ctx context.Context, identity common.Address)) *MockGateway_SubmitEndAuction_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Address))
	})
	return _c
}

func (_c *MockGateway_SubmitEndAuction_Call) Return(_a0 models.TxHandle, _a1 error) *MockGateway_SubmitEndAuction_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGateway_SubmitEndAuction_Call) RunAndReturn(run func(context.Context, common.Address) (models.TxHandle, error)) *MockGateway_SubmitEndAuction_Call {
	_c.Call.Return(run)
	return _c
}

// SubmitWithdraw provides a mock function with given fields: ctx, identity
func (_m *MockGateway) SubmitWithdraw(ctx context.Context, identity common.Address) (models.TxHandle, error) {
	ret := _m.Called(ctx, identity)

	if len(ret) == 0 {
		panic("no return value specified for SubmitWithdraw")
	}

	var r0 models.TxHandle
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Address) (models.TxHandle, error)); ok {
		return rf(ctx, identity)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Address) models.TxHandle); ok {
		r0 = rf(ctx, identity)
	} else {
		r0 = ret.Get(0).(models.TxHandle)
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Address) error); ok {
		r1 = rf(ctx, identity)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockGateway_SubmitWithdraw_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SubmitWithdraw'
type MockGateway_SubmitWithdraw_Call struct {
	*mock.Call
}

// SubmitWithdraw is a helper method to define mock.On call
//   - ctx context.Context
//   - identity common.Address
func (_e *MockGateway_Expecter) SubmitWithdraw(ctx interface{}, identity interface{}) *MockGateway_SubmitWithdraw_Call {
	return &MockGateway_SubmitWithdraw_Call{Call: _e.mock.On("SubmitWithdraw", ctx, identity)}
}

func (_c *MockGateway_SubmitWithdraw_Call) Run(run func(ctx context.Context, identity common.Address)) *MockGateway_SubmitWithdraw_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Address))
	})
	return _c
}

func (_c *MockGateway_SubmitWithdraw_Call) Return(_a0 models.TxHandle, _a1 error) *MockGateway_SubmitWithdraw_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGateway_SubmitWithdraw_Call) RunAndReturn(run func(context.Context, common.Address) (models.TxHandle, error)) *MockGateway_SubmitWithdraw_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockGateway creates a new instance of MockGateway. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGateway {
	m := &MockGateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
